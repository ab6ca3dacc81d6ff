package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/catalog"
	"github.com/bondwise/bond-advisor-backend/internal/repository"
	"github.com/bondwise/bond-advisor-backend/internal/service"
	"github.com/bondwise/bond-advisor-backend/internal/testutil"
)

var serviceAsOf = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestCatalogService(t *testing.T) {
	t.Run("ActiveBonds before the first reload reports catalog not loaded", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		store := catalog.NewStore(repository.NewBondRepository(db))
		svc := service.NewCatalogService(store)

		_, err := svc.ActiveBonds()
		if !errors.Is(err, apperrors.ErrCatalogNotLoaded) {
			t.Errorf("Expected ErrCatalogNotLoaded, got %v", err)
		}
	})

	t.Run("Reload loads active bonds from the database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewBondRecord().WithISIN("INE0000SVC01").WithRedemptionDate("15-06-2035").Build(t, db)
		testutil.NewBondRecord().WithISIN("INE0000SVC02").WithRedemptionDate("01-01-2020").Build(t, db)

		store := catalog.NewStore(repository.NewBondRepository(db))
		svc := service.NewCatalogService(store)

		count, err := svc.Reload(context.Background(), serviceAsOf)
		if err != nil {
			t.Fatalf("Reload failed: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 active bond, got %d", count)
		}

		bonds, err := svc.ActiveBonds()
		if err != nil {
			t.Fatalf("ActiveBonds failed: %v", err)
		}
		if len(bonds) != 1 || bonds[0].ISIN != "INE0000SVC01" {
			t.Errorf("Expected only the active bond, got %+v", bonds)
		}
	})

	t.Run("GetBond finds by ISIN", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewBondRecord().WithISIN("INE0000SVC03").Build(t, db)

		store := catalog.NewStore(repository.NewBondRepository(db))
		svc := service.NewCatalogService(store)
		if _, err := svc.Reload(context.Background(), serviceAsOf); err != nil {
			t.Fatalf("Reload failed: %v", err)
		}

		bond, err := svc.GetBond("INE0000SVC03")
		if err != nil {
			t.Fatalf("GetBond failed: %v", err)
		}
		if bond.ISIN != "INE0000SVC03" {
			t.Errorf("Expected ISIN INE0000SVC03, got %s", bond.ISIN)
		}

		_, err = svc.GetBond("INE0000MISSING")
		if !errors.Is(err, apperrors.ErrBondNotFound) {
			t.Errorf("Expected ErrBondNotFound, got %v", err)
		}
	})
}
