package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/catalog"
	"github.com/bondwise/bond-advisor-backend/internal/model"
	"github.com/bondwise/bond-advisor-backend/internal/repository"
	"github.com/bondwise/bond-advisor-backend/internal/scoring"
	"github.com/bondwise/bond-advisor-backend/internal/service"
	"github.com/bondwise/bond-advisor-backend/internal/testutil"
)

func newRecommendationService(t *testing.T, store *catalog.Store) *service.RecommendationService {
	t.Helper()
	return service.NewRecommendationService(store, scoring.NewEngine(scoring.DefaultWeights()))
}

func TestRecommendationService(t *testing.T) {
	prefs := model.Preferences{
		TargetCouponRate:     9.0,
		TargetRating:         "AA",
		TargetFrequency:      "quarterly",
		TargetRedemptionYear: 2035,
	}

	t.Run("ranks the loaded catalog best first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewBondRecord().WithISIN("INE0000REC01").WithCouponRate("4% p.a.").WithCreditRating("B Watch").Build(t, db)
		testutil.NewBondRecord().WithISIN("INE0000REC02").WithCouponRate("9% p.a.").WithCreditRating("AA Stable").Build(t, db)

		store := catalog.NewStore(repository.NewBondRepository(db))
		if _, err := store.Reload(context.Background(), serviceAsOf); err != nil {
			t.Fatalf("Reload failed: %v", err)
		}

		svc := newRecommendationService(t, store)
		ranked, err := svc.Recommend(prefs)
		if err != nil {
			t.Fatalf("Recommend failed: %v", err)
		}

		if len(ranked) != 2 {
			t.Fatalf("Expected 2 recommendations, got %d", len(ranked))
		}
		if ranked[0].Bond.ISIN != "INE0000REC02" {
			t.Errorf("Expected the closer match first, got %s", ranked[0].Bond.ISIN)
		}
		if ranked[0].Score <= ranked[1].Score {
			t.Errorf("Expected descending scores, got %v then %v", ranked[0].Score, ranked[1].Score)
		}
	})

	t.Run("rejects invalid preferences before touching the catalog", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		store := catalog.NewStore(repository.NewBondRepository(db))
		svc := newRecommendationService(t, store)

		_, err := svc.Recommend(model.Preferences{TargetCouponRate: 0})
		if !errors.Is(err, apperrors.ErrInvalidPreference) {
			t.Errorf("Expected ErrInvalidPreference, got %v", err)
		}
	})

	t.Run("reports catalog not loaded before the first reload", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		store := catalog.NewStore(repository.NewBondRepository(db))
		svc := newRecommendationService(t, store)

		_, err := svc.Recommend(prefs)
		if !errors.Is(err, apperrors.ErrCatalogNotLoaded) {
			t.Errorf("Expected ErrCatalogNotLoaded, got %v", err)
		}
	})

	t.Run("empty catalog yields an empty ranking", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		store := catalog.NewStore(repository.NewBondRepository(db))
		if _, err := store.Reload(context.Background(), serviceAsOf); err != nil {
			t.Fatalf("Reload failed: %v", err)
		}

		svc := newRecommendationService(t, store)
		ranked, err := svc.Recommend(prefs)
		if err != nil {
			t.Fatalf("Recommend failed: %v", err)
		}
		if len(ranked) != 0 {
			t.Errorf("Expected empty ranking, got %d entries", len(ranked))
		}
	})
}
