package service_test

import (
	"testing"

	"github.com/bondwise/bond-advisor-backend/internal/service"
	"github.com/bondwise/bond-advisor-backend/internal/testutil"
	"github.com/bondwise/bond-advisor-backend/internal/version"
)

func TestSystemService(t *testing.T) {
	t.Run("CheckHealth passes on a live database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewSystemService(db)

		if err := svc.CheckHealth(); err != nil {
			t.Errorf("Expected health check to pass, got %v", err)
		}
	})

	t.Run("CheckVersion reports app and schema versions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := service.NewSystemService(db)

		info, err := svc.CheckVersion()
		if err != nil {
			t.Fatalf("CheckVersion failed: %v", err)
		}

		if info.AppVersion != version.Version {
			t.Errorf("Expected app version %s, got %s", version.Version, info.AppVersion)
		}
		if info.DBVersion < 1 {
			t.Errorf("Expected a migrated schema version, got %d", info.DBVersion)
		}
	})
}
