package catalog_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/catalog"
	"github.com/bondwise/bond-advisor-backend/internal/model"
	"github.com/bondwise/bond-advisor-backend/internal/testutil"
)

// staticSource serves a fixed record set and counts how often it is read.
type staticSource struct {
	records []model.RawBondRecord
	err     error
	loads   atomic.Int64
	gate    chan struct{} // when set, Records blocks until the gate closes
}

func (s *staticSource) Records(ctx context.Context) ([]model.RawBondRecord, error) {
	s.loads.Add(1)
	if s.gate != nil {
		<-s.gate
	}
	return s.records, s.err
}

func TestStore(t *testing.T) {
	t.Run("Current before any reload reports catalog not loaded", func(t *testing.T) {
		store := catalog.NewStore(&staticSource{})

		_, err := store.Current()
		if !errors.Is(err, apperrors.ErrCatalogNotLoaded) {
			t.Errorf("Expected ErrCatalogNotLoaded, got %v", err)
		}
	})

	t.Run("Reload installs a snapshot served by Current", func(t *testing.T) {
		source := &staticSource{records: []model.RawBondRecord{
			testutil.NewBondRecord().WithISIN("INE0000SNAP1").Record(),
		}}
		store := catalog.NewStore(source)

		asOf := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		snap, err := store.Reload(context.Background(), asOf)
		if err != nil {
			t.Fatalf("Reload failed: %v", err)
		}
		if len(snap.Bonds) != 1 {
			t.Fatalf("Expected 1 bond in snapshot, got %d", len(snap.Bonds))
		}
		if !snap.AsOf.Equal(asOf) {
			t.Errorf("Expected AsOf %v, got %v", asOf, snap.AsOf)
		}

		current, err := store.Current()
		if err != nil {
			t.Fatalf("Current failed: %v", err)
		}
		if current != snap {
			t.Error("Expected Current to return the reloaded snapshot")
		}
	})

	t.Run("failed reload keeps the previous snapshot", func(t *testing.T) {
		source := &staticSource{records: []model.RawBondRecord{
			testutil.NewBondRecord().WithISIN("INE0000SNAP2").Record(),
		}}
		store := catalog.NewStore(source)

		asOf := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		first, err := store.Reload(context.Background(), asOf)
		if err != nil {
			t.Fatalf("Initial reload failed: %v", err)
		}

		source.err = errors.New("feed unavailable")
		if _, err := store.Reload(context.Background(), asOf); err == nil {
			t.Fatal("Expected reload to fail")
		}

		current, err := store.Current()
		if err != nil {
			t.Fatalf("Current failed: %v", err)
		}
		if current != first {
			t.Error("Expected the previous snapshot to survive a failed reload")
		}
	})

	t.Run("concurrent reloads collapse into one load", func(t *testing.T) {
		source := &staticSource{
			records: []model.RawBondRecord{testutil.NewBondRecord().Record()},
			gate:    make(chan struct{}),
		}
		store := catalog.NewStore(source)

		asOf := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		var wg sync.WaitGroup
		snaps := make([]*catalog.Snapshot, 5)
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				snap, err := store.Reload(context.Background(), asOf)
				if err != nil {
					t.Errorf("Reload %d failed: %v", i, err)
					return
				}
				snaps[i] = snap
			}(i)
		}

		// Give the goroutines time to pile up behind the gate, then release.
		time.Sleep(50 * time.Millisecond)
		close(source.gate)
		wg.Wait()

		if loads := source.loads.Load(); loads != 1 {
			t.Errorf("Expected a single source read, got %d", loads)
		}
		for i := 1; i < 5; i++ {
			if snaps[i] != snaps[0] {
				t.Errorf("Expected all callers to share one snapshot")
			}
		}
	})
}
