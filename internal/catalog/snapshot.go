package catalog

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/model"
)

// Source supplies raw catalog records for a snapshot load.
type Source interface {
	Records(ctx context.Context) ([]model.RawBondRecord, error)
}

// Snapshot is an immutable view of the active, deduplicated catalog.
// It is replaced wholesale on reload, never edited in place, so in-flight
// scoring calls always see a consistent catalog.
type Snapshot struct {
	Bonds    []model.Bond
	AsOf     time.Time
	LoadedAt time.Time
}

// Store owns the current catalog snapshot. Reads are lock-free through an
// atomic pointer; concurrent reloads collapse into a single load.
type Store struct {
	source  Source
	current atomic.Pointer[Snapshot]
	reload  singleflight.Group
}

// NewStore creates a Store backed by the given record source. The store
// holds no snapshot until the first Reload.
func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Current returns the latest snapshot, or an error wrapping
// apperrors.ErrCatalogNotLoaded when no load has succeeded yet.
func (s *Store) Current() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, apperrors.ErrCatalogNotLoaded
	}
	return snap, nil
}

// Reload fetches raw records from the source, loads them as of the given
// date, and swaps the snapshot atomically. Concurrent callers share one
// load and receive the same snapshot. On failure the previous snapshot
// stays in place.
func (s *Store) Reload(ctx context.Context, asOf time.Time) (*Snapshot, error) {
	v, err, _ := s.reload.Do("reload", func() (interface{}, error) {
		records, err := s.source.Records(ctx)
		if err != nil {
			return nil, err
		}
		bonds, err := Load(records, asOf)
		if err != nil {
			return nil, err
		}
		snap := &Snapshot{
			Bonds:    bonds,
			AsOf:     asOf,
			LoadedAt: time.Now().UTC(),
		}
		s.current.Store(snap)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}
