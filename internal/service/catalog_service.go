package service

import (
	"context"
	"time"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/catalog"
	"github.com/bondwise/bond-advisor-backend/internal/model"
)

// CatalogService serves the active bond catalog from the current snapshot
// and owns the reload path. The snapshot is immutable; reload swaps in a
// fresh one without disturbing in-flight requests.
type CatalogService struct {
	store *catalog.Store
}

// NewCatalogService creates a new CatalogService backed by the given store.
func NewCatalogService(store *catalog.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ActiveBonds returns the active, deduplicated catalog from the current snapshot.
func (s *CatalogService) ActiveBonds() ([]model.Bond, error) {
	snap, err := s.store.Current()
	if err != nil {
		return nil, err
	}
	return snap.Bonds, nil
}

// GetBond finds a bond in the current snapshot by ISIN.
func (s *CatalogService) GetBond(isin string) (model.Bond, error) {
	snap, err := s.store.Current()
	if err != nil {
		return model.Bond{}, err
	}
	for _, b := range snap.Bonds {
		if b.ISIN == isin {
			return b, nil
		}
	}
	return model.Bond{}, apperrors.ErrBondNotFound
}

// Reload rebuilds the snapshot from the underlying source as of the given
// date and returns the number of active bonds it now holds.
func (s *CatalogService) Reload(ctx context.Context, asOf time.Time) (int, error) {
	snap, err := s.store.Reload(ctx, asOf)
	if err != nil {
		return 0, err
	}
	return len(snap.Bonds), nil
}
