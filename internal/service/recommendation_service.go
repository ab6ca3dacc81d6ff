package service

import (
	"github.com/bondwise/bond-advisor-backend/internal/catalog"
	"github.com/bondwise/bond-advisor-backend/internal/model"
	"github.com/bondwise/bond-advisor-backend/internal/scoring"
	"github.com/bondwise/bond-advisor-backend/internal/validation"
)

// RecommendationService ranks the active catalog against investor
// preferences. Scoring is pure and the snapshot immutable, so concurrent
// requests need no locking.
type RecommendationService struct {
	store  *catalog.Store
	engine *scoring.Engine
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(store *catalog.Store, engine *scoring.Engine) *RecommendationService {
	return &RecommendationService{
		store:  store,
		engine: engine,
	}
}

// Recommend validates the preferences and returns the full catalog ranked
// by affinity, best first. An empty catalog yields an empty list, not an
// error; the caller decides whether "no recommendations" is user-facing.
func (s *RecommendationService) Recommend(prefs model.Preferences) ([]model.ScoredBond, error) {
	if err := validation.ValidatePreferences(prefs); err != nil {
		return nil, err
	}

	snap, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	return s.engine.Rank(snap.Bonds, prefs)
}
