package service

import (
	"context"
	"fmt"

	"github.com/bondwise/bond-advisor-backend/internal/advisor"
	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/model"
	"github.com/bondwise/bond-advisor-backend/internal/repository"
	"github.com/bondwise/bond-advisor-backend/internal/secrets"
)

// AdvisorService owns the boundary to the external narrative analysis
// service: stored configuration with the token encrypted at rest, and the
// per-request HTTP call. Callers treat a missing or disabled advisor as
// "no analysis available", never as a failed recommendation.
type AdvisorService struct {
	configRepo *repository.AdvisorConfigRepository
	secretKey  string
}

// NewAdvisorService creates a new AdvisorService. secretKey is the fernet
// key used for the stored token; when empty, configuration writes are
// rejected.
func NewAdvisorService(configRepo *repository.AdvisorConfigRepository, secretKey string) *AdvisorService {
	return &AdvisorService{
		configRepo: configRepo,
		secretKey:  secretKey,
	}
}

// GetConfig retrieves the stored advisor configuration. The token stays
// encrypted; it is never returned to callers.
func (s *AdvisorService) GetConfig() (model.AdvisorConfig, error) {
	return s.configRepo.Get()
}

// SetConfig encrypts the token and stores the advisor configuration.
func (s *AdvisorService) SetConfig(endpoint, token string, enabled bool) (model.AdvisorConfig, error) {
	if s.secretKey == "" {
		return model.AdvisorConfig{}, fmt.Errorf("advisor secret key is not configured")
	}

	encrypted, err := secrets.Encrypt(token, s.secretKey)
	if err != nil {
		return model.AdvisorConfig{}, err
	}

	return s.configRepo.Upsert(model.AdvisorConfig{
		Endpoint: endpoint,
		Token:    encrypted,
		Enabled:  enabled,
	})
}

// Analyze asks the narrative service how the bond aligns with the
// investor's preferences, given the projected payout schedule. Returns
// apperrors.ErrAdvisorConfigNotFound or apperrors.ErrAdvisorDisabled when
// the integration is unavailable.
func (s *AdvisorService) Analyze(ctx context.Context, bond model.Bond, prefs model.Preferences, summary model.PayoutSummary) (string, error) {
	cfg, err := s.configRepo.Get()
	if err != nil {
		return "", err
	}
	if !cfg.Enabled {
		return "", apperrors.ErrAdvisorDisabled
	}

	token, err := secrets.Decrypt(cfg.Token, s.secretKey)
	if err != nil {
		return "", err
	}

	client := advisor.NewClient(cfg.Endpoint, token)
	return client.Analyze(ctx, advisor.AnalysisRequest{
		Bond:        bond,
		Preferences: prefs,
		Payout:      summary,
	})
}
