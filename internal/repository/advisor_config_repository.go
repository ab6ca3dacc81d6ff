package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/bondwise/bond-advisor-backend/internal/apperrors"
	"github.com/bondwise/bond-advisor-backend/internal/model"
)

// AdvisorConfigRepository provides data access for the advisor_config
// table. A single row holds the configuration of the external narrative
// analysis service; the token column is stored encrypted.
type AdvisorConfigRepository struct {
	db *sql.DB
}

// NewAdvisorConfigRepository creates a new AdvisorConfigRepository.
func NewAdvisorConfigRepository(db *sql.DB) *AdvisorConfigRepository {
	return &AdvisorConfigRepository{db: db}
}

// Get retrieves the advisor configuration.
// Returns apperrors.ErrAdvisorConfigNotFound when none has been stored.
func (r *AdvisorConfigRepository) Get() (model.AdvisorConfig, error) {
	query := `SELECT id, endpoint, token, enabled FROM advisor_config LIMIT 1`

	var cfg model.AdvisorConfig
	err := r.db.QueryRow(query).Scan(&cfg.ID, &cfg.Endpoint, &cfg.Token, &cfg.Enabled)
	if err == sql.ErrNoRows {
		return model.AdvisorConfig{}, apperrors.ErrAdvisorConfigNotFound
	}
	if err != nil {
		return model.AdvisorConfig{}, fmt.Errorf("failed to query advisor config: %w", err)
	}

	return cfg, nil
}

// Upsert stores the advisor configuration, replacing any existing row.
func (r *AdvisorConfigRepository) Upsert(cfg model.AdvisorConfig) (model.AdvisorConfig, error) {
	existing, err := r.Get()
	if err != nil && err != apperrors.ErrAdvisorConfigNotFound {
		return model.AdvisorConfig{}, err
	}

	if err == apperrors.ErrAdvisorConfigNotFound {
		cfg.ID = uuid.New().String()
		query := `INSERT INTO advisor_config (id, endpoint, token, enabled) VALUES (?, ?, ?, ?)`
		if _, err := r.db.Exec(query, cfg.ID, cfg.Endpoint, cfg.Token, cfg.Enabled); err != nil {
			return model.AdvisorConfig{}, fmt.Errorf("failed to insert advisor config: %w", err)
		}
		return cfg, nil
	}

	cfg.ID = existing.ID
	query := `UPDATE advisor_config SET endpoint = ?, token = ?, enabled = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	if _, err := r.db.Exec(query, cfg.Endpoint, cfg.Token, cfg.Enabled, cfg.ID); err != nil {
		return model.AdvisorConfig{}, fmt.Errorf("failed to update advisor config: %w", err)
	}

	return cfg, nil
}
