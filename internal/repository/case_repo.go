package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alarafrental/collections/internal/models"
)

// CaseRepository handles legal case database operations
type CaseRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCaseRepository creates a new case repository
func NewCaseRepository(db *sql.DB, logger *zap.Logger) *CaseRepository {
	return &CaseRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new legal case record and fills in its generated ID. No
// existence check is performed; every call creates a new row.
func (r *CaseRepository) Create(ctx context.Context, legalCase *models.LegalCase) error {
	if legalCase.ID == "" {
		legalCase.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	legalCase.CreatedAt = now
	legalCase.UpdatedAt = now

	query := `
		INSERT INTO legal_cases (id, contract_id, company_id, case_type, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		legalCase.ID,
		legalCase.ContractID,
		legalCase.CompanyID,
		legalCase.CaseType,
		legalCase.Status,
		legalCase.CreatedAt,
		legalCase.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create legal case",
			zap.String("contract_id", legalCase.ContractID),
			zap.Error(err))
		return fmt.Errorf("failed to create legal case: %w", err)
	}

	r.logger.Info("Legal case created",
		zap.String("case_id", legalCase.ID),
		zap.String("contract_id", legalCase.ContractID))
	return nil
}

// GetByID retrieves a legal case by ID
func (r *CaseRepository) GetByID(ctx context.Context, id string) (*models.LegalCase, error) {
	query := `
		SELECT id, contract_id, company_id, case_type, status, created_at, updated_at
		FROM legal_cases
		WHERE id = ?
	`

	var legalCase models.LegalCase
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&legalCase.ID,
		&legalCase.ContractID,
		&legalCase.CompanyID,
		&legalCase.CaseType,
		&legalCase.Status,
		&legalCase.CreatedAt,
		&legalCase.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get legal case by ID", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get legal case: %w", err)
	}

	return &legalCase, nil
}
