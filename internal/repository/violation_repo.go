package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/alarafrental/collections/internal/models"
)

// ViolationRepository handles traffic violation database operations
type ViolationRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewViolationRepository creates a new violation repository
func NewViolationRepository(db *sql.DB, logger *zap.Logger) *ViolationRepository {
	return &ViolationRepository{
		db:     db,
		logger: logger,
	}
}

// ListOutstandingByContract returns every violation for the contract whose
// payment status is not "paid", newest first
func (r *ViolationRepository) ListOutstandingByContract(ctx context.Context, contractID string) ([]*models.TrafficViolation, error) {
	query := `
		SELECT id, contract_id, COALESCE(violation_number, ''), violation_date,
			COALESCE(violation_type, ''), COALESCE(location, ''),
			fine_amount, payment_status, created_at
		FROM traffic_violations
		WHERE contract_id = ? AND payment_status != ?
		ORDER BY violation_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, contractID, models.ViolationStatusPaid)
	if err != nil {
		r.logger.Error("Failed to list violations", zap.String("contract_id", contractID), zap.Error(err))
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}
	defer rows.Close()

	var violations []*models.TrafficViolation
	for rows.Next() {
		var (
			violation     models.TrafficViolation
			violationDate sql.NullTime
			fineAmount    string
		)
		if err := rows.Scan(
			&violation.ID,
			&violation.ContractID,
			&violation.ViolationNumber,
			&violationDate,
			&violation.ViolationType,
			&violation.Location,
			&fineAmount,
			&violation.PaymentStatus,
			&violation.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan violation: %w", err)
		}

		if violationDate.Valid {
			violation.ViolationDate = &violationDate.Time
		}
		if violation.FineAmount, err = decimal.NewFromString(fineAmount); err != nil {
			return nil, fmt.Errorf("failed to parse fine amount %q: %w", fineAmount, err)
		}

		violations = append(violations, &violation)
	}

	return violations, rows.Err()
}
