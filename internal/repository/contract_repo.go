package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/alarafrental/collections/internal/models"
)

// ContractRepository handles contract database operations
type ContractRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *sql.DB, logger *zap.Logger) *ContractRepository {
	return &ContractRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a contract joined with its customer and vehicle
func (r *ContractRepository) GetByID(ctx context.Context, id string) (*models.Contract, error) {
	query := `
		SELECT c.id, c.contract_number, c.company_id, c.customer_id,
			COALESCE(c.vehicle_id, ''), c.start_date, c.end_date,
			c.monthly_amount, c.status, c.legal_status, c.created_at, c.updated_at,
			cu.id, cu.customer_type, COALESCE(cu.first_name, ''), COALESCE(cu.last_name, ''),
			COALESCE(cu.company_name, ''), COALESCE(cu.national_id, ''),
			COALESCE(cu.nationality, ''), COALESCE(cu.phone, ''), COALESCE(cu.email, ''),
			COALESCE(cu.address, ''),
			COALESCE(v.id, ''), COALESCE(v.plate_number, ''), COALESCE(v.make, ''),
			COALESCE(v.model, ''), COALESCE(v.year, 0), COALESCE(v.vin, '')
		FROM contracts c
		JOIN customers cu ON cu.id = c.customer_id
		LEFT JOIN vehicles v ON v.id = c.vehicle_id
		WHERE c.id = ?
	`

	var (
		contract      models.Contract
		customer      models.Customer
		vehicle       models.Vehicle
		startDate     sql.NullTime
		endDate       sql.NullTime
		monthlyAmount string
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&contract.ID,
		&contract.ContractNumber,
		&contract.CompanyID,
		&contract.CustomerID,
		&contract.VehicleID,
		&startDate,
		&endDate,
		&monthlyAmount,
		&contract.Status,
		&contract.LegalStatus,
		&contract.CreatedAt,
		&contract.UpdatedAt,
		&customer.ID,
		&customer.CustomerType,
		&customer.FirstName,
		&customer.LastName,
		&customer.CompanyName,
		&customer.NationalID,
		&customer.Nationality,
		&customer.Phone,
		&customer.Email,
		&customer.Address,
		&vehicle.ID,
		&vehicle.PlateNumber,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.VIN,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get contract by ID", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	if startDate.Valid {
		contract.StartDate = &startDate.Time
	}
	if endDate.Valid {
		contract.EndDate = &endDate.Time
	}
	contract.MonthlyAmount, err = decimal.NewFromString(monthlyAmount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse monthly amount %q: %w", monthlyAmount, err)
	}

	contract.Customer = &customer
	if vehicle.ID != "" {
		contract.Vehicle = &vehicle
	}

	return &contract, nil
}

// BulkUpdateLegalStatus sets the legal status for every contract in ids and
// refreshes its update timestamp
func (r *ContractRepository) BulkUpdateLegalStatus(ctx context.Context, ids []string, legalStatus string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	query := fmt.Sprintf(
		"UPDATE contracts SET legal_status = ?, updated_at = ? WHERE id IN (%s)",
		placeholders,
	)

	args := make([]interface{}, 0, len(ids)+2)
	args = append(args, legalStatus, time.Now().UTC())
	for _, id := range ids {
		args = append(args, id)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to bulk update legal status",
			zap.Int("contract_count", len(ids)),
			zap.String("legal_status", legalStatus),
			zap.Error(err))
		return fmt.Errorf("failed to update contracts: %w", err)
	}

	affected, _ := result.RowsAffected()
	r.logger.Info("Updated contract legal status",
		zap.Int64("rows_affected", affected),
		zap.String("legal_status", legalStatus))
	return nil
}

// UpdateForCaseOpened moves one contract into legal procedure after a case
// record has been created
func (r *ContractRepository) UpdateForCaseOpened(ctx context.Context, id string) error {
	query := `
		UPDATE contracts
		SET status = ?, legal_status = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		models.ContractStatusUnderLegalProcedure,
		models.LegalStatusCaseOpened,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		r.logger.Error("Failed to update contract for opened case", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("failed to update contract: %w", err)
	}
	return nil
}
