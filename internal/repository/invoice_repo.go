package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/alarafrental/collections/internal/models"
)

// InvoiceRepository handles invoice database operations
type InvoiceRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *sql.DB, logger *zap.Logger) *InvoiceRepository {
	return &InvoiceRepository{
		db:     db,
		logger: logger,
	}
}

// ListByContract returns all non-cancelled invoices for a contract ordered by
// due date ascending
func (r *InvoiceRepository) ListByContract(ctx context.Context, contractID string) ([]*models.Invoice, error) {
	query := `
		SELECT id, contract_id, invoice_number, due_date,
			total_amount, paid_amount, status, created_at
		FROM invoices
		WHERE contract_id = ? AND status != ?
		ORDER BY due_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, contractID, models.InvoiceStatusCancelled)
	if err != nil {
		r.logger.Error("Failed to list invoices", zap.String("contract_id", contractID), zap.Error(err))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		var (
			invoice     models.Invoice
			totalAmount string
			paidAmount  string
		)
		if err := rows.Scan(
			&invoice.ID,
			&invoice.ContractID,
			&invoice.InvoiceNumber,
			&invoice.DueDate,
			&totalAmount,
			&paidAmount,
			&invoice.Status,
			&invoice.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}

		if invoice.TotalAmount, err = decimal.NewFromString(totalAmount); err != nil {
			return nil, fmt.Errorf("failed to parse invoice total %q: %w", totalAmount, err)
		}
		if invoice.PaidAmount, err = decimal.NewFromString(paidAmount); err != nil {
			return nil, fmt.Errorf("failed to parse invoice paid amount %q: %w", paidAmount, err)
		}

		invoices = append(invoices, &invoice)
	}

	return invoices, rows.Err()
}
