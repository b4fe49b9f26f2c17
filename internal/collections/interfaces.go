package collections

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alarafrental/collections/internal/models"
)

// ContractReader loads contracts joined with their customer and vehicle
type ContractReader interface {
	GetByID(ctx context.Context, id string) (*models.Contract, error)
}

// InvoiceLister lists non-cancelled invoices for a contract, due date ascending
type InvoiceLister interface {
	ListByContract(ctx context.Context, contractID string) ([]*models.Invoice, error)
}

// ViolationLister lists violations for a contract that are not paid
type ViolationLister interface {
	ListOutstandingByContract(ctx context.Context, contractID string) ([]*models.TrafficViolation, error)
}

// AmountWordsFunc converts an amount to its written-out form
type AmountWordsFunc func(decimal.Decimal) string

// ReferenceGenerator produces document reference numbers. Implementations are
// injected so tests can supply deterministic references.
type ReferenceGenerator interface {
	Next() string
}

// Clock supplies the current time; injected for deterministic tests
type Clock func() time.Time
