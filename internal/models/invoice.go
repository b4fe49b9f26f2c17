package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses
const (
	InvoiceStatusPending   = "pending"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusCancelled = "cancelled"
)

// Invoice is one billing entry under a contract
type Invoice struct {
	ID            string
	ContractID    string
	InvoiceNumber string
	DueDate       time.Time
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	Status        string
	CreatedAt     time.Time
}

// Balance returns the unpaid remainder of the invoice
func (i *Invoice) Balance() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}
