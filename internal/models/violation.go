package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Violation payment statuses
const (
	ViolationStatusUnpaid = "unpaid"
	ViolationStatusPaid   = "paid"
)

// TrafficViolation is a fine recorded against the vehicle during the rental
type TrafficViolation struct {
	ID              string
	ContractID      string
	ViolationNumber string
	ViolationDate   *time.Time
	ViolationType   string
	Location        string
	FineAmount      decimal.Decimal
	PaymentStatus   string
	CreatedAt       time.Time
}
