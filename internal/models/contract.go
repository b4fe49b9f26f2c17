package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contract statuses
const (
	ContractStatusActive              = "active"
	ContractStatusExpired             = "expired"
	ContractStatusUnderLegalProcedure = "under_legal_procedure"
)

// Contract legal statuses, tracking collections escalation separately from
// the primary contract status
const (
	LegalStatusNone             = "none"
	LegalStatusOpeningComplaint = "opening_complaint"
	LegalStatusCaseOpened       = "case_opened"
)

// Contract is one rental agreement, loaded with its customer and vehicle
type Contract struct {
	ID             string
	ContractNumber string
	CompanyID      string
	CustomerID     string
	VehicleID      string
	StartDate      *time.Time
	EndDate        *time.Time
	MonthlyAmount  decimal.Decimal
	Status         string
	LegalStatus    string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Customer *Customer
	Vehicle  *Vehicle
}
