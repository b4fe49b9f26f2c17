package models

import "time"

// Legal case types and statuses
const (
	CaseTypeDebtCollection = "debt_collection"
	CaseStatusOpen         = "open"
	CaseStatusClosed       = "closed"
)

// LegalCase is the formal case record created when a contract enters legal
// procedure
type LegalCase struct {
	ID         string
	ContractID string
	CompanyID  string
	CaseType   string
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
