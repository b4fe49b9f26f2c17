package collections

import (
	"time"

	"github.com/shopspring/decimal"
)

// CollectionTarget is one delinquent customer selected for bulk document
// generation. Produced by the caller from its overdue-contracts view;
// read-only here.
type CollectionTarget struct {
	ContractID     string          `json:"contract_id"`
	ContractNumber string          `json:"contract_number"`
	CustomerName   string          `json:"customer_name"`
	NationalID     string          `json:"national_id"`
	Phone          string          `json:"phone"`
	TotalDue       decimal.Decimal `json:"total_due"`
	DaysOverdue    int             `json:"days_overdue"`
}

// Status of a batch run as observed through progress snapshots
type Status string

const (
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Progress is an immutable snapshot emitted once per customer and once at the
// end of the run. Current is 1-based and only increases.
type Progress struct {
	Current         int
	Total           int
	CurrentCustomer string
	Status          Status
	Errors          []string
}

// ProgressFunc receives progress snapshots during a batch run
type ProgressFunc func(Progress)

// Document is one rendered file: text for composed documents, raw bytes for
// the case-data workbook
type Document struct {
	Name    string
	Kind    DocumentKind
	Content []byte
}

// DocumentSet is the ordered list of documents rendered for one target
type DocumentSet []Document

// CustomerDocuments binds a DocumentSet to its archive folder
type CustomerDocuments struct {
	FolderName     string
	CustomerName   string
	ContractNumber string
	Documents      DocumentSet
}

// BatchResult is the outcome of one batch run: the packaged archive plus the
// error manifest for targets that failed
type BatchResult struct {
	Archive   []byte
	Folders   []string
	Errors    []string
	Succeeded int
	Failed    int
}

// InvoiceLine is one unpaid invoice inside an aggregate
type InvoiceLine struct {
	Number   string
	DueDate  time.Time
	Total    decimal.Decimal
	Paid     decimal.Decimal
	Balance  decimal.Decimal
	DaysLate int
	Penalty  decimal.Decimal
}

// ViolationLine is one outstanding traffic violation inside an aggregate, and
// doubles as the shape of caller-supplied transfer lists
type ViolationLine struct {
	Number   string          `json:"number"`
	Date     *time.Time      `json:"date"`
	Type     string          `json:"type"`
	Location string          `json:"location"`
	Fine     decimal.Decimal `json:"fine"`
}

// FinancialAggregate is the per-target financial rollup. Computed fresh for
// every run and never persisted.
type FinancialAggregate struct {
	CustomerName   string
	NationalID     string
	Phone          string
	ContractNumber string
	ContractStart  *time.Time
	ContractEnd    *time.Time
	MonthlyAmount  decimal.Decimal
	VehiclePlate   string
	VehicleModel   string
	DaysOverdue    int

	Invoices   []InvoiceLine
	Violations []ViolationLine

	InvoiceTotal    decimal.Decimal // sum of unpaid balances
	PenaltyTotal    decimal.Decimal // contractual late penalties, excluded from GrandTotal
	ViolationTotal  decimal.Decimal // sum of outstanding fines
	GrandTotal      decimal.Decimal // InvoiceTotal + ViolationTotal
	GrandTotalWords string
}

// Options controls which optional documents a batch run produces
type Options struct {
	ExplanatoryMemo bool `json:"explanatory_memo"`
	Portfolio       bool `json:"portfolio"`

	// TransferViolations is the explicit list of violations to reassign to
	// the renter's personal record. The transfer request is rendered only
	// when this is non-empty and never invents lines beyond it.
	TransferViolations []ViolationLine `json:"transfer_violations"`

	// Damages overrides the memo's damages claim; zero means the default
	// 30% of the claim amount.
	Damages decimal.Decimal `json:"damages"`

	// AttachedPaperwork lists checklist items the caller has on file;
	// everything else is marked missing.
	AttachedPaperwork []string `json:"attached_paperwork"`

	// Attachments are external file references listed in the portfolio index
	Attachments []string `json:"attachments"`
}

// DefaultOptions mirrors the standard bulk run: memo on, narrow documents off
func DefaultOptions() Options {
	return Options{ExplanatoryMemo: true}
}
