package lifecycle

import "github.com/alarafrental/collections/internal/models"

// LegalStatus tracks a contract's collections escalation
type LegalStatus string

// Legal status values, ordered by escalation
const (
	LegalNone             LegalStatus = models.LegalStatusNone
	LegalOpeningComplaint LegalStatus = models.LegalStatusOpeningComplaint
	LegalCaseOpened       LegalStatus = models.LegalStatusCaseOpened
)

// ContractStatus is a contract's primary lifecycle state
type ContractStatus string

// Contract status values
const (
	ContractActive              ContractStatus = models.ContractStatusActive
	ContractExpired             ContractStatus = models.ContractStatusExpired
	ContractUnderLegalProcedure ContractStatus = models.ContractStatusUnderLegalProcedure
)

// legalTransitions maps each legal status to the statuses it may move to.
// Re-marking an opening complaint is allowed so bulk runs can safely repeat;
// re-opening a case from case_opened is allowed because each conversion files
// a distinct case.
var legalTransitions = map[LegalStatus][]LegalStatus{
	LegalNone:             {LegalOpeningComplaint, LegalCaseOpened},
	LegalOpeningComplaint: {LegalOpeningComplaint, LegalCaseOpened},
	LegalCaseOpened:       {LegalCaseOpened},
}

// contractTransitions maps each contract status to its allowed successors.
// under_legal_procedure is terminal; release back to active happens outside
// this system.
var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractActive:              {ContractExpired, ContractUnderLegalProcedure},
	ContractExpired:             {ContractUnderLegalProcedure},
	ContractUnderLegalProcedure: {},
}

// IsValid reports whether the legal status is a known value
func (s LegalStatus) IsValid() bool {
	_, ok := legalTransitions[s]
	return ok
}

// CanTransitionTo reports whether the legal status may move to target
func (s LegalStatus) CanTransitionTo(target LegalStatus) bool {
	for _, next := range legalTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsValid reports whether the contract status is a known value
func (s ContractStatus) IsValid() bool {
	_, ok := contractTransitions[s]
	return ok
}

// IsTerminal reports whether the contract status has no successors
func (s ContractStatus) IsTerminal() bool {
	return s.IsValid() && len(contractTransitions[s]) == 0
}

// CanTransitionTo reports whether the contract status may move to target
func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	for _, next := range contractTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}
