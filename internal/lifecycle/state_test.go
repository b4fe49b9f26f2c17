package lifecycle

import "testing"

func TestLegalStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from LegalStatus
		to   LegalStatus
		want bool
	}{
		{"none to opening complaint", LegalNone, LegalOpeningComplaint, true},
		{"none to case opened", LegalNone, LegalCaseOpened, true},
		{"opening complaint repeated", LegalOpeningComplaint, LegalOpeningComplaint, true},
		{"opening complaint to case opened", LegalOpeningComplaint, LegalCaseOpened, true},
		{"case opened repeated filing", LegalCaseOpened, LegalCaseOpened, true},
		{"case opened back to none", LegalCaseOpened, LegalNone, false},
		{"case opened back to opening complaint", LegalCaseOpened, LegalOpeningComplaint, false},
		{"opening complaint back to none", LegalOpeningComplaint, LegalNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestContractStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from ContractStatus
		to   ContractStatus
		want bool
	}{
		{"active to expired", ContractActive, ContractExpired, true},
		{"active to legal procedure", ContractActive, ContractUnderLegalProcedure, true},
		{"expired to legal procedure", ContractExpired, ContractUnderLegalProcedure, true},
		{"expired back to active", ContractExpired, ContractActive, false},
		{"legal procedure to active", ContractUnderLegalProcedure, ContractActive, false},
		{"legal procedure to expired", ContractUnderLegalProcedure, ContractExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestStatusValidity(t *testing.T) {
	if !LegalNone.IsValid() || !LegalOpeningComplaint.IsValid() || !LegalCaseOpened.IsValid() {
		t.Error("known legal statuses must be valid")
	}
	if LegalStatus("litigating").IsValid() {
		t.Error("unknown legal status must be invalid")
	}

	if !ContractUnderLegalProcedure.IsTerminal() {
		t.Error("under_legal_procedure must be terminal")
	}
	if ContractActive.IsTerminal() || ContractExpired.IsTerminal() {
		t.Error("active and expired must not be terminal")
	}
	if ContractStatus("suspended").IsValid() {
		t.Error("unknown contract status must be invalid")
	}
}
