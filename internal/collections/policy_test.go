package collections

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicyCriminalComplaint(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name       string
		grandTotal int64
		violations int
		want       bool
	}{
		{"below threshold, no violations", 4000, 0, false},
		{"below threshold, one violation", 4000, 1, true},
		{"above threshold, no violations", 6000, 0, true},
		{"above threshold, with violations", 6000, 2, true},
		{"exactly at threshold", 5000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := &FinancialAggregate{
				GrandTotal: decimal.NewFromInt(tt.grandTotal),
				Violations: make([]ViolationLine, tt.violations),
			}
			got := policy.Includes(KindCriminalComplaint, agg, DefaultOptions())
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultPolicyFixedKinds(t *testing.T) {
	policy := DefaultPolicy()
	agg := &FinancialAggregate{}

	assert.True(t, policy.Includes(KindClaimsStatement, agg, Options{}))
	assert.True(t, policy.Includes(KindDocumentsChecklist, agg, Options{}))

	assert.False(t, policy.Includes(KindExplanatoryMemo, agg, Options{}))
	assert.True(t, policy.Includes(KindExplanatoryMemo, agg, DefaultOptions()))

	assert.False(t, policy.Includes(KindViolationsTransfer, agg, Options{}))
	assert.True(t, policy.Includes(KindViolationsTransfer, agg, Options{
		TransferViolations: []ViolationLine{{Number: "V-1"}},
	}))

	// the portfolio is assembled separately, never by policy
	assert.False(t, policy.Includes(KindPortfolio, agg, DefaultOptions()))
}
