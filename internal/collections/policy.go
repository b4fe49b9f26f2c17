package collections

import "github.com/shopspring/decimal"

// DocumentKind identifies one of the fixed legal document types
type DocumentKind string

// Document kinds in their fixed portfolio order
const (
	KindClaimsStatement    DocumentKind = "claims-statement"
	KindDocumentsChecklist DocumentKind = "documents-checklist"
	KindCriminalComplaint  DocumentKind = "criminal-complaint"
	KindViolationsTransfer DocumentKind = "violations-transfer"
	KindExplanatoryMemo    DocumentKind = "explanatory-memo"
	KindPortfolio          DocumentKind = "portfolio"
)

// kindOrder fixes both generation order and portfolio page numbering
var kindOrder = []DocumentKind{
	KindClaimsStatement,
	KindDocumentsChecklist,
	KindCriminalComplaint,
	KindViolationsTransfer,
	KindExplanatoryMemo,
}

// FileName returns the document's conventional file name
func (k DocumentKind) FileName() string {
	return string(k) + ".txt"
}

// Title returns the document's human-readable heading
func (k DocumentKind) Title() string {
	switch k {
	case KindClaimsStatement:
		return "Statement of Financial Claims"
	case KindDocumentsChecklist:
		return "Supporting Documents Checklist"
	case KindCriminalComplaint:
		return "Criminal Complaint"
	case KindViolationsTransfer:
		return "Traffic Violations Transfer Request"
	case KindExplanatoryMemo:
		return "Explanatory Memorandum"
	case KindPortfolio:
		return "Case Portfolio"
	}
	return string(k)
}

// criminalComplaintThreshold is the overdue amount above which a criminal
// complaint is always included (3-decimal currency units)
var criminalComplaintThreshold = decimal.NewFromInt(5000)

// IncludePredicate decides whether a document kind applies to an aggregate
type IncludePredicate func(agg *FinancialAggregate, opts Options) bool

// InclusionPolicy centralizes which documents a DocumentSet contains, so the
// rules are testable in one place instead of scattered through the composer
type InclusionPolicy map[DocumentKind]IncludePredicate

// DefaultPolicy returns the standard inclusion rules:
//   - claims statement and documents checklist: always
//   - criminal complaint: grand total above threshold OR any outstanding
//     violation (the two conditions are alternatives, not both required)
//   - violations transfer: only when the caller supplied an explicit list
//   - explanatory memo: per options (on by default)
func DefaultPolicy() InclusionPolicy {
	return InclusionPolicy{
		KindClaimsStatement: func(*FinancialAggregate, Options) bool {
			return true
		},
		KindDocumentsChecklist: func(*FinancialAggregate, Options) bool {
			return true
		},
		KindCriminalComplaint: func(agg *FinancialAggregate, _ Options) bool {
			return agg.GrandTotal.GreaterThan(criminalComplaintThreshold) || len(agg.Violations) > 0
		},
		KindViolationsTransfer: func(_ *FinancialAggregate, opts Options) bool {
			return len(opts.TransferViolations) > 0
		},
		KindExplanatoryMemo: func(_ *FinancialAggregate, opts Options) bool {
			return opts.ExplanatoryMemo
		},
	}
}

// Includes reports whether the policy produces the given kind
func (p InclusionPolicy) Includes(kind DocumentKind, agg *FinancialAggregate, opts Options) bool {
	predicate, ok := p[kind]
	if !ok {
		return false
	}
	return predicate(agg, opts)
}
