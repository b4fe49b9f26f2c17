package collections

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alarafrental/collections/internal/models"
)

type mockContractReader struct {
	contract *models.Contract
	err      error
}

func (m *mockContractReader) GetByID(_ context.Context, _ string) (*models.Contract, error) {
	return m.contract, m.err
}

type mockInvoiceLister struct {
	invoices []*models.Invoice
	err      error
}

func (m *mockInvoiceLister) ListByContract(_ context.Context, _ string) ([]*models.Invoice, error) {
	return m.invoices, m.err
}

type mockViolationLister struct {
	violations []*models.TrafficViolation
	err        error
}

func (m *mockViolationLister) ListOutstandingByContract(_ context.Context, _ string) ([]*models.TrafficViolation, error) {
	return m.violations, m.err
}

func testWords(amount decimal.Decimal) string {
	return amount.StringFixed(3) + " in words"
}

func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func testTarget() CollectionTarget {
	return CollectionTarget{
		ContractID:     "c-1",
		ContractNumber: "CNT-100",
		CustomerName:   "Ahmed Al-Balushi",
		NationalID:     "12345678",
		Phone:          "99887766",
		DaysOverdue:    10,
	}
}

func TestAggregate(t *testing.T) {
	dueDate := fixedClock().AddDate(0, 0, -10)
	violationDate := fixedClock().AddDate(0, 0, -5)

	contracts := &mockContractReader{
		contract: &models.Contract{
			ID:             "c-1",
			ContractNumber: "CNT-100",
			MonthlyAmount:  decimal.NewFromInt(500),
			Customer: &models.Customer{
				CustomerType: models.CustomerTypeIndividual,
				FirstName:    "Ahmed",
				LastName:     "Al-Balushi",
				NationalID:   "12345678",
				Phone:        "99887766",
			},
			Vehicle: &models.Vehicle{
				PlateNumber: "A 1234",
				Make:        "Toyota",
				Model:       "Corolla",
				Year:        2023,
			},
		},
	}
	invoices := &mockInvoiceLister{
		invoices: []*models.Invoice{
			{
				InvoiceNumber: "INV-1",
				DueDate:       dueDate,
				TotalAmount:   decimal.NewFromInt(1500),
				PaidAmount:    decimal.Zero,
			},
		},
	}
	violations := &mockViolationLister{
		violations: []*models.TrafficViolation{
			{
				ViolationNumber: "V-1",
				ViolationDate:   &violationDate,
				ViolationType:   "Speeding",
				Location:        "Sultan Qaboos St",
				FineAmount:      decimal.NewFromInt(300),
			},
		},
	}

	aggregator := NewAggregator(contracts, invoices, violations, testWords, fixedClock, zap.NewNop())

	agg, err := aggregator.Aggregate(context.Background(), testTarget())
	require.NoError(t, err)

	assert.Equal(t, "Ahmed Al-Balushi", agg.CustomerName)
	assert.Equal(t, "CNT-100", agg.ContractNumber)
	assert.Equal(t, "A 1234", agg.VehiclePlate)
	assert.Equal(t, "Toyota Corolla 2023", agg.VehicleModel)

	require.Len(t, agg.Invoices, 1)
	line := agg.Invoices[0]
	assert.True(t, line.Balance.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 10, line.DaysLate)
	// 10 days at 120/day, below the 3000 cap
	assert.True(t, line.Penalty.Equal(decimal.NewFromInt(1200)))

	require.Len(t, agg.Violations, 1)
	assert.True(t, agg.InvoiceTotal.Equal(decimal.NewFromInt(1500)))
	assert.True(t, agg.PenaltyTotal.Equal(decimal.NewFromInt(1200)))
	assert.True(t, agg.ViolationTotal.Equal(decimal.NewFromInt(300)))

	// penalties are supplemental, not part of the grand total
	assert.True(t, agg.GrandTotal.Equal(decimal.NewFromInt(1800)))
	assert.Equal(t, "1800.000 in words", agg.GrandTotalWords)
}

func TestAggregatePenaltyCap(t *testing.T) {
	// 40 days late would be 4800 uncapped
	dueDate := fixedClock().AddDate(0, 0, -40)

	contracts := &mockContractReader{contract: &models.Contract{ID: "c-1", ContractNumber: "CNT-100"}}
	invoices := &mockInvoiceLister{
		invoices: []*models.Invoice{
			{InvoiceNumber: "INV-1", DueDate: dueDate, TotalAmount: decimal.NewFromInt(500)},
		},
	}

	aggregator := NewAggregator(contracts, invoices, &mockViolationLister{}, testWords, fixedClock, zap.NewNop())

	agg, err := aggregator.Aggregate(context.Background(), testTarget())
	require.NoError(t, err)
	assert.True(t, agg.Invoices[0].Penalty.Equal(decimal.NewFromInt(3000)))
}

func TestAggregateSkipsSettledInvoices(t *testing.T) {
	contracts := &mockContractReader{contract: &models.Contract{ID: "c-1", ContractNumber: "CNT-100"}}
	invoices := &mockInvoiceLister{
		invoices: []*models.Invoice{
			{InvoiceNumber: "INV-1", DueDate: fixedClock(), TotalAmount: decimal.NewFromInt(500), PaidAmount: decimal.NewFromInt(500)},
			{InvoiceNumber: "INV-2", DueDate: fixedClock(), TotalAmount: decimal.NewFromInt(500), PaidAmount: decimal.NewFromInt(200)},
		},
	}

	aggregator := NewAggregator(contracts, invoices, &mockViolationLister{}, testWords, fixedClock, zap.NewNop())

	agg, err := aggregator.Aggregate(context.Background(), testTarget())
	require.NoError(t, err)
	require.Len(t, agg.Invoices, 1)
	assert.Equal(t, "INV-2", agg.Invoices[0].Number)
	assert.True(t, agg.InvoiceTotal.Equal(decimal.NewFromInt(300)))
}

func TestAggregateOrganizationName(t *testing.T) {
	contracts := &mockContractReader{
		contract: &models.Contract{
			ID:             "c-1",
			ContractNumber: "CNT-100",
			Customer: &models.Customer{
				CustomerType: models.CustomerTypeOrganization,
				CompanyName:  "Gulf Logistics LLC",
			},
		},
	}

	aggregator := NewAggregator(contracts, &mockInvoiceLister{}, &mockViolationLister{}, testWords, fixedClock, zap.NewNop())

	agg, err := aggregator.Aggregate(context.Background(), testTarget())
	require.NoError(t, err)
	assert.Equal(t, "Gulf Logistics LLC", agg.CustomerName)
}

func TestAggregateLookupFailureNamesCustomer(t *testing.T) {
	contracts := &mockContractReader{err: errors.New("connection reset")}
	aggregator := NewAggregator(contracts, &mockInvoiceLister{}, &mockViolationLister{}, testWords, fixedClock, zap.NewNop())

	_, err := aggregator.Aggregate(context.Background(), testTarget())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ahmed Al-Balushi")
}

func TestAggregateContractMissing(t *testing.T) {
	aggregator := NewAggregator(&mockContractReader{}, &mockInvoiceLister{}, &mockViolationLister{}, testWords, fixedClock, zap.NewNop())

	_, err := aggregator.Aggregate(context.Background(), testTarget())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contract not found")
}
