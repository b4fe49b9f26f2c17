package collections

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Contractual late-payment penalty: 120 per day, capped at 3000 per invoice
var (
	latePenaltyPerDay = decimal.NewFromInt(120)
	latePenaltyCap    = decimal.NewFromInt(3000)
)

// Aggregator computes the financial rollup for one collection target
type Aggregator struct {
	contracts  ContractReader
	invoices   InvoiceLister
	violations ViolationLister
	words      AmountWordsFunc
	now        Clock
	logger     *zap.Logger
}

// NewAggregator creates a new financial aggregator
func NewAggregator(
	contracts ContractReader,
	invoices InvoiceLister,
	violations ViolationLister,
	words AmountWordsFunc,
	now Clock,
	logger *zap.Logger,
) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{
		contracts:  contracts,
		invoices:   invoices,
		violations: violations,
		words:      words,
		now:        now,
		logger:     logger,
	}
}

// Aggregate pulls the contract, unpaid invoices and outstanding violations
// for a target and reduces them to a single overdue rollup. Lookup failures
// are wrapped with the failing customer's name; there are no retries.
func (a *Aggregator) Aggregate(ctx context.Context, target CollectionTarget) (*FinancialAggregate, error) {
	a.logger.Debug("Aggregating financials",
		zap.String("contract_id", target.ContractID),
		zap.String("customer", target.CustomerName))

	contract, err := a.contracts.GetByID(ctx, target.ContractID)
	if err != nil {
		a.logger.Error("Failed to load contract",
			zap.String("contract_id", target.ContractID),
			zap.Error(err))
		return nil, fmt.Errorf("aggregation failed for %s: %w", target.CustomerName, err)
	}
	if contract == nil {
		return nil, fmt.Errorf("aggregation failed for %s: contract not found: %s", target.CustomerName, target.ContractID)
	}

	invoices, err := a.invoices.ListByContract(ctx, target.ContractID)
	if err != nil {
		return nil, fmt.Errorf("aggregation failed for %s: %w", target.CustomerName, err)
	}

	violations, err := a.violations.ListOutstandingByContract(ctx, target.ContractID)
	if err != nil {
		return nil, fmt.Errorf("aggregation failed for %s: %w", target.CustomerName, err)
	}

	agg := &FinancialAggregate{
		CustomerName:   target.CustomerName,
		NationalID:     target.NationalID,
		Phone:          target.Phone,
		ContractNumber: contract.ContractNumber,
		ContractStart:  contract.StartDate,
		ContractEnd:    contract.EndDate,
		MonthlyAmount:  contract.MonthlyAmount,
		DaysOverdue:    target.DaysOverdue,
	}
	if contract.ContractNumber == "" {
		agg.ContractNumber = target.ContractNumber
	}

	if customer := contract.Customer; customer != nil {
		if name := customer.DisplayName(); name != "" {
			agg.CustomerName = name
		}
		if customer.NationalID != "" {
			agg.NationalID = customer.NationalID
		}
		if customer.Phone != "" {
			agg.Phone = customer.Phone
		}
	}
	if vehicle := contract.Vehicle; vehicle != nil {
		agg.VehiclePlate = vehicle.PlateNumber
		agg.VehicleModel = vehicle.Description()
	}

	today := a.now()
	agg.InvoiceTotal = decimal.Zero
	agg.PenaltyTotal = decimal.Zero
	for _, invoice := range invoices {
		balance := invoice.Balance()
		if !balance.IsPositive() {
			continue
		}

		daysLate := daysBetween(invoice.DueDate, today)
		penalty := latePenaltyPerDay.Mul(decimal.NewFromInt(int64(daysLate)))
		if penalty.GreaterThan(latePenaltyCap) {
			penalty = latePenaltyCap
		}

		agg.Invoices = append(agg.Invoices, InvoiceLine{
			Number:   invoice.InvoiceNumber,
			DueDate:  invoice.DueDate,
			Total:    invoice.TotalAmount,
			Paid:     invoice.PaidAmount,
			Balance:  balance,
			DaysLate: daysLate,
			Penalty:  penalty,
		})
		agg.InvoiceTotal = agg.InvoiceTotal.Add(balance)
		agg.PenaltyTotal = agg.PenaltyTotal.Add(penalty)
	}

	agg.ViolationTotal = decimal.Zero
	for _, violation := range violations {
		agg.Violations = append(agg.Violations, ViolationLine{
			Number:   violation.ViolationNumber,
			Date:     violation.ViolationDate,
			Type:     violation.ViolationType,
			Location: violation.Location,
			Fine:     violation.FineAmount,
		})
		agg.ViolationTotal = agg.ViolationTotal.Add(violation.FineAmount)
	}

	agg.GrandTotal = agg.InvoiceTotal.Add(agg.ViolationTotal)
	agg.GrandTotalWords = a.words(agg.GrandTotal)

	a.logger.Debug("Financial aggregation complete",
		zap.String("contract_id", target.ContractID),
		zap.Int("unpaid_invoices", len(agg.Invoices)),
		zap.Int("violations", len(agg.Violations)),
		zap.String("grand_total", agg.GrandTotal.StringFixed(3)))

	return agg, nil
}

// daysBetween returns whole days from due until today, floored at zero
func daysBetween(due, today time.Time) int {
	days := int(today.Sub(due).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
