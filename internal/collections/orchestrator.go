package collections

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const generationReportName = "generation-report.txt"

// Financials produces the per-target rollup the composer renders from
type Financials interface {
	Aggregate(ctx context.Context, target CollectionTarget) (*FinancialAggregate, error)
}

// Generator runs the bulk pipeline: aggregate, compose, package. Targets are
// processed strictly in order; one target's failure never aborts the rest.
type Generator struct {
	financials Financials
	composer   *Composer
	words      AmountWordsFunc
	policy     InclusionPolicy
	now        Clock
	logger     *zap.Logger
}

// NewGenerator creates a batch generator
func NewGenerator(
	financials Financials,
	composer *Composer,
	words AmountWordsFunc,
	now Clock,
	logger *zap.Logger,
) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{
		financials: financials,
		composer:   composer,
		words:      words,
		policy:     DefaultPolicy(),
		now:        now,
		logger:     logger,
	}
}

// Generate processes every target sequentially and packages the results into
// one archive. Per-target failures are recorded in the error manifest and the
// run continues; only packaging failures and context cancellation abort the
// whole run. Cancellation is checked between targets, never mid-target.
func (g *Generator) Generate(ctx context.Context, targets []CollectionTarget, opts Options, onProgress ProgressFunc) (*BatchResult, error) {
	g.logger.Info("Starting bulk document generation", zap.Int("targets", len(targets)))

	var (
		folders    []CustomerDocuments
		aggregates []*FinancialAggregate
		errs       []string
	)

	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			g.logger.Warn("Bulk generation cancelled",
				zap.Int("processed", i),
				zap.Int("total", len(targets)))
			return nil, err
		}

		emit(onProgress, Progress{
			Current:         i + 1,
			Total:           len(targets),
			CurrentCustomer: target.CustomerName,
			Status:          StatusGenerating,
			Errors:          copyErrors(errs),
		})

		folder, agg, err := g.generateOne(ctx, target, opts)
		if err != nil {
			g.logger.Warn("Target failed, continuing batch",
				zap.String("customer", target.CustomerName),
				zap.Error(err))
			errs = append(errs, fmt.Sprintf("generation failed for %s: %v", target.CustomerName, err))
			continue
		}

		folders = append(folders, folder)
		aggregates = append(aggregates, agg)
	}

	extras, err := g.buildExtras(aggregates, len(targets), errs)
	if err != nil {
		return nil, err
	}

	archive, err := Pack(folders, extras)
	if err != nil {
		return nil, fmt.Errorf("failed to package archive: %w", err)
	}

	result := &BatchResult{
		Archive:   archive,
		Errors:    errs,
		Succeeded: len(folders),
		Failed:    len(errs),
	}
	for _, folder := range folders {
		result.Folders = append(result.Folders, folder.FolderName)
	}

	final := StatusCompleted
	if len(errs) > 0 {
		final = StatusError
	}
	emit(onProgress, Progress{
		Current: len(targets),
		Total:   len(targets),
		Status:  final,
		Errors:  copyErrors(errs),
	})

	g.logger.Info("Bulk document generation finished",
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed))
	return result, nil
}

// generateOne builds the full document set for a single target
func (g *Generator) generateOne(ctx context.Context, target CollectionTarget, opts Options) (CustomerDocuments, *FinancialAggregate, error) {
	agg, err := g.financials.Aggregate(ctx, target)
	if err != nil {
		return CustomerDocuments{}, nil, err
	}

	var docs DocumentSet
	for _, kind := range kindOrder {
		if !g.policy.Includes(kind, agg, opts) {
			continue
		}

		var doc Document
		switch kind {
		case KindClaimsStatement:
			doc, err = g.composer.ComposeClaimsStatement(agg)
		case KindDocumentsChecklist:
			doc, err = g.composer.ComposeDocumentsChecklist(agg, opts)
		case KindCriminalComplaint:
			doc, err = g.composer.ComposeCriminalComplaint(agg)
		case KindViolationsTransfer:
			doc, err = g.composer.ComposeViolationsTransfer(agg, opts.TransferViolations)
		case KindExplanatoryMemo:
			doc, err = g.composer.ComposeExplanatoryMemo(agg, opts, g.words)
		}
		if err != nil {
			return CustomerDocuments{}, nil, err
		}
		docs = append(docs, doc)
	}

	if opts.Portfolio {
		portfolio, err := g.composer.ComposePortfolio(agg, docs, opts.Attachments)
		if err != nil {
			return CustomerDocuments{}, nil, err
		}
		docs = append(docs, portfolio)
	}

	return CustomerDocuments{
		FolderName:     SanitizeFolderName(agg.ContractNumber, agg.CustomerName),
		CustomerName:   agg.CustomerName,
		ContractNumber: agg.ContractNumber,
		Documents:      docs,
	}, agg, nil
}

// buildExtras produces the batch-level archive root files: the case-data
// workbook and the generation report. Failure here aborts the run; a batch
// archive without its case data is not deliverable.
func (g *Generator) buildExtras(aggregates []*FinancialAggregate, total int, errs []string) ([]Document, error) {
	workbook, err := BuildCaseWorkbook(aggregates)
	if err != nil {
		return nil, fmt.Errorf("failed to build case workbook: %w", err)
	}

	return []Document{
		{Name: caseWorkbookName, Content: workbook},
		{Name: generationReportName, Content: g.buildReport(aggregates, total, errs)},
	}, nil
}

func (g *Generator) buildReport(aggregates []*FinancialAggregate, total int, errs []string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "BULK GENERATION REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", g.now().Format(dateLayout))
	fmt.Fprintf(&b, "Targets:   %d\n", total)
	fmt.Fprintf(&b, "Succeeded: %d\n", len(aggregates))
	fmt.Fprintf(&b, "Failed:    %d\n", len(errs))

	if len(aggregates) > 0 {
		fmt.Fprintf(&b, "\nGenerated cases:\n")
		for i, agg := range aggregates {
			fmt.Fprintf(&b, "  %d. %s | contract %s | total due %s\n",
				i+1, agg.CustomerName, agg.ContractNumber, agg.GrandTotal.StringFixed(3))
		}
	}
	if len(errs) > 0 {
		fmt.Fprintf(&b, "\nErrors:\n")
		for i, msg := range errs {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, msg)
		}
	}
	return []byte(b.String())
}

func emit(onProgress ProgressFunc, p Progress) {
	if onProgress != nil {
		onProgress(p)
	}
}

func copyErrors(errs []string) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	copy(out, errs)
	return out
}
