package lifecycle

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alarafrental/collections/internal/models"
)

// ContractUpdater applies legal status changes to contracts
type ContractUpdater interface {
	BulkUpdateLegalStatus(ctx context.Context, ids []string, legalStatus string) error
	UpdateForCaseOpened(ctx context.Context, id string) error
}

// CaseCreator persists new legal case records
type CaseCreator interface {
	Create(ctx context.Context, legalCase *models.LegalCase) error
}

// Controller drives the collections escalation of contracts: marking opening
// complaints after a document batch and converting contracts to court cases.
type Controller struct {
	contracts ContractUpdater
	cases     CaseCreator
	logger    *zap.Logger
}

// NewController creates a lifecycle controller
func NewController(contracts ContractUpdater, cases CaseCreator, logger *zap.Logger) *Controller {
	return &Controller{
		contracts: contracts,
		cases:     cases,
		logger:    logger,
	}
}

// MarkOpeningComplaint flags every given contract as having its opening
// complaint filed. The update is a plain status overwrite, so repeating it
// for already-flagged contracts is harmless.
func (c *Controller) MarkOpeningComplaint(ctx context.Context, contractIDs []string) error {
	if len(contractIDs) == 0 {
		return fmt.Errorf("no contracts given")
	}

	c.logger.Info("Marking opening complaint", zap.Int("contracts", len(contractIDs)))
	if err := c.contracts.BulkUpdateLegalStatus(ctx, contractIDs, models.LegalStatusOpeningComplaint); err != nil {
		return fmt.Errorf("failed to mark opening complaint: %w", err)
	}
	return nil
}

// ConvertToCase opens a debt collection case for the contract and moves it
// into legal procedure. Every call files a new case; converting the same
// contract twice produces two distinct case records on purpose, since a
// contract can accumulate multiple filings over its life.
func (c *Controller) ConvertToCase(ctx context.Context, contractID, companyID string) (string, error) {
	if contractID == "" {
		return "", fmt.Errorf("contract ID is required")
	}

	legalCase := &models.LegalCase{
		ContractID: contractID,
		CompanyID:  companyID,
		CaseType:   models.CaseTypeDebtCollection,
		Status:     models.CaseStatusOpen,
	}
	if err := c.cases.Create(ctx, legalCase); err != nil {
		return "", fmt.Errorf("failed to convert contract %s to case: %w", contractID, err)
	}

	if err := c.contracts.UpdateForCaseOpened(ctx, contractID); err != nil {
		// the case row exists; the contract keeps its old status until retried
		c.logger.Error("Case created but contract update failed",
			zap.String("case_id", legalCase.ID),
			zap.String("contract_id", contractID),
			zap.Error(err))
		return "", fmt.Errorf("failed to convert contract %s to case: %w", contractID, err)
	}

	c.logger.Info("Contract converted to legal case",
		zap.String("case_id", legalCase.ID),
		zap.String("contract_id", contractID))
	return legalCase.ID, nil
}
