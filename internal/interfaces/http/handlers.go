package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alarafrental/collections/internal/collections"
)

// DocumentService runs bulk document generation
type DocumentService interface {
	Generate(ctx context.Context, targets []collections.CollectionTarget, opts collections.Options, onProgress collections.ProgressFunc) (*collections.BatchResult, error)
}

// LifecycleService escalates contracts through the collections process
type LifecycleService interface {
	MarkOpeningComplaint(ctx context.Context, contractIDs []string) error
	ConvertToCase(ctx context.Context, contractID, companyID string) (string, error)
}

// Handlers contains all HTTP request handlers
type Handlers struct {
	documents   DocumentService
	lifecycle   LifecycleService
	archiveName string
	logger      *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(documents DocumentService, lifecycle LifecycleService, archiveName string, logger *zap.Logger) *Handlers {
	if archiveName == "" {
		archiveName = "legal-documents.zip"
	}
	return &Handlers{
		documents:   documents,
		lifecycle:   lifecycle,
		archiveName: archiveName,
		logger:      logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// GenerateRequest is the bulk generation request body
type GenerateRequest struct {
	Targets []collections.CollectionTarget `json:"targets"`
	Options *collections.Options           `json:"options"`
}

// OpeningComplaintRequest flags contracts after their complaint was filed
type OpeningComplaintRequest struct {
	ContractIDs []string `json:"contract_ids"`
}

// ConvertCaseRequest opens a legal case for one contract
type ConvertCaseRequest struct {
	ContractID string `json:"contract_id"`
	CompanyID  string `json:"company_id"`
}

// CaseResponse carries the ID of a newly opened case
type CaseResponse struct {
	CaseID string `json:"case_id"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "1.0.0",
		},
	})
}

// GenerateDocuments handles POST /api/collections/generate. The response body
// is the zip archive itself; batch metadata travels in headers so partial
// failures still deliver the documents that did generate.
func (h *Handlers) GenerateDocuments(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid generate request", zap.Error(err))
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}
	if len(req.Targets) == 0 {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "at least one target is required"})
		return
	}

	opts := collections.DefaultOptions()
	if req.Options != nil {
		opts = *req.Options
	}

	h.logger.Info("Bulk generation requested", zap.Int("targets", len(req.Targets)))

	result, err := h.documents.Generate(c.Request.Context(), req.Targets, opts, nil)
	if err != nil {
		h.logger.Error("Bulk generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "generation failed: " + err.Error()})
		return
	}

	status := string(collections.StatusCompleted)
	if len(result.Errors) > 0 {
		status = string(collections.StatusError)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.archiveName))
	c.Header("X-Generation-Status", status)
	c.Header("X-Generation-Succeeded", fmt.Sprintf("%d", result.Succeeded))
	c.Header("X-Generation-Failed", fmt.Sprintf("%d", result.Failed))
	c.Data(http.StatusOK, "application/zip", result.Archive)
}

// MarkOpeningComplaint handles POST /api/collections/opening-complaint
func (h *Handlers) MarkOpeningComplaint(c *gin.Context) {
	var req OpeningComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid opening complaint request", zap.Error(err))
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}
	if len(req.ContractIDs) == 0 {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "at least one contract ID is required"})
		return
	}

	if err := h.lifecycle.MarkOpeningComplaint(c.Request.Context(), req.ContractIDs); err != nil {
		h.logger.Error("Failed to mark opening complaint", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to update contracts"})
		return
	}

	c.JSON(http.StatusOK, Response{Success: true})
}

// ConvertToCase handles POST /api/collections/cases
func (h *Handlers) ConvertToCase(c *gin.Context) {
	var req ConvertCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid convert case request", zap.Error(err))
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}
	if req.ContractID == "" {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "contract_id is required"})
		return
	}

	caseID, err := h.lifecycle.ConvertToCase(c.Request.Context(), req.ContractID, req.CompanyID)
	if err != nil {
		h.logger.Error("Failed to convert contract to case",
			zap.String("contract_id", req.ContractID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to open case"})
		return
	}

	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    CaseResponse{CaseID: caseID},
	})
}
