package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alarafrental/collections/internal/collections"
)

type mockDocumentService struct {
	result *collections.BatchResult
	err    error
}

func (m *mockDocumentService) Generate(_ context.Context, _ []collections.CollectionTarget, _ collections.Options, _ collections.ProgressFunc) (*collections.BatchResult, error) {
	return m.result, m.err
}

type mockLifecycleService struct {
	markedIDs []string
	markErr   error
	caseID    string
	caseErr   error
}

func (m *mockLifecycleService) MarkOpeningComplaint(_ context.Context, contractIDs []string) error {
	m.markedIDs = contractIDs
	return m.markErr
}

func (m *mockLifecycleService) ConvertToCase(_ context.Context, _, _ string) (string, error) {
	return m.caseID, m.caseErr
}

func testRouter(documents DocumentService, lifecycle LifecycleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := NewServer(DefaultServerConfig(), documents, lifecycle, zap.NewNop())
	return server.Router()
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(&mockDocumentService{}, &mockLifecycleService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestGenerateDocuments(t *testing.T) {
	documents := &mockDocumentService{
		result: &collections.BatchResult{
			Archive:   []byte("zip bytes"),
			Succeeded: 2,
			Failed:    1,
			Errors:    []string{"generation failed for Fatima: contract not found"},
		},
	}
	router := testRouter(documents, &mockLifecycleService{})

	rec := postJSON(t, router, "/api/collections/generate", GenerateRequest{
		Targets: []collections.CollectionTarget{{ContractID: "c-1"}},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="legal-documents.zip"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "error", rec.Header().Get("X-Generation-Status"))
	assert.Equal(t, "2", rec.Header().Get("X-Generation-Succeeded"))
	assert.Equal(t, "1", rec.Header().Get("X-Generation-Failed"))
	assert.Equal(t, "zip bytes", rec.Body.String())
}

func TestGenerateDocumentsCleanRun(t *testing.T) {
	documents := &mockDocumentService{
		result: &collections.BatchResult{Archive: []byte("zip"), Succeeded: 1},
	}
	router := testRouter(documents, &mockLifecycleService{})

	rec := postJSON(t, router, "/api/collections/generate", GenerateRequest{
		Targets: []collections.CollectionTarget{{ContractID: "c-1"}},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "completed", rec.Header().Get("X-Generation-Status"))
}

func TestGenerateDocumentsNoTargets(t *testing.T) {
	router := testRouter(&mockDocumentService{}, &mockLifecycleService{})

	rec := postJSON(t, router, "/api/collections/generate", GenerateRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateDocumentsFailure(t *testing.T) {
	documents := &mockDocumentService{err: errors.New("packaging failed")}
	router := testRouter(documents, &mockLifecycleService{})

	rec := postJSON(t, router, "/api/collections/generate", GenerateRequest{
		Targets: []collections.CollectionTarget{{ContractID: "c-1"}},
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestMarkOpeningComplaint(t *testing.T) {
	lifecycle := &mockLifecycleService{}
	router := testRouter(&mockDocumentService{}, lifecycle)

	rec := postJSON(t, router, "/api/collections/opening-complaint", OpeningComplaintRequest{
		ContractIDs: []string{"c-1", "c-2"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"c-1", "c-2"}, lifecycle.markedIDs)
}

func TestMarkOpeningComplaintEmpty(t *testing.T) {
	router := testRouter(&mockDocumentService{}, &mockLifecycleService{})

	rec := postJSON(t, router, "/api/collections/opening-complaint", OpeningComplaintRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvertToCase(t *testing.T) {
	lifecycle := &mockLifecycleService{caseID: "case-123"}
	router := testRouter(&mockDocumentService{}, lifecycle)

	rec := postJSON(t, router, "/api/collections/cases", ConvertCaseRequest{
		ContractID: "c-1",
		CompanyID:  "company-1",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"case_id":"case-123"}`, string(data))
}

func TestConvertToCaseMissingContract(t *testing.T) {
	router := testRouter(&mockDocumentService{}, &mockLifecycleService{})

	rec := postJSON(t, router, "/api/collections/cases", ConvertCaseRequest{CompanyID: "company-1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvertToCaseFailure(t *testing.T) {
	lifecycle := &mockLifecycleService{caseErr: errors.New("disk full")}
	router := testRouter(&mockDocumentService{}, lifecycle)

	rec := postJSON(t, router, "/api/collections/cases", ConvertCaseRequest{ContractID: "c-1"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
