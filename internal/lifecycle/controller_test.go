package lifecycle

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alarafrental/collections/internal/models"
)

type mockContractUpdater struct {
	bulkCalls  [][]string
	bulkStatus string
	bulkErr    error
	openedIDs  []string
	openedErr  error
}

func (m *mockContractUpdater) BulkUpdateLegalStatus(_ context.Context, ids []string, legalStatus string) error {
	m.bulkCalls = append(m.bulkCalls, ids)
	m.bulkStatus = legalStatus
	return m.bulkErr
}

func (m *mockContractUpdater) UpdateForCaseOpened(_ context.Context, id string) error {
	m.openedIDs = append(m.openedIDs, id)
	return m.openedErr
}

type mockCaseCreator struct {
	created []*models.LegalCase
	err     error
}

func (m *mockCaseCreator) Create(_ context.Context, legalCase *models.LegalCase) error {
	if m.err != nil {
		return m.err
	}
	legalCase.ID = uuid.NewString()
	m.created = append(m.created, legalCase)
	return nil
}

func TestMarkOpeningComplaint(t *testing.T) {
	contracts := &mockContractUpdater{}
	controller := NewController(contracts, &mockCaseCreator{}, zap.NewNop())

	ids := []string{"c-1", "c-2"}
	require.NoError(t, controller.MarkOpeningComplaint(context.Background(), ids))
	assert.Equal(t, models.LegalStatusOpeningComplaint, contracts.bulkStatus)
	require.Len(t, contracts.bulkCalls, 1)
	assert.Equal(t, ids, contracts.bulkCalls[0])

	// repeating the same batch is a no-op status overwrite, not an error
	require.NoError(t, controller.MarkOpeningComplaint(context.Background(), ids))
	assert.Len(t, contracts.bulkCalls, 2)
}

func TestMarkOpeningComplaintEmpty(t *testing.T) {
	controller := NewController(&mockContractUpdater{}, &mockCaseCreator{}, zap.NewNop())
	assert.Error(t, controller.MarkOpeningComplaint(context.Background(), nil))
}

func TestConvertToCase(t *testing.T) {
	contracts := &mockContractUpdater{}
	cases := &mockCaseCreator{}
	controller := NewController(contracts, cases, zap.NewNop())

	caseID, err := controller.ConvertToCase(context.Background(), "c-1", "company-1")
	require.NoError(t, err)
	assert.NotEmpty(t, caseID)

	require.Len(t, cases.created, 1)
	created := cases.created[0]
	assert.Equal(t, "c-1", created.ContractID)
	assert.Equal(t, "company-1", created.CompanyID)
	assert.Equal(t, models.CaseTypeDebtCollection, created.CaseType)
	assert.Equal(t, models.CaseStatusOpen, created.Status)

	assert.Equal(t, []string{"c-1"}, contracts.openedIDs)
}

func TestConvertToCaseTwiceFilesTwoCases(t *testing.T) {
	cases := &mockCaseCreator{}
	controller := NewController(&mockContractUpdater{}, cases, zap.NewNop())

	first, err := controller.ConvertToCase(context.Background(), "c-1", "company-1")
	require.NoError(t, err)
	second, err := controller.ConvertToCase(context.Background(), "c-1", "company-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, cases.created, 2)
}

func TestConvertToCaseCreateFails(t *testing.T) {
	contracts := &mockContractUpdater{}
	cases := &mockCaseCreator{err: errors.New("disk full")}
	controller := NewController(contracts, cases, zap.NewNop())

	_, err := controller.ConvertToCase(context.Background(), "c-1", "company-1")
	require.Error(t, err)
	assert.Empty(t, contracts.openedIDs)
}

func TestConvertToCaseUpdateFails(t *testing.T) {
	contracts := &mockContractUpdater{openedErr: errors.New("locked")}
	controller := NewController(contracts, &mockCaseCreator{}, zap.NewNop())

	_, err := controller.ConvertToCase(context.Background(), "c-1", "company-1")
	require.Error(t, err)
}

func TestConvertToCaseRequiresContract(t *testing.T) {
	controller := NewController(&mockContractUpdater{}, &mockCaseCreator{}, zap.NewNop())
	_, err := controller.ConvertToCase(context.Background(), "", "company-1")
	assert.Error(t, err)
}
