package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BackupService ---
type MockBackupService struct {
	mock.Mock
}

func (m *MockBackupService) Export(ctx context.Context) (*dto.BackupPayload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BackupPayload), args.Error(1)
}
func (m *MockBackupService) Import(ctx context.Context, payload []byte) (*dto.ImportResult, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportResult), args.Error(1)
}
func (m *MockBackupService) ExportTransactionsCSV(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockBackupService) ExportInventoryCSV(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockBackupService) ResetAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.BackupSvcFacade = (*MockBackupService)(nil)

// --- Test Suite ---
type BackupHandlerTestSuite struct {
	suite.Suite
	mockService *MockBackupService
	router      *gin.Engine
}

func (suite *BackupHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockBackupService)
	suite.router = setupTestRouter(&portssvc.ServiceContainer{Backup: suite.mockService})
}

func (suite *BackupHandlerTestSuite) perform(method, path string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BackupHandlerTestSuite) TestExport_OK() {
	payload := &dto.BackupPayload{
		Version:    dto.BackupFormatVersion,
		ExportedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	suite.mockService.On("Export", mock.Anything).Return(payload, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/backup/export", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "typo-backup.json")
	var resp dto.BackupPayload
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.BackupFormatVersion, resp.Version)
}

func (suite *BackupHandlerTestSuite) TestImport_OK() {
	body := []byte(`{"transactions": []}`)
	result := &dto.ImportResult{Replaced: []string{"transactions"}, Counts: map[string]int{"transactions": 0}}
	suite.mockService.On("Import", mock.Anything, body).Return(result, nil).Once()

	w := suite.perform(http.MethodPost, "/api/v1/backup/import", body)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *BackupHandlerTestSuite) TestImport_ParseFailureIsUnprocessable() {
	body := []byte(`{not json`)
	suite.mockService.On("Import", mock.Anything, body).Return(nil, apperrors.ErrParseFailure).Once()

	w := suite.perform(http.MethodPost, "/api/v1/backup/import", body)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *BackupHandlerTestSuite) TestImport_InvalidFormatIsUnprocessable() {
	body := []byte(`{"foo": 1}`)
	suite.mockService.On("Import", mock.Anything, body).Return(nil, apperrors.ErrInvalidFormat).Once()

	w := suite.perform(http.MethodPost, "/api/v1/backup/import", body)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *BackupHandlerTestSuite) TestExportTransactionsCSV_OK() {
	csvData := []byte("Date,Description,Type,Category,Amount\n")
	suite.mockService.On("ExportTransactionsCSV", mock.Anything).Return(csvData, nil).Once()

	w := suite.perform(http.MethodGet, "/api/v1/backup/export/transactions.csv", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv"))
	suite.Equal(string(csvData), w.Body.String())
}

func (suite *BackupHandlerTestSuite) TestReset_RequiresConfirmPhrase() {
	w := suite.perform(http.MethodPost, "/api/v1/system/reset", []byte(`{"confirm":"yes please"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ResetAll", mock.Anything)
}

func (suite *BackupHandlerTestSuite) TestReset_OK() {
	suite.mockService.On("ResetAll", mock.Anything).Return(nil).Once()

	w := suite.perform(http.MethodPost, "/api/v1/system/reset", []byte(`{"confirm":"ERASE"}`))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestBackupHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BackupHandlerTestSuite))
}
