package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/core/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error {
	args := m.Called(ctx, transactions)
	return args.Error(0)
}

// --- Test Suite ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:      15000,
		Description: "Bulk t-shirt order",
		Type:        "income",
		Category:    "Sales Revenue",
	}

	suite.mockRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()
	suite.mockRepo.On("ReplaceTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 &&
			txns[0].Description == req.Description &&
			txns[0].Type == domain.Income &&
			txns[0].Amount.Equal(decimal.NewFromInt(15000))
	})).Return(nil).Once()

	created, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.TransactionID)
	suite.False(created.Date.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_PrependsNewestFirst() {
	ctx := context.Background()
	existing := domain.Transaction{TransactionID: uuid.NewString(), Description: "older"}
	req := dto.CreateTransactionRequest{
		Amount:      500,
		Description: "newer",
		Type:        "expense",
		Category:    "Logistics",
	}

	suite.mockRepo.On("ListTransactions", ctx).Return([]domain.Transaction{existing}, nil).Once()
	suite.mockRepo.On("ReplaceTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 2 && txns[0].Description == "newer" && txns[1].Description == "older"
	})).Return(nil).Once()

	_, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:      0,
		Description: "free stuff",
		Type:        "income",
		Category:    "Sales Revenue",
	}

	created, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceTransactions", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_RejectsCategoryFromWrongType() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Amount:      1000,
		Description: "mislabeled",
		Type:        "income",
		Category:    "Logistics", // expense category
	}

	created, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceTransactions", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_PreservesIDAndDate() {
	ctx := context.Background()
	originalDate := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	existing := domain.Transaction{
		TransactionID: "txn-1",
		Date:          originalDate,
		Description:   "original",
		Amount:        decimal.NewFromInt(100),
		Type:          domain.Income,
		Category:      "Sales Revenue",
	}
	req := dto.UpdateTransactionRequest{
		Amount:      250,
		Description: "corrected",
		Type:        "expense",
		Category:    "Marketing",
	}

	suite.mockRepo.On("ListTransactions", ctx).Return([]domain.Transaction{existing}, nil).Once()
	suite.mockRepo.On("ReplaceTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 &&
			txns[0].TransactionID == "txn-1" &&
			txns[0].Date.Equal(originalDate) &&
			txns[0].Description == "corrected" &&
			txns[0].Type == domain.Expense
	})).Return(nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, "txn-1", req)

	suite.Require().NoError(err)
	suite.Equal("txn-1", updated.TransactionID)
	suite.True(updated.Date.Equal(originalDate))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_NotFound() {
	ctx := context.Background()
	req := dto.UpdateTransactionRequest{
		Amount:      250,
		Description: "corrected",
		Type:        "expense",
		Category:    "Marketing",
	}

	suite.mockRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	updated, err := suite.service.UpdateTransaction(ctx, "missing", req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceTransactions", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_Success() {
	ctx := context.Background()
	keep := domain.Transaction{TransactionID: "keep"}
	gone := domain.Transaction{TransactionID: "gone"}

	suite.mockRepo.On("ListTransactions", ctx).Return([]domain.Transaction{keep, gone}, nil).Once()
	suite.mockRepo.On("ReplaceTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 1 && txns[0].TransactionID == "keep"
	})).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, "gone")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("ListTransactions", ctx).Return([]domain.Transaction{{TransactionID: "keep"}}, nil).Once()

	err := suite.service.DeleteTransaction(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceTransactions", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_FiltersAndSorts() {
	ctx := context.Background()
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	stored := []domain.Transaction{
		{TransactionID: "a", Date: older, Description: "Fabric restock", Category: "Inventory (Fabric)"},
		{TransactionID: "b", Date: newer, Description: "Shipping fees", Category: "Logistics"},
		{TransactionID: "c", Date: older, Description: "Ad campaign", Category: "Marketing"},
	}

	suite.mockRepo.On("ListTransactions", ctx).Return(stored, nil).Once()

	result, err := suite.service.ListTransactions(ctx, "fabric")

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("a", result[0].TransactionID)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_NewestFirst() {
	ctx := context.Background()
	older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	stored := []domain.Transaction{
		{TransactionID: "a", Date: older},
		{TransactionID: "b", Date: newer},
	}

	suite.mockRepo.On("ListTransactions", ctx).Return(stored, nil).Once()

	result, err := suite.service.ListTransactions(ctx, "")

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("b", result[0].TransactionID)
	suite.Equal("a", result[1].TransactionID)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListTransactions", ctx).Return(nil, assert.AnError).Once()

	result, err := suite.service.ListTransactions(ctx, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Nil(result)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
