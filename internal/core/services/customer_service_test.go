package services_test

import (
	"context"
	"testing"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/core/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ReplaceCustomers(ctx context.Context, customers []domain.Customer) error {
	args := m.Called(ctx, customers)
	return args.Error(0)
}

// --- Test Suite ---
type CustomerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCustomerRepository
	service  portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCustomerRepository)
	suite.service = services.NewCustomerService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CustomerServiceTestSuite) TestSaveCustomer_InsertAssignsIDAndZeroSpent() {
	ctx := context.Background()
	req := dto.SaveCustomerRequest{Name: "Aye Chan", Phone: "09-12345"}

	suite.mockRepo.On("ListCustomers", ctx).Return([]domain.Customer{}, nil).Once()
	suite.mockRepo.On("ReplaceCustomers", ctx, mock.MatchedBy(func(cs []domain.Customer) bool {
		return len(cs) == 1 && cs[0].Name == "Aye Chan" && cs[0].TotalSpent.IsZero()
	})).Return(nil).Once()

	saved, err := suite.service.SaveCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(saved)
	suite.NotEmpty(saved.CustomerID)
	suite.True(saved.TotalSpent.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestSaveCustomer_UpdatePreservesTotalSpent() {
	ctx := context.Background()
	existing := domain.Customer{
		CustomerID: "cust-1",
		Name:       "Old Name",
		TotalSpent: decimal.NewFromInt(75000),
	}
	req := dto.SaveCustomerRequest{ID: "cust-1", Name: "New Name", Notes: "wholesale buyer"}

	suite.mockRepo.On("ListCustomers", ctx).Return([]domain.Customer{existing}, nil).Once()
	suite.mockRepo.On("ReplaceCustomers", ctx, mock.MatchedBy(func(cs []domain.Customer) bool {
		return len(cs) == 1 &&
			cs[0].CustomerID == "cust-1" &&
			cs[0].Name == "New Name" &&
			cs[0].TotalSpent.Equal(decimal.NewFromInt(75000))
	})).Return(nil).Once()

	saved, err := suite.service.SaveCustomer(ctx, req)

	suite.Require().NoError(err)
	suite.True(saved.TotalSpent.Equal(decimal.NewFromInt(75000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestSaveCustomer_UpdateUnknownID() {
	ctx := context.Background()
	req := dto.SaveCustomerRequest{ID: "missing", Name: "Ghost"}

	suite.mockRepo.On("ListCustomers", ctx).Return([]domain.Customer{}, nil).Once()

	saved, err := suite.service.SaveCustomer(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(saved)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceCustomers", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestSaveCustomer_RequiresName() {
	ctx := context.Background()

	saved, err := suite.service.SaveCustomer(ctx, dto.SaveCustomerRequest{})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(saved)
}

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_Success() {
	ctx := context.Background()
	customers := []domain.Customer{{CustomerID: "keep"}, {CustomerID: "gone"}}

	suite.mockRepo.On("ListCustomers", ctx).Return(customers, nil).Once()
	suite.mockRepo.On("ReplaceCustomers", ctx, mock.MatchedBy(func(cs []domain.Customer) bool {
		return len(cs) == 1 && cs[0].CustomerID == "keep"
	})).Return(nil).Once()

	err := suite.service.DeleteCustomer(ctx, "gone")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestDeleteCustomer_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("ListCustomers", ctx).Return([]domain.Customer{{CustomerID: "keep"}}, nil).Once()

	err := suite.service.DeleteCustomer(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceCustomers", mock.Anything, mock.Anything)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
