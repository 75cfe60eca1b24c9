package services

import (
	"context"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/typoapparel/tbm_backend/internal/dto"
)

// CustomerSvcFacade exposes the customer book operations.
type CustomerSvcFacade interface {
	// SaveCustomer inserts (empty id) or updates (existing id) a customer.
	SaveCustomer(ctx context.Context, req dto.SaveCustomerRequest) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}
