package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/typoapparel/tbm_backend/internal/platform/metrics"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepository
}

// NewCustomerService creates the customer book service.
func NewCustomerService(customerRepo portsrepo.CustomerRepository) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// SaveCustomer inserts (empty id) or updates (existing id) a customer.
// TotalSpent is preserved on update and starts at zero on insert; it is
// stored, never derived.
func (s *customerService) SaveCustomer(ctx context.Context, req dto.SaveCustomerRequest) (*domain.Customer, error) {
	if req.Name == "" {
		metrics.MutationFailuresTotal.WithLabelValues("customer", "save").Inc()
		return nil, fmt.Errorf("customer name is required: %w", apperrors.ErrValidation)
	}

	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers in service: %w", err)
	}

	var saved domain.Customer
	if req.ID == "" {
		saved = domain.Customer{
			CustomerID: uuid.NewString(),
			Name:       req.Name,
			Phone:      req.Phone,
			Email:      req.Email,
			Address:    req.Address,
			Notes:      req.Notes,
			TotalSpent: decimal.Zero,
		}
		customers = append([]domain.Customer{saved}, customers...)
	} else {
		idx := -1
		for i := range customers {
			if customers[i].CustomerID == req.ID {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, fmt.Errorf("customer %s: %w", req.ID, apperrors.ErrNotFound)
		}
		saved = customers[idx]
		saved.Name = req.Name
		saved.Phone = req.Phone
		saved.Email = req.Email
		saved.Address = req.Address
		saved.Notes = req.Notes
		customers[idx] = saved
	}

	if err := s.customerRepo.ReplaceCustomers(ctx, customers); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("customer", "save").Inc()
		return nil, fmt.Errorf("failed to flush customers in service: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("customer", "save").Inc()
	s.LogInfo(ctx, "Customer saved", slog.String("customer_id", saved.CustomerID))
	return &saved, nil
}

// ListCustomers returns the full customer book.
func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers in service: %w", err)
	}
	return customers, nil
}

// DeleteCustomer removes a customer from the book.
func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	customers, err := s.customerRepo.ListCustomers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load customers in service: %w", err)
	}

	remaining := customers[:0:0]
	for _, c := range customers {
		if c.CustomerID != customerID {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(customers) {
		return fmt.Errorf("customer %s: %w", customerID, apperrors.ErrNotFound)
	}

	if err := s.customerRepo.ReplaceCustomers(ctx, remaining); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("customer", "delete").Inc()
		return fmt.Errorf("failed to flush customers in service: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("customer", "delete").Inc()
	return nil
}
