package repositories

import (
	"context"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
)

// CustomerRepository persists the customer collection, whole-collection
// flush.
type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ReplaceCustomers(ctx context.Context, customers []domain.Customer) error
}
