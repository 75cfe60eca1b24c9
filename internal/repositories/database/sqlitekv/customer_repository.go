package sqlitekv

import (
	"context"
	"errors"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
	"github.com/typoapparel/tbm_backend/internal/models"
	"github.com/typoapparel/tbm_backend/internal/utils/mapping"
)

type KVCustomerRepository struct {
	BaseRepository
}

// newKVCustomerRepository creates the customer book repository.
func newKVCustomerRepository(store *Store) portsrepo.CustomerRepository {
	return &KVCustomerRepository{BaseRepository: BaseRepository{Store: store}}
}

// Ensure implementation matches interface
var _ portsrepo.CustomerRepository = (*KVCustomerRepository)(nil)

// ListCustomers loads the full customer collection.
func (r *KVCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var stored []models.Customer
	if err := r.getJSON(ctx, keyCustomers, &stored); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return []domain.Customer{}, nil
		}
		return nil, err
	}
	return mapping.ToDomainCustomerSlice(stored), nil
}

// ReplaceCustomers flushes the whole customer collection.
func (r *KVCustomerRepository) ReplaceCustomers(ctx context.Context, customers []domain.Customer) error {
	return r.putJSON(ctx, keyCustomers, mapping.ToModelCustomerSlice(customers))
}
