package mapping

import (
	"github.com/shopspring/decimal"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/typoapparel/tbm_backend/internal/models"
)

// ToModelCustomer converts a domain Customer to its interchange form
func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		ID:         d.CustomerID,
		Name:       d.Name,
		Phone:      d.Phone,
		Email:      d.Email,
		Address:    d.Address,
		Notes:      d.Notes,
		TotalSpent: d.TotalSpent.InexactFloat64(),
	}
}

// ToDomainCustomer converts an interchange Customer to domain form
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID: m.ID,
		Name:       m.Name,
		Phone:      m.Phone,
		Email:      m.Email,
		Address:    m.Address,
		Notes:      m.Notes,
		TotalSpent: decimal.NewFromFloat(m.TotalSpent),
	}
}

// ToModelCustomerSlice converts a slice of domain Customers to interchange form
func ToModelCustomerSlice(ds []domain.Customer) []models.Customer {
	ms := make([]models.Customer, len(ds))
	for i, d := range ds {
		ms[i] = ToModelCustomer(d)
	}
	return ms
}

// ToDomainCustomerSlice converts a slice of interchange Customers to domain form
func ToDomainCustomerSlice(ms []models.Customer) []domain.Customer {
	ds := make([]domain.Customer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomer(m)
	}
	return ds
}

// ToModelProfile converts a domain BusinessProfile to its interchange form
func ToModelProfile(d domain.BusinessProfile) models.BusinessProfile {
	return models.BusinessProfile(d)
}

// ToDomainProfile converts an interchange BusinessProfile to domain form
func ToDomainProfile(m models.BusinessProfile) domain.BusinessProfile {
	return domain.BusinessProfile(m)
}
