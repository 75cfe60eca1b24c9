package dto

import "github.com/typoapparel/tbm_backend/internal/core/domain"

// SaveCustomerRequest inserts or updates a customer. An empty ID means
// create; a non-empty ID updates the existing record.
type SaveCustomerRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	Email      string  `json:"email,omitempty"`
	Address    string  `json:"address,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	TotalSpent float64 `json:"totalSpent"`
}

// ToCustomerResponse converts a domain Customer to its response DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.CustomerID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		Address:    c.Address,
		Notes:      c.Notes,
		TotalSpent: c.TotalSpent.InexactFloat64(),
	}
}

// ToListCustomerResponse converts a slice of domain Customers to response DTOs
func ToListCustomerResponse(cs []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(cs))
	for i := range cs {
		res[i] = ToCustomerResponse(&cs[i])
	}
	return res
}
