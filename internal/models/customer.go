package models

// Customer is the stored/exported form of a customer contact.
type Customer struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	Email      string  `json:"email,omitempty"`
	Address    string  `json:"address,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	TotalSpent float64 `json:"totalSpent"`
}
