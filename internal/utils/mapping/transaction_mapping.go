package mapping

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/typoapparel/tbm_backend/internal/models"
)

// parseTime parses an interchange timestamp. Imported data is accepted
// as-is, so an unparseable date maps to the zero time rather than an error.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ToModelTransaction converts a domain Transaction to its interchange form
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:          d.TransactionID,
		Date:        d.Date.UTC().Format(time.RFC3339),
		Description: d.Description,
		Amount:      d.Amount.InexactFloat64(),
		Type:        string(d.Type),
		Category:    d.Category,
	}
}

// ToDomainTransaction converts an interchange Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.ID,
		Date:          parseTime(m.Date),
		Description:   m.Description,
		Amount:        decimal.NewFromFloat(m.Amount),
		Type:          domain.TransactionType(m.Type),
		Category:      m.Category,
	}
}

// ToModelTransactionSlice converts a slice of domain Transactions to interchange form
func ToModelTransactionSlice(ds []domain.Transaction) []models.Transaction {
	ms := make([]models.Transaction, len(ds))
	for i, d := range ds {
		ms[i] = ToModelTransaction(d)
	}
	return ms
}

// ToDomainTransactionSlice converts a slice of interchange Transactions to domain form
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
