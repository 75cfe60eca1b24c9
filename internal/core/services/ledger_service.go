package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/typoapparel/tbm_backend/internal/platform/metrics"
)

type ledgerService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewLedgerService creates the ledger service.
func NewLedgerService(txnRepo portsrepo.TransactionRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{txnRepo: txnRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateTransaction validates and appends a new ledger entry. Rejections are
// explicit ErrValidation errors, never silent no-ops.
func (s *ledgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validateTransactionInput(req.Amount, req.Description, req.Type, req.Category); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("transaction", "create").Inc()
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Date:          time.Now().UTC(),
		Description:   req.Description,
		Amount:        decimal.NewFromFloat(req.Amount),
		Type:          domain.TransactionType(req.Type),
		Category:      req.Category,
	}

	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger in service: %w", err)
	}

	// Newest first, like the client keeps its list.
	transactions = append([]domain.Transaction{txn}, transactions...)

	if err := s.txnRepo.ReplaceTransactions(ctx, transactions); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("transaction", "create").Inc()
		return nil, fmt.Errorf("failed to flush ledger in service: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("transaction", "create").Inc()
	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

// UpdateTransaction replaces an entry's fields, preserving the original id
// and creation date.
func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := validateTransactionInput(req.Amount, req.Description, req.Type, req.Category); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("transaction", "update").Inc()
		return nil, err
	}

	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger in service: %w", err)
	}

	idx := -1
	for i := range transactions {
		if transactions[i].TransactionID == transactionID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}

	updated := transactions[idx]
	updated.Description = req.Description
	updated.Amount = decimal.NewFromFloat(req.Amount)
	updated.Type = domain.TransactionType(req.Type)
	updated.Category = req.Category
	transactions[idx] = updated

	if err := s.txnRepo.ReplaceTransactions(ctx, transactions); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("transaction", "update").Inc()
		return nil, fmt.Errorf("failed to flush ledger in service: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("transaction", "update").Inc()
	return &updated, nil
}

// DeleteTransaction removes an entry from the ledger.
func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger in service: %w", err)
	}

	remaining := transactions[:0:0]
	for _, txn := range transactions {
		if txn.TransactionID != transactionID {
			remaining = append(remaining, txn)
		}
	}
	if len(remaining) == len(transactions) {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}

	if err := s.txnRepo.ReplaceTransactions(ctx, remaining); err != nil {
		metrics.MutationFailuresTotal.WithLabelValues("transaction", "delete").Inc()
		return fmt.Errorf("failed to flush ledger in service: %w", err)
	}

	metrics.MutationsTotal.WithLabelValues("transaction", "delete").Inc()
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// ListTransactions returns entries newest first, optionally filtered by a
// case-insensitive substring match on description or category.
func (s *ledgerService) ListTransactions(ctx context.Context, query string) ([]domain.Transaction, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger in service: %w", err)
	}

	if query != "" {
		q := strings.ToLower(query)
		filtered := transactions[:0:0]
		for _, txn := range transactions {
			if strings.Contains(strings.ToLower(txn.Description), q) ||
				strings.Contains(strings.ToLower(txn.Category), q) {
				filtered = append(filtered, txn)
			}
		}
		transactions = filtered
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions, nil
}

// validateTransactionInput re-checks the create/edit preconditions so
// callers that bypass HTTP binding still get explicit rejections.
func validateTransactionInput(amount float64, description, txType, category string) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}
	if description == "" {
		return fmt.Errorf("description is required: %w", apperrors.ErrValidation)
	}
	t := domain.TransactionType(txType)
	if t != domain.Income && t != domain.Expense {
		return fmt.Errorf("type must be income or expense: %w", apperrors.ErrValidation)
	}
	if !domain.IsValidCategory(t, category) {
		return fmt.Errorf("category %q is not valid for type %s: %w", category, txType, apperrors.ErrValidation)
	}
	return nil
}
