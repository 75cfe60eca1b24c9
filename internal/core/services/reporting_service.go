package services

import (
	"context"
	"fmt"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	portsrepo "github.com/typoapparel/tbm_backend/internal/core/ports/repositories"
	portssvc "github.com/typoapparel/tbm_backend/internal/core/ports/services"
	"github.com/typoapparel/tbm_backend/internal/dto"
	"github.com/typoapparel/tbm_backend/internal/utils/accounting"
)

type reportingService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
	invRepo portsrepo.InventoryRepository
}

// NewReportingService creates the reporting service. Everything it returns
// is recomputed from the raw collections on each call; derived state is
// never cached or persisted.
func NewReportingService(txnRepo portsrepo.TransactionRepository, invRepo portsrepo.InventoryRepository) portssvc.ReportingSvcFacade {
	return &reportingService{txnRepo: txnRepo, invRepo: invRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Summary derives the dashboard header: financial state, inventory stats and
// pre-formatted MMK display strings.
func (s *reportingService) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for summary: %w", err)
	}
	items, err := s.invRepo.ListInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory for summary: %w", err)
	}

	summary := dto.ToSummaryResponse(
		accounting.ComputeFinancials(transactions),
		accounting.ComputeInventoryStats(items),
	)
	return &summary, nil
}

// BalanceSeries derives the running-balance chart points.
func (s *reportingService) BalanceSeries(ctx context.Context) ([]domain.BalancePoint, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for balance series: %w", err)
	}
	return accounting.ComputeBalanceSeries(transactions), nil
}

// ExpenseBreakdown derives the per-category expense totals.
func (s *reportingService) ExpenseBreakdown(ctx context.Context) ([]domain.CategoryTotal, error) {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for expense breakdown: %w", err)
	}
	return accounting.ComputeExpenseBreakdown(transactions), nil
}
