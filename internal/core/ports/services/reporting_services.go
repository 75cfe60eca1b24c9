package services

import (
	"context"

	"github.com/typoapparel/tbm_backend/internal/core/domain"
	"github.com/typoapparel/tbm_backend/internal/dto"
)

// ReportingSvcFacade derives dashboard data from the raw collections. Every
// call recomputes from scratch; derived state is never a source of truth.
type ReportingSvcFacade interface {
	Summary(ctx context.Context) (*dto.SummaryResponse, error)
	BalanceSeries(ctx context.Context) ([]domain.BalancePoint, error)
	ExpenseBreakdown(ctx context.Context) ([]domain.CategoryTotal, error)
}
