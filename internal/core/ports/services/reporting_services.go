package services

import (
	"context"

	"github.com/smartfin/smartfinance_backend/internal/dto"
)

// ReportingSvcFacade derives read-only views from the aggregate snapshot.
// All operations are pure over the fetched data and never fail on empty
// collections.
type ReportingSvcFacade interface {
	DashboardSummary(ctx context.Context, userID string) (*dto.DashboardSummaryResponse, error)
	RecentTransactions(ctx context.Context, userID string, limit int) ([]dto.TransactionResponse, error)
	ExpenseByCategory(ctx context.Context, userID string) (*dto.ExpenseByCategoryResponse, error)
	MonthlyFlow(ctx context.Context, userID string) (*dto.MonthlyFlowResponse, error)
	HoldingsReport(ctx context.Context, userID string) (*dto.HoldingsReportResponse, error)
}
