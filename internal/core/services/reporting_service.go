package services

import (
	"context"
	"sort"

	"github.com/smartfin/smartfinance_backend/internal/utils/accounting"

	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/dto"
)

type reportingService struct {
	ledger portssvc.LedgerReaderSvc
}

// NewReportingService creates the reporting service on top of the ledger
// reader.
func NewReportingService(ledger portssvc.LedgerReaderSvc) portssvc.ReportingSvcFacade {
	return &reportingService{ledger: ledger}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) DashboardSummary(ctx context.Context, userID string) (*dto.DashboardSummaryResponse, error) {
	data, err := s.ledger.GetFinancialData(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryResponse{
		NetWorth:        accounting.NetWorth(*data),
		CashAssets:      accounting.CashAssets(*data),
		InvestmentValue: accounting.InvestmentValue(*data),
	}, nil
}

func (s *reportingService) RecentTransactions(ctx context.Context, userID string, limit int) ([]dto.TransactionResponse, error) {
	data, err := s.ledger.GetFinancialData(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.ToListTransactionResponse(accounting.RecentTransactions(*data, limit), data), nil
}

func (s *reportingService) ExpenseByCategory(ctx context.Context, userID string) (*dto.ExpenseByCategoryResponse, error) {
	data, err := s.ledger.GetFinancialData(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := accounting.ExpenseByCategory(*data)
	rows := make([]dto.CategoryTotalResponse, 0, len(totals))
	for category, total := range totals {
		rows = append(rows, dto.CategoryTotalResponse{Category: category, Total: total})
	}
	// Largest spend first, category name as tiebreak for stable output.
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Category < rows[j].Category
	})

	return &dto.ExpenseByCategoryResponse{Categories: rows}, nil
}

func (s *reportingService) MonthlyFlow(ctx context.Context, userID string) (*dto.MonthlyFlowResponse, error) {
	data, err := s.ledger.GetFinancialData(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := dto.ToMonthlyFlowResponse(accounting.MonthlyFlow(*data))
	return &res, nil
}

func (s *reportingService) HoldingsReport(ctx context.Context, userID string) (*dto.HoldingsReportResponse, error) {
	data, err := s.ledger.GetFinancialData(ctx, userID)
	if err != nil {
		return nil, err
	}

	res := &dto.HoldingsReportResponse{Holdings: dto.ToListStockResponse(data.Stocks)}
	for _, h := range res.Holdings {
		res.Totals.MarketValue = res.Totals.MarketValue.Add(h.MarketValue)
		res.Totals.CostBasis = res.Totals.CostBasis.Add(h.CostBasis)
		res.Totals.Profit = res.Totals.Profit.Add(h.Profit)
	}
	return res, nil
}
