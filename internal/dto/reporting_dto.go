package dto

import (
	"github.com/shopspring/decimal"

	"github.com/smartfin/smartfinance_backend/internal/utils/accounting"
)

// DashboardSummaryResponse is the headline figure set for the dashboard.
// NetWorth always equals CashAssets + InvestmentValue.
type DashboardSummaryResponse struct {
	NetWorth        decimal.Decimal `json:"netWorth"`
	CashAssets      decimal.Decimal `json:"cashAssets"`
	InvestmentValue decimal.Decimal `json:"investmentValue"`
}

// CategoryTotalResponse is one row of the expense-by-category report.
type CategoryTotalResponse struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseByCategoryResponse wraps the category report rows.
type ExpenseByCategoryResponse struct {
	Categories []CategoryTotalResponse `json:"categories"`
}

// MonthFlowResponse is one month bucket of the monthly income/expense report.
type MonthFlowResponse struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyFlowResponse wraps the month buckets in ascending month order.
type MonthlyFlowResponse struct {
	Months []MonthFlowResponse `json:"months"`
}

// ToMonthlyFlowResponse converts aggregator month buckets to the report DTO.
func ToMonthlyFlowResponse(flows []accounting.MonthFlow) MonthlyFlowResponse {
	months := make([]MonthFlowResponse, len(flows))
	for i, f := range flows {
		months[i] = MonthFlowResponse{Month: f.Month, Income: f.Income, Expense: f.Expense}
	}
	return MonthlyFlowResponse{Months: months}
}

// HoldingsReportResponse wraps per-holding performance rows.
type HoldingsReportResponse struct {
	Holdings []StockResponse `json:"holdings"`
	Totals   struct {
		MarketValue decimal.Decimal `json:"marketValue"`
		CostBasis   decimal.Decimal `json:"costBasis"`
		Profit      decimal.Decimal `json:"profit"`
	} `json:"totals"`
}

// AdviceResponse carries generated financial advice text. Text is a
// user-facing fallback message when the generation collaborator fails.
type AdviceResponse struct {
	Advice string `json:"advice"`
}
