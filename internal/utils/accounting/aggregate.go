package accounting

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
)

// CashAssets sums every account balance. No currency normalization is
// applied; balances are summed as-is.
func CashAssets(data domain.FinancialData) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range data.Accounts {
		total = total.Add(acc.Balance)
	}
	return total
}

// InvestmentValue sums the market value of every stock holding.
func InvestmentValue(data domain.FinancialData) decimal.Decimal {
	total := decimal.Zero
	for _, s := range data.Stocks {
		total = total.Add(s.MarketValue())
	}
	return total
}

// NetWorth is cash assets plus investment value.
func NetWorth(data domain.FinancialData) decimal.Decimal {
	return CashAssets(data).Add(InvestmentValue(data))
}

// RecentTransactions returns up to n transactions ordered by date descending.
// Ties keep the original collection order (stable sort).
func RecentTransactions(data domain.FinancialData, n int) []domain.Transaction {
	out := make([]domain.Transaction, len(data.Transactions))
	copy(out, data.Transactions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// ExpenseByCategory totals EXPENSE transactions per category. Categories with
// no expense transactions are omitted, never zero-filled.
func ExpenseByCategory(data domain.FinancialData) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range data.Transactions {
		if txn.Type != domain.Expense {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}
	return totals
}

// MonthFlow is the income/expense total for one calendar month.
type MonthFlow struct {
	Month   string          `json:"month"` // YYYY-MM
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlyFlow buckets transactions by the 7-character month prefix of their
// date. TRANSFER transactions contribute to neither bucket but still produce
// their month key. The result is sorted ascending by month for presentation.
func MonthlyFlow(data domain.FinancialData) []MonthFlow {
	buckets := make(map[string]*MonthFlow)
	for _, txn := range data.Transactions {
		if len(txn.Date) < 7 {
			continue
		}
		month := txn.Date[:7]
		b, ok := buckets[month]
		if !ok {
			b = &MonthFlow{Month: month}
			buckets[month] = b
		}
		switch txn.Type {
		case domain.Income:
			b.Income = b.Income.Add(txn.Amount)
		case domain.Expense:
			b.Expense = b.Expense.Add(txn.Amount)
		}
	}

	out := make([]MonthFlow, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// HoldingPL is the derived performance figures for one stock holding.
type HoldingPL struct {
	MarketValue   decimal.Decimal `json:"marketValue"`
	CostBasis     decimal.Decimal `json:"costBasis"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitPercent decimal.Decimal `json:"profitPercent"`
}

// HoldingPerformance computes market value, cost basis and unrealized P/L for
// a holding. ProfitPercent is zero when the cost basis is zero.
func HoldingPerformance(stock domain.StockHolding) HoldingPL {
	marketValue := stock.MarketValue()
	costBasis := stock.CostBasis()
	profit := marketValue.Sub(costBasis)

	profitPercent := decimal.Zero
	if costBasis.IsPositive() {
		profitPercent = profit.Div(costBasis).Mul(decimal.NewFromInt(100))
	}

	return HoldingPL{
		MarketValue:   marketValue,
		CostBasis:     costBasis,
		Profit:        profit,
		ProfitPercent: profitPercent,
	}
}
