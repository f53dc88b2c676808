package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	"github.com/smartfin/smartfinance_backend/internal/utils/accounting"
)

// CreateStockRequest defines the data needed to add a stock holding.
// The current price is initialized to the average cost; there is no live
// price until the first refresh.
type CreateStockRequest struct {
	Symbol      string          `json:"symbol" binding:"required"`
	Name        string          `json:"name"` // Optional, defaults to the symbol
	Shares      decimal.Decimal `json:"shares" binding:"required"`
	AverageCost decimal.Decimal `json:"averageCost" binding:"required"`
}

// StockResponse defines the data returned for a stock holding, including the
// derived performance figures.
type StockResponse struct {
	StockID       string          `json:"stockID"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Shares        decimal.Decimal `json:"shares"`
	AverageCost   decimal.Decimal `json:"averageCost"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	LastUpdated   *time.Time      `json:"lastUpdated,omitempty"`
	MarketValue   decimal.Decimal `json:"marketValue"`
	CostBasis     decimal.Decimal `json:"costBasis"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitPercent decimal.Decimal `json:"profitPercent"`
}

// ToStockResponse converts a domain.StockHolding to StockResponse DTO.
func ToStockResponse(s domain.StockHolding) StockResponse {
	pl := accounting.HoldingPerformance(s)
	return StockResponse{
		StockID:       s.StockID,
		Symbol:        s.Symbol,
		Name:          s.Name,
		Shares:        s.Shares,
		AverageCost:   s.AverageCost,
		CurrentPrice:  s.CurrentPrice,
		LastUpdated:   s.LastUpdated,
		MarketValue:   pl.MarketValue,
		CostBasis:     pl.CostBasis,
		Profit:        pl.Profit,
		ProfitPercent: pl.ProfitPercent,
	}
}

// ToListStockResponse converts a slice of holdings.
func ToListStockResponse(stocks []domain.StockHolding) []StockResponse {
	res := make([]StockResponse, len(stocks))
	for i, s := range stocks {
		res[i] = ToStockResponse(s)
	}
	return res
}

// RefreshReportResponse is the outcome of a bulk price refresh.
type RefreshReportResponse struct {
	Updated []string        `json:"updated"`
	Failed  []string        `json:"failed"`
	Stocks  []StockResponse `json:"stocks"`
}
