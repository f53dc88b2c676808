package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockHolding is one position in the user's investment portfolio.
type StockHolding struct {
	StockID      string          `json:"stockID"` // Primary Key (UUID)
	Symbol       string          `json:"symbol"`  // e.g. 2330.TW, AAPL
	Name         string          `json:"name"`
	Shares       decimal.Decimal `json:"shares"`
	AverageCost  decimal.Decimal `json:"averageCost"`  // Cost basis per share
	CurrentPrice decimal.Decimal `json:"currentPrice"` // Initialized to AverageCost until the first refresh
	LastUpdated  *time.Time      `json:"lastUpdated,omitempty"`
}

// MarketValue returns shares times current price.
func (s StockHolding) MarketValue() decimal.Decimal {
	return s.Shares.Mul(s.CurrentPrice)
}

// CostBasis returns shares times average cost.
func (s StockHolding) CostBasis() decimal.Decimal {
	return s.Shares.Mul(s.AverageCost)
}
