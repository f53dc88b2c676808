package dto

import (
	"time"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
)

// SyncStateResponse exposes local/remote divergence to clients.
type SyncStateResponse struct {
	Dirty      bool       `json:"dirty"`
	DirtySince *time.Time `json:"dirtySince,omitempty"`
}

// FinancialDataResponse is the full aggregate snapshot returned to clients.
type FinancialDataResponse struct {
	User         UserResponse          `json:"user"`
	Accounts     []AccountResponse     `json:"accounts"`
	Transactions []TransactionResponse `json:"transactions"`
	Stocks       []StockResponse       `json:"stocks"`
	SyncState    SyncStateResponse     `json:"syncState"`
}

// ToFinancialDataResponse converts the aggregate root to its response DTO.
func ToFinancialDataResponse(data *domain.FinancialData) FinancialDataResponse {
	return FinancialDataResponse{
		User:         ToUserResponse(&data.User),
		Accounts:     ToListAccountResponse(data.Accounts),
		Transactions: ToListTransactionResponse(data.Transactions, data),
		Stocks:       ToListStockResponse(data.Stocks),
		SyncState: SyncStateResponse{
			Dirty:      data.SyncState.Dirty,
			DirtySince: data.SyncState.DirtySince,
		},
	}
}
