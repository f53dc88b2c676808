package dto

import (
	"github.com/shopspring/decimal"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount must be positive; the sign of the balance effect is derived from
// Type. TRANSFER is accepted by the binding layer but rejected by the
// service with a validation error.
type CreateTransactionRequest struct {
	AccountID string                 `json:"accountID" binding:"required"`
	Amount    decimal.Decimal        `json:"amount" binding:"required"`
	Type      domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE TRANSFER"`
	Category  string                 `json:"category" binding:"required"`
	Date      string                 `json:"date" binding:"omitempty,txdate"`
	Note      string                 `json:"note"`
}

// TransactionResponse defines the data returned for a transaction, with the
// account reference resolved to a display name (placeholder when the account
// has been deleted).
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	AccountName   string                 `json:"accountName"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	Category      string                 `json:"category"`
	Date          string                 `json:"date"`
	Note          string                 `json:"note,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction, resolving the account
// name against the snapshot.
func ToTransactionResponse(txn domain.Transaction, data *domain.FinancialData) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		AccountID:     txn.AccountID,
		AccountName:   data.AccountName(txn.AccountID),
		Amount:        txn.Amount,
		Type:          txn.Type,
		Category:      txn.Category,
		Date:          txn.Date,
		Note:          txn.Note,
	}
}

// ToListTransactionResponse converts a slice of transactions.
func ToListTransactionResponse(txns []domain.Transaction, data *domain.FinancialData) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn, data)
	}
	return res
}
