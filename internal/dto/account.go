package dto

import (
	"github.com/shopspring/decimal"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
// Balance is a pointer so that an explicit zero balance passes the required
// check while an omitted balance does not.
type CreateAccountRequest struct {
	Name         string             `json:"name" binding:"required"`
	AccountType  domain.AccountType `json:"accountType" binding:"omitempty,oneof=BANK CASH CREDIT_CARD INVESTMENT"`
	Balance      *decimal.Decimal   `json:"balance" binding:"required"`
	CurrencyCode string             `json:"currencyCode"` // Optional, defaults to the configured currency
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish omitted fields from zero-value updates.
type UpdateAccountRequest struct {
	Name         *string             `json:"name"`
	AccountType  *domain.AccountType `json:"accountType" binding:"omitempty,oneof=BANK CASH CREDIT_CARD INVESTMENT"`
	Balance      *decimal.Decimal    `json:"balance"`
	CurrencyCode *string             `json:"currencyCode"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID    string             `json:"accountID"`
	Name         string             `json:"name"`
	AccountType  domain.AccountType `json:"accountType"`
	Balance      decimal.Decimal    `json:"balance"`
	CurrencyCode string             `json:"currencyCode"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    acc.AccountID,
		Name:         acc.Name,
		AccountType:  acc.AccountType,
		Balance:      acc.Balance,
		CurrencyCode: acc.CurrencyCode,
	}
}

// ToListAccountResponse converts a slice of domain.Account to DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(acc)
	}
	return res
}
