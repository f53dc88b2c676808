package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType is the closed set of account classifications.
type AccountType string

const (
	TypeBank       AccountType = "BANK"
	TypeCash       AccountType = "CASH"
	TypeCreditCard AccountType = "CREDIT_CARD"
	TypeInvestment AccountType = "INVESTMENT"
)

// Account represents a single financial account inside the aggregate root.
// Balance is always the initial value plus the net signed effect of every
// non-reverted transaction referencing the account.
type Account struct {
	AccountID    string          `json:"accountID"` // Primary Key (UUID)
	Name         string          `json:"name"`
	AccountType  AccountType     `json:"accountType"`
	Balance      decimal.Decimal `json:"balance"`
	CurrencyCode string          `json:"currencyCode"` // Native currency; no cross-currency conversion anywhere
}
