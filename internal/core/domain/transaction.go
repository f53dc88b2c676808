package domain

import "github.com/shopspring/decimal"

// TransactionType determines the sign of a transaction's effect on its account.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
	// Transfer is declared for document compatibility but has no effect
	// semantics; creating one is rejected at the service layer.
	Transfer TransactionType = "TRANSFER"
)

// Transaction is a single ledger entry referencing one account.
// Amount is always stored positive; the sign of the balance effect is derived
// solely from Type.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	AccountID     string          `json:"accountID"`     // Reference into FinancialData.Accounts
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Category      string          `json:"category"` // Free-form; SuggestedCategories lists the conventional values
	Date          string          `json:"date"`     // ISO calendar date, YYYY-MM-DD
	Note          string          `json:"note,omitempty"`
}

// SuggestedCategories is the conventional category list offered to clients.
var SuggestedCategories = []string{
	"Food", "Transport", "Salary", "Rent", "Utilities",
	"Entertainment", "Healthcare", "Shopping", "Investment", "Other",
}
