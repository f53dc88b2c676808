package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeletedAccountLabel is substituted wherever a transaction references an
// account that has since been removed from the document.
const DeletedAccountLabel = "Deleted account"

// SyncState makes local/remote divergence observable: when a document save
// fails, the in-memory snapshot is kept and flagged dirty instead of being
// rolled back. It is never persisted as part of the document.
type SyncState struct {
	Dirty      bool       `json:"dirty"`
	DirtySince *time.Time `json:"dirtySince,omitempty"`
}

// FinancialData is the aggregate root: the whole persisted unit for one user.
// The document store treats it as a single opaque document keyed by user ID.
// All update paths produce a new value; snapshots are never mutated in place.
type FinancialData struct {
	User         User           `json:"user"`
	Accounts     []Account      `json:"accounts"`
	Transactions []Transaction  `json:"transactions"`
	Stocks       []StockHolding `json:"stocks"`
	SyncState    SyncState      `json:"syncState,omitempty"`
}

// FindAccount returns the account with the given ID, or nil.
func (d *FinancialData) FindAccount(accountID string) *Account {
	for i := range d.Accounts {
		if d.Accounts[i].AccountID == accountID {
			return &d.Accounts[i]
		}
	}
	return nil
}

// AccountName resolves an account reference for display, substituting the
// placeholder label for orphaned references.
func (d *FinancialData) AccountName(accountID string) string {
	if acc := d.FindAccount(accountID); acc != nil {
		return acc.Name
	}
	return DeletedAccountLabel
}

// MarkDirty returns a copy of the snapshot flagged as diverged from the
// remote store since the given time. An already-dirty snapshot keeps its
// original divergence timestamp.
func (d FinancialData) MarkDirty(since time.Time) FinancialData {
	if d.SyncState.Dirty {
		return d
	}
	d.SyncState = SyncState{Dirty: true, DirtySince: &since}
	return d
}

// PriceQuote is the result of a market price lookup for one symbol.
type PriceQuote struct {
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// RefreshReport is the explicit outcome of a bulk price refresh: which
// symbols were updated and which lookups failed (those holdings keep their
// prior price).
type RefreshReport struct {
	Updated []string `json:"updated"`
	Failed  []string `json:"failed"`
}

// DefaultFinancialData seeds the document created on a user's first login.
func DefaultFinancialData(user User, now time.Time) FinancialData {
	today := now.Format("2006-01-02")
	lastUpdated := now
	return FinancialData{
		User: user,
		Accounts: []Account{
			{AccountID: "1", Name: "Primary Savings", AccountType: TypeBank, Balance: decimal.NewFromInt(150000), CurrencyCode: "TWD"},
			{AccountID: "2", Name: "Wallet Cash", AccountType: TypeCash, Balance: decimal.NewFromInt(3000), CurrencyCode: "TWD"},
		},
		Transactions: []Transaction{
			{TransactionID: "t1", AccountID: "1", Amount: decimal.NewFromInt(50000), Type: Income, Category: "Salary", Date: today, Note: "Monthly Salary"},
			{TransactionID: "t2", AccountID: "2", Amount: decimal.NewFromInt(120), Type: Expense, Category: "Food", Date: today, Note: "Lunch"},
		},
		Stocks: []StockHolding{
			{StockID: "s1", Symbol: "2330.TW", Name: "TSMC", Shares: decimal.NewFromInt(1000), AverageCost: decimal.NewFromInt(600), CurrentPrice: decimal.NewFromInt(950), LastUpdated: &lastUpdated},
		},
	}
}
