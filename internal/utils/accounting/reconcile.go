// Package accounting holds the pure calculation core of the application:
// balance reconciliation between accounts and their transaction ledger, and
// the read-only aggregations behind the dashboard and reports. Nothing here
// performs I/O or mutates its inputs.
package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
)

// SignedEffect returns the signed balance effect of a transaction:
// +amount for INCOME, -amount for EXPENSE, zero for anything else
// (TRANSFER has no effect semantics).
func SignedEffect(txn domain.Transaction) decimal.Decimal {
	switch txn.Type {
	case domain.Income:
		return txn.Amount
	case domain.Expense:
		return txn.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// ApplyTransaction returns a new account slice with the transaction's effect
// added to the balance of the matching account. The input slice is never
// mutated. When no account matches the reference, the effect is dropped;
// callers that need referential integrity must validate the reference before
// applying.
func ApplyTransaction(accounts []domain.Account, txn domain.Transaction) []domain.Account {
	return shiftBalance(accounts, txn.AccountID, SignedEffect(txn))
}

// RevertTransaction is the exact inverse of ApplyTransaction, used when a
// transaction is deleted so the account returns to its pre-transaction
// balance. Reverting a transaction that was never applied corrupts the
// balance; call discipline is the caller's responsibility.
func RevertTransaction(accounts []domain.Account, txn domain.Transaction) []domain.Account {
	return shiftBalance(accounts, txn.AccountID, SignedEffect(txn).Neg())
}

func shiftBalance(accounts []domain.Account, accountID string, delta decimal.Decimal) []domain.Account {
	out := make([]domain.Account, len(accounts))
	copy(out, accounts)
	for i := range out {
		if out[i].AccountID == accountID {
			out[i].Balance = out[i].Balance.Add(delta)
			break
		}
	}
	return out
}
