package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	"github.com/smartfin/smartfinance_backend/internal/utils/accounting"
)

func testAccounts(balance int64) []domain.Account {
	return []domain.Account{
		{AccountID: "a1", Name: "Savings", AccountType: domain.TypeBank, Balance: decimal.NewFromInt(balance), CurrencyCode: "TWD"},
		{AccountID: "a2", Name: "Wallet", AccountType: domain.TypeCash, Balance: decimal.NewFromInt(500), CurrencyCode: "TWD"},
	}
}

func TestSignedEffect(t *testing.T) {
	income := domain.Transaction{Amount: decimal.NewFromInt(100), Type: domain.Income}
	expense := domain.Transaction{Amount: decimal.NewFromInt(100), Type: domain.Expense}
	transfer := domain.Transaction{Amount: decimal.NewFromInt(100), Type: domain.Transfer}

	assert.True(t, accounting.SignedEffect(income).Equal(decimal.NewFromInt(100)))
	assert.True(t, accounting.SignedEffect(expense).Equal(decimal.NewFromInt(-100)))
	assert.True(t, accounting.SignedEffect(transfer).IsZero())
}

func TestApplyTransaction_Income(t *testing.T) {
	accounts := testAccounts(1000)
	txn := domain.Transaction{AccountID: "a1", Amount: decimal.NewFromInt(200), Type: domain.Income}

	updated := accounting.ApplyTransaction(accounts, txn)

	assert.True(t, updated[0].Balance.Equal(decimal.NewFromInt(1200)))
	assert.True(t, updated[1].Balance.Equal(decimal.NewFromInt(500)))
	// Input slice untouched
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(1000)))
}

func TestApplyTransaction_Expense(t *testing.T) {
	accounts := testAccounts(1000)
	txn := domain.Transaction{AccountID: "a1", Amount: decimal.NewFromInt(200), Type: domain.Expense}

	updated := accounting.ApplyTransaction(accounts, txn)

	assert.True(t, updated[0].Balance.Equal(decimal.NewFromInt(800)))
}

func TestApplyTransaction_UnknownAccountIsDropped(t *testing.T) {
	accounts := testAccounts(1000)
	txn := domain.Transaction{AccountID: "missing", Amount: decimal.NewFromInt(200), Type: domain.Expense}

	updated := accounting.ApplyTransaction(accounts, txn)

	require.Len(t, updated, 2)
	assert.True(t, updated[0].Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, updated[1].Balance.Equal(decimal.NewFromInt(500)))
}

func TestRevertTransaction_InvertsApply(t *testing.T) {
	accounts := testAccounts(1000)
	txn := domain.Transaction{AccountID: "a1", Amount: decimal.NewFromInt(200), Type: domain.Expense}

	applied := accounting.ApplyTransaction(accounts, txn)
	require.True(t, applied[0].Balance.Equal(decimal.NewFromInt(800)))

	reverted := accounting.RevertTransaction(applied, txn)
	assert.True(t, reverted[0].Balance.Equal(decimal.NewFromInt(1000)))
}

func TestRevertTransaction_Income(t *testing.T) {
	accounts := testAccounts(1000)
	txn := domain.Transaction{AccountID: "a1", Amount: decimal.NewFromInt(300), Type: domain.Income}

	reverted := accounting.RevertTransaction(accounts, txn)

	assert.True(t, reverted[0].Balance.Equal(decimal.NewFromInt(700)))
}
