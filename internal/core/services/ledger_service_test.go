package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smartfin/smartfinance_backend/internal/apperrors"
	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/core/services"
	"github.com/smartfin/smartfinance_backend/internal/dto"
)

// MockFinancialDataRepository is a mock type for the FinancialDataRepository interface
type MockFinancialDataRepository struct {
	mock.Mock
}

func (m *MockFinancialDataRepository) FetchFinancialData(ctx context.Context, userID string) (*domain.FinancialData, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialData), args.Error(1)
}

func (m *MockFinancialDataRepository) SaveFinancialData(ctx context.Context, userID string, data domain.FinancialData) error {
	args := m.Called(ctx, userID, data)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockPriceLookup is a mock type for the PriceLookupSvc interface
type MockPriceLookup struct {
	mock.Mock
}

func (m *MockPriceLookup) LookupPrice(ctx context.Context, symbol string) (*domain.PriceQuote, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceQuote), args.Error(1)
}

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	mockDataRepo *MockFinancialDataRepository
	mockUserRepo *MockUserRepository
	mockPrices   *MockPriceLookup
	service      portssvc.LedgerSvcFacade
	userID       string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockDataRepo = new(MockFinancialDataRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockPrices = new(MockPriceLookup)
	suite.service = services.NewLedgerService(suite.mockDataRepo, suite.mockUserRepo,
		services.WithPriceLookup(suite.mockPrices),
		services.WithDefaultCurrency("TWD"),
		services.WithRefreshConcurrency(2),
	)
	suite.userID = "user-1"
}

func (suite *LedgerServiceTestSuite) snapshot() *domain.FinancialData {
	return &domain.FinancialData{
		User: domain.User{UserID: suite.userID, Username: "tester"},
		Accounts: []domain.Account{
			{AccountID: "a1", Name: "Savings", AccountType: domain.TypeBank, Balance: decimal.NewFromInt(1000), CurrencyCode: "TWD"},
		},
		Transactions: []domain.Transaction{
			{TransactionID: "t1", AccountID: "a1", Amount: decimal.NewFromInt(100), Type: domain.Expense, Category: "Food", Date: "2024-01-10"},
		},
		Stocks: []domain.StockHolding{
			{StockID: "s1", Symbol: "2330.TW", Name: "TSMC", Shares: decimal.NewFromInt(10), AverageCost: decimal.NewFromInt(500), CurrentPrice: decimal.NewFromInt(600)},
		},
	}
}

func (suite *LedgerServiceTestSuite) expectFetch(data *domain.FinancialData) {
	suite.mockDataRepo.On("FetchFinancialData", mock.Anything, suite.userID).Return(data, nil).Once()
}

func (suite *LedgerServiceTestSuite) expectSave() {
	suite.mockDataRepo.On("SaveFinancialData", mock.Anything, suite.userID, mock.AnythingOfType("domain.FinancialData")).Return(nil).Once()
}

// --- GetFinancialData ---

func (suite *LedgerServiceTestSuite) TestGetFinancialData_ReturnsExisting() {
	data := suite.snapshot()
	suite.expectFetch(data)

	got, err := suite.service.GetFinancialData(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(data.Accounts, got.Accounts)
	suite.mockDataRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetFinancialData_SeedsFirstAccess() {
	suite.mockDataRepo.On("FetchFinancialData", mock.Anything, suite.userID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, suite.userID).Return(&domain.User{UserID: suite.userID, Username: "tester"}, nil).Once()
	suite.expectSave()

	got, err := suite.service.GetFinancialData(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Len(got.Accounts, 2)
	suite.Len(got.Transactions, 2)
	suite.Len(got.Stocks, 1)
	suite.Equal("Primary Savings", got.Accounts[0].Name)
	suite.Equal("2330.TW", got.Stocks[0].Symbol)
	suite.False(got.SyncState.Dirty)
	suite.mockDataRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Accounts ---

func (suite *LedgerServiceTestSuite) TestAddAccount_AppliesDefaults() {
	suite.expectFetch(suite.snapshot())
	suite.expectSave()

	balance := decimal.NewFromInt(5000)
	got, err := suite.service.AddAccount(context.Background(), suite.userID, dto.CreateAccountRequest{
		Name:    "New Fund",
		Balance: &balance,
	})

	suite.Require().NoError(err)
	suite.Require().Len(got.Accounts, 2)
	added := got.Accounts[1]
	suite.NotEmpty(added.AccountID)
	suite.Equal(domain.TypeBank, added.AccountType)
	suite.Equal("TWD", added.CurrencyCode)
	suite.True(added.Balance.Equal(balance))
}

func (suite *LedgerServiceTestSuite) TestAddAccount_MissingNameFails() {
	balance := decimal.NewFromInt(5000)
	_, err := suite.service.AddAccount(context.Background(), suite.userID, dto.CreateAccountRequest{Balance: &balance})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDataRepo.AssertNotCalled(suite.T(), "SaveFinancialData", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateAccount_UnknownIDIsNoOp() {
	data := suite.snapshot()
	suite.expectFetch(data)

	name := "Renamed"
	got, err := suite.service.UpdateAccount(context.Background(), suite.userID, "missing", dto.UpdateAccountRequest{Name: &name})

	suite.Require().NoError(err)
	suite.Equal("Savings", got.Accounts[0].Name)
	suite.mockDataRepo.AssertNotCalled(suite.T(), "SaveFinancialData", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestUpdateAccount_ReplacesProvidedFields() {
	suite.expectFetch(suite.snapshot())
	suite.expectSave()

	name := "Renamed"
	got, err := suite.service.UpdateAccount(context.Background(), suite.userID, "a1", dto.UpdateAccountRequest{Name: &name})

	suite.Require().NoError(err)
	suite.Equal("Renamed", got.Accounts[0].Name)
	// Untouched fields survive
	suite.True(got.Accounts[0].Balance.Equal(decimal.NewFromInt(1000)))
}

func (suite *LedgerServiceTestSuite) TestDeleteAccount_TransactionsRemain() {
	suite.expectFetch(suite.snapshot())
	suite.expectSave()

	got, err := suite.service.DeleteAccount(context.Background(), suite.userID, "a1")

	suite.Require().NoError(err)
	suite.Empty(got.Accounts)
	suite.Require().Len(got.Transactions, 1)
	suite.Equal(domain.DeletedAccountLabel, got.AccountName(got.Transactions[0].AccountID))
}

// --- Transactions ---

func (suite *LedgerServiceTestSuite) TestAddTransaction_AppliesBalanceEffect() {
	suite.expectFetch(suite.snapshot())
	suite.expectSave()

	got, err := suite.service.AddTransaction(context.Background(), suite.userID, dto.CreateTransactionRequest{
		AccountID: "a1",
		Amount:    decimal.NewFromInt(200),
		Type:      domain.Expense,
		Category:  "Transport",
		Date:      "2024-02-01",
	})

	suite.Require().NoError(err)
	suite.True(got.Accounts[0].Balance.Equal(decimal.NewFromInt(800)))
	// Newest first
	suite.Require().Len(got.Transactions, 2)
	suite.Equal("Transport", got.Transactions[0].Category)
	suite.NotEmpty(got.Transactions[0].TransactionID)
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_DefaultsDateToToday() {
	suite.expectFetch(suite.snapshot())
	suite.expectSave()

	got, err := suite.service.AddTransaction(context.Background(), suite.userID, dto.CreateTransactionRequest{
		AccountID: "a1",
		Amount:    decimal.NewFromInt(50),
		Type:      domain.Income,
		Category:  "Other",
	})

	suite.Require().NoError(err)
	suite.Regexp(`^\d{4}-\d{2}-\d{2}$`, got.Transactions[0].Date)
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_RejectsTransfer() {
	_, err := suite.service.AddTransaction(context.Background(), suite.userID, dto.CreateTransactionRequest{
		AccountID: "a1",
		Amount:    decimal.NewFromInt(200),
		Type:      domain.Transfer,
		Category:  "Other",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAddTransaction_RejectsUnknownAccount() {
	suite.expectFetch(suite.snapshot())

	_, err := suite.service.AddTransaction(context.Background(), suite.userID, dto.CreateTransactionRequest{
		AccountID: "missing",
		Amount:    decimal.NewFromInt(200),
		Type:      domain.Expense,
		Category:  "Food",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDataRepo.AssertNotCalled(suite.T(), "SaveFinancialData", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_RevertsBalanceEffect() {
	suite.expectFetch(suite.snapshot())
	suite.expectSave()

	got, err := suite.service.DeleteTransaction(context.Background(), suite.userID, "t1")

	suite.Require().NoError(err)
	suite.Empty(got.Transactions)
	// t1 was a 100 expense, so reverting restores the balance
	suite.True(got.Accounts[0].Balance.Equal(decimal.NewFromInt(1100)))
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_UnknownIDFails() {
	suite.expectFetch(suite.snapshot())

	_, err := suite.service.DeleteTransaction(context.Background(), suite.userID, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Stocks ---

func (suite *LedgerServiceTestSuite) TestAddStock_InitializesPriceToAverageCost() {
	suite.expectFetch(suite.snapshot())
	suite.expectSave()

	got, err := suite.service.AddStock(context.Background(), suite.userID, dto.CreateStockRequest{
		Symbol:      "aapl",
		Shares:      decimal.NewFromInt(5),
		AverageCost: decimal.NewFromInt(150),
	})

	suite.Require().NoError(err)
	suite.Require().Len(got.Stocks, 2)
	added := got.Stocks[1]
	suite.Equal("AAPL", added.Symbol)
	suite.Equal("AAPL", added.Name)
	suite.True(added.CurrentPrice.Equal(added.AverageCost))
	suite.Nil(added.LastUpdated)
}

func (suite *LedgerServiceTestSuite) TestDeleteStock_UnknownIDFails() {
	suite.expectFetch(suite.snapshot())

	_, err := suite.service.DeleteStock(context.Background(), suite.userID, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestRefreshStockPrice_LookupFailureLeavesHoldingUntouched() {
	suite.expectFetch(suite.snapshot())
	suite.mockPrices.On("LookupPrice", mock.Anything, "2330.TW").Return(nil, apperrors.ErrUnavailable).Once()

	_, err := suite.service.RefreshStockPrice(context.Background(), suite.userID, "s1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
	suite.mockDataRepo.AssertNotCalled(suite.T(), "SaveFinancialData", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestRefreshStockPrice_UpdatesPrice() {
	suite.expectFetch(suite.snapshot())
	suite.expectSave()
	suite.mockPrices.On("LookupPrice", mock.Anything, "2330.TW").
		Return(&domain.PriceQuote{Price: decimal.NewFromInt(950), Currency: "TWD"}, nil).Once()

	got, err := suite.service.RefreshStockPrice(context.Background(), suite.userID, "s1")

	suite.Require().NoError(err)
	suite.True(got.Stocks[0].CurrentPrice.Equal(decimal.NewFromInt(950)))
	suite.NotNil(got.Stocks[0].LastUpdated)
}

func (suite *LedgerServiceTestSuite) TestRefreshAllPrices_PartialFailure() {
	data := suite.snapshot()
	data.Stocks = append(data.Stocks, domain.StockHolding{
		StockID: "s2", Symbol: "AAPL", Name: "Apple",
		Shares: decimal.NewFromInt(5), AverageCost: decimal.NewFromInt(150), CurrentPrice: decimal.NewFromInt(150),
	})
	suite.expectFetch(data)
	suite.expectSave()
	suite.mockPrices.On("LookupPrice", mock.Anything, "2330.TW").
		Return(&domain.PriceQuote{Price: decimal.NewFromInt(980), Currency: "TWD"}, nil).Once()
	suite.mockPrices.On("LookupPrice", mock.Anything, "AAPL").Return(nil, apperrors.ErrUnavailable).Once()

	got, report, err := suite.service.RefreshAllPrices(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal([]string{"2330.TW"}, report.Updated)
	suite.Equal([]string{"AAPL"}, report.Failed)
	suite.True(got.Stocks[0].CurrentPrice.Equal(decimal.NewFromInt(980)))
	// Failed lookup keeps the prior price
	suite.True(got.Stocks[1].CurrentPrice.Equal(decimal.NewFromInt(150)))
	suite.mockPrices.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRefreshAllPrices_NoHoldings() {
	data := suite.snapshot()
	data.Stocks = nil
	suite.expectFetch(data)

	_, report, err := suite.service.RefreshAllPrices(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Empty(report.Updated)
	suite.Empty(report.Failed)
	suite.mockPrices.AssertNotCalled(suite.T(), "LookupPrice", mock.Anything, mock.Anything)
}

// --- Sync state ---

func (suite *LedgerServiceTestSuite) TestSaveFailure_ReturnsDirtySnapshot() {
	suite.expectFetch(suite.snapshot())
	suite.mockDataRepo.On("SaveFinancialData", mock.Anything, suite.userID, mock.AnythingOfType("domain.FinancialData")).
		Return(errors.New("connection reset")).Once()

	balance := decimal.NewFromInt(5000)
	got, err := suite.service.AddAccount(context.Background(), suite.userID, dto.CreateAccountRequest{
		Name:    "New Fund",
		Balance: &balance,
	})

	// No rollback: the mutation is applied locally and the divergence flagged
	suite.Require().NoError(err)
	suite.Len(got.Accounts, 2)
	suite.True(got.SyncState.Dirty)
	suite.NotNil(got.SyncState.DirtySince)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
