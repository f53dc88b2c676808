package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/core/services"
)

// MockLedgerReader is a mock type for the LedgerReaderSvc interface
type MockLedgerReader struct {
	mock.Mock
}

func (m *MockLedgerReader) GetFinancialData(ctx context.Context, userID string) (*domain.FinancialData, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialData), args.Error(1)
}

type ReportingServiceTestSuite struct {
	suite.Suite
	mockLedger *MockLedgerReader
	service    portssvc.ReportingSvcFacade
	userID     string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerReader)
	suite.service = services.NewReportingService(suite.mockLedger)
	suite.userID = "user-1"
}

func (suite *ReportingServiceTestSuite) expectData(data *domain.FinancialData) {
	suite.mockLedger.On("GetFinancialData", mock.Anything, suite.userID).Return(data, nil).Once()
}

func (suite *ReportingServiceTestSuite) TestDashboardSummary() {
	suite.expectData(&domain.FinancialData{
		Accounts: []domain.Account{
			{AccountID: "a1", Balance: decimal.NewFromInt(1000)},
			{AccountID: "a2", Balance: decimal.NewFromInt(500)},
		},
		Stocks: []domain.StockHolding{
			{Shares: decimal.NewFromInt(10), CurrentPrice: decimal.NewFromInt(80)},
		},
	})

	summary, err := suite.service.DashboardSummary(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.True(summary.CashAssets.Equal(decimal.NewFromInt(1500)))
	suite.True(summary.InvestmentValue.Equal(decimal.NewFromInt(800)))
	suite.True(summary.NetWorth.Equal(summary.CashAssets.Add(summary.InvestmentValue)))
}

func (suite *ReportingServiceTestSuite) TestRecentTransactions_ResolvesDeletedAccounts() {
	suite.expectData(&domain.FinancialData{
		Accounts: []domain.Account{
			{AccountID: "a1", Name: "Savings"},
		},
		Transactions: []domain.Transaction{
			{TransactionID: "t1", AccountID: "a1", Amount: decimal.NewFromInt(10), Type: domain.Expense, Date: "2024-01-01"},
			{TransactionID: "t2", AccountID: "gone", Amount: decimal.NewFromInt(20), Type: domain.Expense, Date: "2024-01-02"},
		},
	})

	recent, err := suite.service.RecentTransactions(context.Background(), suite.userID, 5)

	suite.Require().NoError(err)
	suite.Require().Len(recent, 2)
	suite.Equal(domain.DeletedAccountLabel, recent[0].AccountName)
	suite.Equal("Savings", recent[1].AccountName)
}

func (suite *ReportingServiceTestSuite) TestExpenseByCategory_SortedByTotalDescending() {
	suite.expectData(&domain.FinancialData{
		Transactions: []domain.Transaction{
			{Amount: decimal.NewFromInt(50), Type: domain.Expense, Category: "Transport", Date: "2024-01-01"},
			{Amount: decimal.NewFromInt(200), Type: domain.Expense, Category: "Food", Date: "2024-01-02"},
			{Amount: decimal.NewFromInt(999), Type: domain.Income, Category: "Salary", Date: "2024-01-03"},
		},
	})

	report, err := suite.service.ExpenseByCategory(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(report.Categories, 2)
	suite.Equal("Food", report.Categories[0].Category)
	suite.Equal("Transport", report.Categories[1].Category)
}

func (suite *ReportingServiceTestSuite) TestHoldingsReport_Totals() {
	suite.expectData(&domain.FinancialData{
		Stocks: []domain.StockHolding{
			{StockID: "s1", Shares: decimal.NewFromInt(10), AverageCost: decimal.NewFromInt(50), CurrentPrice: decimal.NewFromInt(80)},
			{StockID: "s2", Shares: decimal.NewFromInt(5), AverageCost: decimal.NewFromInt(100), CurrentPrice: decimal.NewFromInt(90)},
		},
	})

	report, err := suite.service.HoldingsReport(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(report.Holdings, 2)
	suite.True(report.Totals.MarketValue.Equal(decimal.NewFromInt(1250)))
	suite.True(report.Totals.CostBasis.Equal(decimal.NewFromInt(1000)))
	suite.True(report.Totals.Profit.Equal(decimal.NewFromInt(250)))
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
