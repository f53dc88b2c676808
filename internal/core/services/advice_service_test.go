package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smartfin/smartfinance_backend/internal/apperrors"
	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/core/services"
)

// MockAdviceGenerator is a mock type for the AdviceGenerator interface
type MockAdviceGenerator struct {
	mock.Mock
}

func (m *MockAdviceGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type AdviceServiceTestSuite struct {
	suite.Suite
	mockLedger    *MockLedgerReader
	mockGenerator *MockAdviceGenerator
	service       portssvc.AdviceSvcFacade
	userID        string
}

func (suite *AdviceServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerReader)
	suite.mockGenerator = new(MockAdviceGenerator)
	suite.service = services.NewAdviceService(suite.mockLedger, suite.mockGenerator)
	suite.userID = "user-1"
}

func (suite *AdviceServiceTestSuite) TestGenerateAdvice_SummarizesLedgerIntoPrompt() {
	suite.mockLedger.On("GetFinancialData", mock.Anything, suite.userID).Return(&domain.FinancialData{
		Accounts: []domain.Account{
			{Name: "Savings", Balance: decimal.NewFromInt(1000), CurrencyCode: "TWD"},
		},
		Transactions: []domain.Transaction{
			{Amount: decimal.NewFromInt(120), Type: domain.Expense, Category: "Food", Date: "2024-01-10"},
		},
		Stocks: []domain.StockHolding{
			{Symbol: "2330.TW", Shares: decimal.NewFromInt(10), AverageCost: decimal.NewFromInt(500)},
		},
	}, nil).Once()

	var prompt string
	suite.mockGenerator.On("GenerateText", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { prompt = args.String(1) }).
		Return("  Save more.  ", nil).Once()

	advice, err := suite.service.GenerateAdvice(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Save more.", advice)
	suite.Contains(prompt, "Savings: TWD 1000")
	suite.Contains(prompt, "2330.TW (10 shares @ 500)")
	suite.Contains(prompt, "2024-01-10: EXPENSE 120 (Food)")
}

func (suite *AdviceServiceTestSuite) TestGenerateAdvice_CapsTransactionHistory() {
	data := &domain.FinancialData{}
	for i := 0; i < 30; i++ {
		data.Transactions = append(data.Transactions, domain.Transaction{
			Amount:   decimal.NewFromInt(int64(i + 1)),
			Type:     domain.Expense,
			Category: "Other",
			Date:     fmt.Sprintf("2024-01-%02d", i%28+1),
		})
	}
	suite.mockLedger.On("GetFinancialData", mock.Anything, suite.userID).Return(data, nil).Once()

	var prompt string
	suite.mockGenerator.On("GenerateText", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { prompt = args.String(1) }).
		Return("ok", nil).Once()

	_, err := suite.service.GenerateAdvice(context.Background(), suite.userID)

	suite.Require().NoError(err)
	count := 0
	for _, line := range []byte(prompt) {
		if line == '(' {
			count++
		}
	}
	// 20 transaction lines at most, each with one parenthesized category
	suite.Equal(20, count)
}

func (suite *AdviceServiceTestSuite) TestGenerateAdvice_GeneratorFailureFallsBack() {
	suite.mockLedger.On("GetFinancialData", mock.Anything, suite.userID).Return(&domain.FinancialData{}, nil).Once()
	suite.mockGenerator.On("GenerateText", mock.Anything, mock.AnythingOfType("string")).
		Return("", apperrors.ErrUnavailable).Once()

	advice, err := suite.service.GenerateAdvice(context.Background(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal("AI service is currently unavailable. Please check your API key.", advice)
}

func TestAdviceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdviceServiceTestSuite))
}
