package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/middleware"
	"github.com/smartfin/smartfinance_backend/internal/utils/accounting"
)

// adviceUnavailableMessage is returned in place of generated advice when the
// language-model collaborator fails. It is user-facing copy, not an error.
const adviceUnavailableMessage = "AI service is currently unavailable. Please check your API key."

// adviceContextTransactions caps how much transaction history is summarized
// into the prompt.
const adviceContextTransactions = 20

type adviceService struct {
	ledger    portssvc.LedgerReaderSvc
	generator portssvc.AdviceGenerator
}

// NewAdviceService creates the advice service.
func NewAdviceService(ledger portssvc.LedgerReaderSvc, generator portssvc.AdviceGenerator) portssvc.AdviceSvcFacade {
	return &adviceService{ledger: ledger, generator: generator}
}

var _ portssvc.AdviceSvcFacade = (*adviceService)(nil)

// GenerateAdvice summarizes the user's ledger into a prompt and asks the
// generator for advice. Generator failure degrades to a fixed message.
func (s *adviceService) GenerateAdvice(ctx context.Context, userID string) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	data, err := s.ledger.GetFinancialData(ctx, userID)
	if err != nil {
		return "", err
	}

	advice, err := s.generator.GenerateText(ctx, buildAdvicePrompt(data))
	if err != nil {
		logger.Warn("Advice generation failed, returning fallback message",
			slog.String("error", err.Error()))
		return adviceUnavailableMessage, nil
	}
	return strings.TrimSpace(advice), nil
}

func buildAdvicePrompt(data *domain.FinancialData) string {
	accountParts := make([]string, len(data.Accounts))
	for i, acc := range data.Accounts {
		accountParts[i] = fmt.Sprintf("%s: %s %s", acc.Name, acc.CurrencyCode, acc.Balance.String())
	}

	stockParts := make([]string, len(data.Stocks))
	for i, stock := range data.Stocks {
		stockParts[i] = fmt.Sprintf("%s (%s shares @ %s)", stock.Symbol, stock.Shares.String(), stock.AverageCost.String())
	}

	recent := accounting.RecentTransactions(*data, adviceContextTransactions)
	txnLines := make([]string, len(recent))
	for i, txn := range recent {
		txnLines[i] = fmt.Sprintf("%s: %s %s (%s)", txn.Date, txn.Type, txn.Amount.String(), txn.Category)
	}

	var b strings.Builder
	b.WriteString("You are a professional financial advisor. Analyze the following personal finance data and give concise, actionable advice.\n\n")
	b.WriteString("Accounts: ")
	b.WriteString(strings.Join(accountParts, ", "))
	b.WriteString("\nStock holdings: ")
	b.WriteString(strings.Join(stockParts, ", "))
	b.WriteString("\nRecent transactions:\n")
	b.WriteString(strings.Join(txnLines, "\n"))
	b.WriteString("\n\nRespond with 3-5 short bullet points covering spending habits, savings, and investment allocation. Keep the tone practical and encouraging.")
	return b.String()
}
