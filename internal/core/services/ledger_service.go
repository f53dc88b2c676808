package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartfin/smartfinance_backend/internal/apperrors"
	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	portsrepo "github.com/smartfin/smartfinance_backend/internal/core/ports/repositories"
	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/dto"
	"github.com/smartfin/smartfinance_backend/internal/middleware"
	"github.com/smartfin/smartfinance_backend/internal/utils/accounting"
)

type ledgerService struct {
	dataRepo           portsrepo.FinancialDataRepository
	userRepo           portsrepo.UserRepository
	prices             portssvc.PriceLookupSvc
	defaultCurrency    string
	refreshConcurrency int
}

// LedgerServiceOption is a functional option for configuring the ledger
// service.
type LedgerServiceOption func(*ledgerService)

// WithPriceLookup sets the market price collaborator.
func WithPriceLookup(prices portssvc.PriceLookupSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.prices = prices
	}
}

// WithDefaultCurrency sets the currency assigned to accounts created without
// one.
func WithDefaultCurrency(code string) LedgerServiceOption {
	return func(s *ledgerService) {
		s.defaultCurrency = code
	}
}

// WithRefreshConcurrency caps the fan-out of bulk price refreshes.
func WithRefreshConcurrency(n int) LedgerServiceOption {
	return func(s *ledgerService) {
		if n > 0 {
			s.refreshConcurrency = n
		}
	}
}

// NewLedgerService creates the ledger service with the provided options.
func NewLedgerService(dataRepo portsrepo.FinancialDataRepository, userRepo portsrepo.UserRepository, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		dataRepo:           dataRepo,
		userRepo:           userRepo,
		defaultCurrency:    "TWD",
		refreshConcurrency: 4,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetFinancialData loads the user's document, seeding a default one on first
// access.
func (s *ledgerService) GetFinancialData(ctx context.Context, userID string) (*domain.FinancialData, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	data, err := s.dataRepo.FetchFinancialData(ctx, userID)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to fetch financial document", slog.String("error", err.Error()))
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to load user for document seeding", slog.String("error", err.Error()))
		return nil, err
	}

	seeded := domain.DefaultFinancialData(*user, time.Now())
	logger.Info("Seeding default financial document", slog.String("user_id", userID))
	return s.persist(ctx, userID, seeded), nil
}

// AddAccount appends a new account with defaults applied.
func (s *ledgerService) AddAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.FinancialData, error) {
	if strings.TrimSpace(req.Name) == "" || req.Balance == nil {
		return nil, fmt.Errorf("account requires a name and a balance: %w", apperrors.ErrValidation)
	}

	data, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	accountType := req.AccountType
	if accountType == "" {
		accountType = domain.TypeBank
	}
	currency := req.CurrencyCode
	if currency == "" {
		currency = s.defaultCurrency
	}

	updated := *data
	updated.Accounts = append(append([]domain.Account{}, data.Accounts...), domain.Account{
		AccountID:    uuid.NewString(),
		Name:         req.Name,
		AccountType:  accountType,
		Balance:      *req.Balance,
		CurrencyCode: currency,
	})

	return s.persist(ctx, userID, updated), nil
}

// UpdateAccount replaces provided fields on the matching account. An unknown
// account ID is a no-op, not an error.
func (s *ledgerService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.FinancialData, error) {
	data, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if data.FindAccount(accountID) == nil {
		return data, nil
	}

	updated := *data
	updated.Accounts = make([]domain.Account, len(data.Accounts))
	copy(updated.Accounts, data.Accounts)
	for i := range updated.Accounts {
		if updated.Accounts[i].AccountID != accountID {
			continue
		}
		if req.Name != nil {
			updated.Accounts[i].Name = *req.Name
		}
		if req.AccountType != nil {
			updated.Accounts[i].AccountType = *req.AccountType
		}
		if req.Balance != nil {
			updated.Accounts[i].Balance = *req.Balance
		}
		if req.CurrencyCode != nil {
			updated.Accounts[i].CurrencyCode = *req.CurrencyCode
		}
	}

	return s.persist(ctx, userID, updated), nil
}

// DeleteAccount removes the account only. Transactions referencing it remain
// in the ledger and are rendered with a placeholder label.
func (s *ledgerService) DeleteAccount(ctx context.Context, userID, accountID string) (*domain.FinancialData, error) {
	data, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if data.FindAccount(accountID) == nil {
		return data, nil
	}

	updated := *data
	updated.Accounts = make([]domain.Account, 0, len(data.Accounts)-1)
	for _, acc := range data.Accounts {
		if acc.AccountID != accountID {
			updated.Accounts = append(updated.Accounts, acc)
		}
	}

	return s.persist(ctx, userID, updated), nil
}

// AddTransaction records a transaction and applies its balance effect within
// the same snapshot update.
func (s *ledgerService) AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.FinancialData, error) {
	if req.Type == domain.Transfer {
		return nil, fmt.Errorf("transfer transactions are not supported: %w", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("transaction amount must be positive: %w", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("transaction requires a category: %w", apperrors.ErrValidation)
	}

	data, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if data.FindAccount(req.AccountID) == nil {
		return nil, fmt.Errorf("transaction references unknown account %s: %w", req.AccountID, apperrors.ErrValidation)
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     req.AccountID,
		Amount:        req.Amount,
		Type:          req.Type,
		Category:      req.Category,
		Date:          date,
		Note:          req.Note,
	}

	updated := *data
	updated.Accounts = accounting.ApplyTransaction(data.Accounts, txn)
	// Newest first, matching the ledger's presentation order.
	updated.Transactions = append([]domain.Transaction{txn}, data.Transactions...)

	return s.persist(ctx, userID, updated), nil
}

// DeleteTransaction reverts the balance effect and removes the entry.
func (s *ledgerService) DeleteTransaction(ctx context.Context, userID, transactionID string) (*domain.FinancialData, error) {
	data, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	var target *domain.Transaction
	for i := range data.Transactions {
		if data.Transactions[i].TransactionID == transactionID {
			target = &data.Transactions[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}

	updated := *data
	updated.Accounts = accounting.RevertTransaction(data.Accounts, *target)
	updated.Transactions = make([]domain.Transaction, 0, len(data.Transactions)-1)
	for _, txn := range data.Transactions {
		if txn.TransactionID != transactionID {
			updated.Transactions = append(updated.Transactions, txn)
		}
	}

	return s.persist(ctx, userID, updated), nil
}

// AddStock appends a holding with the current price initialized to the
// average cost.
func (s *ledgerService) AddStock(ctx context.Context, userID string, req dto.CreateStockRequest) (*domain.FinancialData, error) {
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		return nil, fmt.Errorf("stock requires a symbol: %w", apperrors.ErrValidation)
	}
	if !req.Shares.IsPositive() {
		return nil, fmt.Errorf("stock requires a positive share count: %w", apperrors.ErrValidation)
	}
	if req.AverageCost.IsNegative() {
		return nil, fmt.Errorf("stock average cost cannot be negative: %w", apperrors.ErrValidation)
	}

	data, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = symbol
	}

	updated := *data
	updated.Stocks = append(append([]domain.StockHolding{}, data.Stocks...), domain.StockHolding{
		StockID:      uuid.NewString(),
		Symbol:       symbol,
		Name:         name,
		Shares:       req.Shares,
		AverageCost:  req.AverageCost,
		CurrentPrice: req.AverageCost,
	})

	return s.persist(ctx, userID, updated), nil
}

// DeleteStock removes a holding.
func (s *ledgerService) DeleteStock(ctx context.Context, userID, stockID string) (*domain.FinancialData, error) {
	data, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	updated := *data
	updated.Stocks = make([]domain.StockHolding, 0, len(data.Stocks))
	for _, stock := range data.Stocks {
		if stock.StockID == stockID {
			found = true
			continue
		}
		updated.Stocks = append(updated.Stocks, stock)
	}
	if !found {
		return nil, fmt.Errorf("stock %s: %w", stockID, apperrors.ErrNotFound)
	}

	return s.persist(ctx, userID, updated), nil
}

// RefreshStockPrice replaces one holding's price from the lookup
// collaborator. A failed lookup leaves the holding untouched and surfaces the
// failure to the caller.
func (s *ledgerService) RefreshStockPrice(ctx context.Context, userID, stockID string) (*domain.FinancialData, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	data, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range data.Stocks {
		if data.Stocks[i].StockID == stockID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("stock %s: %w", stockID, apperrors.ErrNotFound)
	}

	quote, err := s.prices.LookupPrice(ctx, data.Stocks[idx].Symbol)
	if err != nil {
		logger.Warn("Price lookup failed, holding unchanged",
			slog.String("symbol", data.Stocks[idx].Symbol),
			slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now()
	updated := *data
	updated.Stocks = make([]domain.StockHolding, len(data.Stocks))
	copy(updated.Stocks, data.Stocks)
	updated.Stocks[idx].CurrentPrice = quote.Price
	updated.Stocks[idx].LastUpdated = &now

	return s.persist(ctx, userID, updated), nil
}

// RefreshAllPrices issues one lookup per holding under the configured
// concurrency cap, waits for all to settle, and writes a single merged
// snapshot. Failed lookups keep the prior price and are reported explicitly.
func (s *ledgerService) RefreshAllPrices(ctx context.Context, userID string) (*domain.FinancialData, *domain.RefreshReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	data, err := s.load(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	report := &domain.RefreshReport{Updated: []string{}, Failed: []string{}}
	if len(data.Stocks) == 0 {
		return data, report, nil
	}

	quotes := make([]*domain.PriceQuote, len(data.Stocks))
	sem := make(chan struct{}, s.refreshConcurrency)
	var wg sync.WaitGroup
	for i := range data.Stocks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			quote, lookupErr := s.prices.LookupPrice(ctx, data.Stocks[i].Symbol)
			if lookupErr != nil {
				logger.Warn("Bulk price lookup failed, keeping prior price",
					slog.String("symbol", data.Stocks[i].Symbol),
					slog.String("error", lookupErr.Error()))
				return
			}
			quotes[i] = quote
		}(i)
	}
	wg.Wait()

	now := time.Now()
	updated := *data
	updated.Stocks = make([]domain.StockHolding, len(data.Stocks))
	copy(updated.Stocks, data.Stocks)
	for i, quote := range quotes {
		if quote == nil {
			report.Failed = append(report.Failed, updated.Stocks[i].Symbol)
			continue
		}
		updated.Stocks[i].CurrentPrice = quote.Price
		updated.Stocks[i].LastUpdated = &now
		report.Updated = append(report.Updated, updated.Stocks[i].Symbol)
	}

	logger.Info("Bulk price refresh settled",
		slog.Int("updated", len(report.Updated)),
		slog.Int("failed", len(report.Failed)))

	return s.persist(ctx, userID, updated), report, nil
}

// load fetches the current document, seeding for first-time users so every
// mutation path sees a document.
func (s *ledgerService) load(ctx context.Context, userID string) (*domain.FinancialData, error) {
	return s.GetFinancialData(ctx, userID)
}

// persist writes the whole updated document. A failed save does not roll the
// snapshot back: the result is flagged dirty so the divergence between local
// and remote state stays observable until the next successful write.
func (s *ledgerService) persist(ctx context.Context, userID string, updated domain.FinancialData) *domain.FinancialData {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.dataRepo.SaveFinancialData(ctx, userID, updated); err != nil {
		logger.Warn("Failed to save financial document, local state diverges from store",
			slog.String("error", err.Error()))
		dirty := updated.MarkDirty(time.Now())
		return &dirty
	}

	updated.SyncState = domain.SyncState{}
	return &updated
}
