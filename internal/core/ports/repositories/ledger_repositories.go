package repositories

import (
	"context"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
)

// FinancialDataRepository is the document-store collaborator: the whole
// aggregate root is fetched and saved as one opaque document keyed by user
// ID. There is no partial update protocol; every save is a full-document
// upsert with last-write-wins semantics.
type FinancialDataRepository interface {
	// FetchFinancialData returns apperrors.ErrNotFound when no document
	// exists for the user yet.
	FetchFinancialData(ctx context.Context, userID string) (*domain.FinancialData, error)
	SaveFinancialData(ctx context.Context, userID string, data domain.FinancialData) error
}
