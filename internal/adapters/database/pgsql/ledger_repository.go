package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartfin/smartfinance_backend/internal/apperrors"
	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	portsrepo "github.com/smartfin/smartfinance_backend/internal/core/ports/repositories"
)

type financialDataRepository struct {
	pool *pgxpool.Pool
}

// NewFinancialDataRepository creates the document-store adapter: one JSONB
// document per user, always read and written wholesale.
func NewFinancialDataRepository(pool *pgxpool.Pool) portsrepo.FinancialDataRepository {
	return &financialDataRepository{pool: pool}
}

// FetchFinancialData loads the whole document for a user.
func (r *financialDataRepository) FetchFinancialData(ctx context.Context, userID string) (*domain.FinancialData, error) {
	query := `SELECT doc FROM financial_documents WHERE user_id = $1;`

	var raw []byte
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch financial document for user %s: %w", userID, err)
	}

	var data domain.FinancialData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode financial document for user %s: %w", userID, err)
	}
	// SyncState tracks in-flight divergence only; a loaded document is in
	// sync with the store by definition.
	data.SyncState = domain.SyncState{}
	return &data, nil
}

// SaveFinancialData upserts the whole document. Last full-document write
// wins; there is no delta or merge protocol.
func (r *financialDataRepository) SaveFinancialData(ctx context.Context, userID string, data domain.FinancialData) error {
	data.SyncState = domain.SyncState{}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode financial document for user %s: %w", userID, err)
	}

	query := `
		INSERT INTO financial_documents (user_id, doc, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at;
	`
	if _, err := r.pool.Exec(ctx, query, userID, raw, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save financial document for user %s: %w", userID, err)
	}
	return nil
}
