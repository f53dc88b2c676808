package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartfin/smartfinance_backend/internal/apperrors"
	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	portsrepo "github.com/smartfin/smartfinance_backend/internal/core/ports/repositories"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new repository for user data.
func NewUserRepository(pool *pgxpool.Pool) portsrepo.UserRepository {
	return &userRepository{pool: pool}
}

// SaveUser inserts a new user. A unique-constraint violation on username or
// email maps to apperrors.ErrDuplicate.
func (r *userRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, username, email, password_hash, auth_provider, provider_user_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.LastUpdatedAt.IsZero() {
		user.LastUpdatedAt = now
	}

	_, err := r.pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.AuthProvider,
		user.ProviderUserID,
		user.CreatedAt,
		user.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("user %s: %w", user.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user %s: %w", user.UserID, err)
	}
	return nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findUser(ctx, `WHERE user_id = $1`, userID)
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUser(ctx, `WHERE username = $1`, username)
}

func (r *userRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.findUser(ctx, `WHERE auth_provider = $1 AND provider_user_id = $2`, provider, providerUserID)
}

func (r *userRepository) findUser(ctx context.Context, where string, args ...any) (*domain.User, error) {
	query := `
		SELECT user_id, username, email, password_hash, auth_provider, provider_user_id, created_at, last_updated_at
		FROM users ` + where + `;`

	var user domain.User
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.AuthProvider,
		&user.ProviderUserID,
		&user.CreatedAt,
		&user.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
