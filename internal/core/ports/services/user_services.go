package services

import (
	"context"

	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	"github.com/smartfin/smartfinance_backend/internal/dto"
)

// UserSvcFacade exposes user management to handlers and other services.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// CreateOAuthUser finds or creates the user matching an external
	// identity provider's subject ID.
	CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}
