package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smartfin/smartfinance_backend/internal/apperrors"
	"github.com/smartfin/smartfinance_backend/internal/core/domain"
	portsrepo "github.com/smartfin/smartfinance_backend/internal/core/ports/repositories"
	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
	"github.com/smartfin/smartfinance_backend/internal/dto"
	"github.com/smartfin/smartfinance_backend/internal/middleware"
	"github.com/smartfin/smartfinance_backend/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register creates a local user with a bcrypt-hashed password.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Username:      req.Username,
		Email:         strings.ToLower(req.Email),
		PasswordHash:  hash,
		AuthProvider:  domain.ProviderLocal,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save user in repository", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find user by ID", slog.String("error", err.Error()), slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find user by username", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return user, nil
}

// CreateOAuthUser finds the user for an external provider subject, creating
// one on first sign-in. The username derives from the provider profile name,
// falling back to the email local part.
func (s *userService) CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByProviderID(ctx, provider, providerUserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to find oauth user", slog.String("error", err.Error()))
		return nil, err
	}

	username := name
	if username == "" {
		if at := strings.Index(email, "@"); at > 0 {
			username = email[:at]
		} else {
			username = "User"
		}
	}

	now := time.Now()
	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       username,
		Email:          strings.ToLower(email),
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		CreatedAt:      now,
		LastUpdatedAt:  now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save oauth user", slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("OAuth user created", slog.String("user_id", user.UserID), slog.String("provider", string(provider)))
	return &user, nil
}
