package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/smartfin/smartfinance_backend/internal/apperrors"
	portssvc "github.com/smartfin/smartfinance_backend/internal/core/ports/services"
)

type googleOAuthService struct {
	config *oauth2.Config
}

// NewGoogleOAuthService creates the Google authorization-code exchange
// service.
func NewGoogleOAuthService(clientID, clientSecret, redirectURL string) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// ExchangeCode swaps the frontend's authorization code for tokens and
// validates the returned ID token against our client ID.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (*portssvc.GoogleUserInfo, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("token response missing id_token: %w", apperrors.ErrValidation)
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.config.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate id_token: %w", err)
	}

	info := &portssvc.GoogleUserInfo{Subject: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		info.EmailVerified = verified
	}
	return info, nil
}
