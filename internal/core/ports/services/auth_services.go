package services

import "context"

// GoogleUserInfo is the validated identity extracted from a Google ID token.
type GoogleUserInfo struct {
	Subject       string
	Email         string
	Name          string
	EmailVerified bool
}

// GoogleOAuthSvcFacade handles the authorization-code flow against Google:
// exchange the frontend's code for tokens and validate the returned ID token.
type GoogleOAuthSvcFacade interface {
	ExchangeCode(ctx context.Context, code string) (*GoogleUserInfo, error)
}
