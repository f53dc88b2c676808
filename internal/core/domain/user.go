package domain

import "time"

// AuthProvider identifies how a user account was created.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents an authenticated owner of a financial document.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (UUID)
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"` // Empty for OAuth-only users
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // Stable ID from the external provider, empty for local users
	CreatedAt      time.Time    `json:"createdAt"`
	LastUpdatedAt  time.Time    `json:"lastUpdatedAt"`
}
