package dto

// RegisterRequest defines the data needed to register a local user.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the credentials for username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token issued on successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ExchangeCodeRequest is the body for the Google OAuth code exchange.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// ExchangeCodeResponse carries the application JWT issued after a successful
// Google sign-in.
type ExchangeCodeResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
