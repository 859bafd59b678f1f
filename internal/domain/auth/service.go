package auth

import "context"

type AuthService interface {
	// Register creates a customer account and returns a token pair.
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle exchanges an OAuth authorization code for a token pair.
	// The account must already exist; registration stays password-based.
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)

	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	Logout(ctx context.Context, refreshToken string) error
}
