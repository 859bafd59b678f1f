package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked on logout and rejected afterwards.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, token string, expiresAt time.Time) error

	// IsRevoked reports whether a token has been revoked or was never issued.
	IsRevoked(ctx context.Context, token string) (bool, error)

	Revoke(ctx context.Context, token string) error
}
