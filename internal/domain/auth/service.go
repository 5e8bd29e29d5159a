package auth

import (
	"context"

	"github.com/grofast/portal-backend-go/internal/domain/user"
)

// SessionService owns the persisted "current identity" per user.
type SessionService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, userID, accessToken string) error
	RefreshToken(ctx context.Context, refreshToken string) (AccessTokenResponse, error)
	Current(ctx context.Context, userID string) (user.Identity, error)
	UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.Identity, error)
}
