// Package auth implements the session store: login against the identity
// directory, the persisted current identity, and token issuance.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/auth"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/pkg/jwt"
	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"golang.org/x/crypto/bcrypt"
)

// DefaultKeyPrefix namespaces persisted identities by user id.
const DefaultKeyPrefix = "grofast_user:"

type Options struct {
	KeyPrefix string
	// LoginDelay is waited before every credential check.
	LoginDelay time.Duration
	// SessionTTL bounds how long a stored identity survives. Zero keeps it
	// until logout.
	SessionTTL time.Duration
}

type SessionServiceImpl struct {
	kv   kvstore.Store
	opts Options
	user.Directory
	jwt.Service
}

func NewSessionService(kv kvstore.Store, directory user.Directory, jwtService jwt.Service, opts Options) auth.SessionService {
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = DefaultKeyPrefix
	}
	return &SessionServiceImpl{
		kv:        kv,
		opts:      opts,
		Directory: directory,
		Service:   jwtService,
	}
}

func (s *SessionServiceImpl) key(userID string) string {
	return s.opts.KeyPrefix + userID
}

func (s *SessionServiceImpl) wait(ctx context.Context) error {
	if s.opts.LoginDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.opts.LoginDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Login implements auth.SessionService.
func (s *SessionServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := s.wait(ctx); err != nil {
		return auth.TokenResponse{}, err
	}

	entry, err := s.Directory.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if len(req.Password) < auth.MinPasswordLength {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if entry.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(entry.PasswordHash), []byte(req.Password)); err != nil {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
	}

	identity := entry.Identity
	if err := s.store(ctx, identity); err != nil {
		return auth.TokenResponse{}, err
	}

	var resp auth.TokenResponse
	resp.User = user.NewProfileResponse(identity)
	resp.AccessToken, resp.ExpiresAt, err = s.Service.GenerateAccessToken(identity)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	resp.RefreshToken, resp.RefreshExp, err = s.Service.GenerateRefreshToken(identity.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	slog.Info("user logged in", "user_id", identity.ID, "role", identity.Role)
	return resp, nil
}

// Logout implements auth.SessionService.
func (s *SessionServiceImpl) Logout(ctx context.Context, userID, accessToken string) error {
	if err := s.kv.Delete(ctx, s.key(userID)); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	if accessToken != "" {
		s.Service.RevokeToken(accessToken)
	}
	return nil
}

// RefreshToken implements auth.SessionService.
func (s *SessionServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.AccessTokenResponse, error) {
	userID, err := s.Service.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	identity, err := s.Current(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, err
	}

	token, expiresAt, err := s.Service.GenerateAccessToken(identity)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.AccessTokenResponse{AccessToken: token, ExpiresAt: expiresAt}, nil
}

// Current implements auth.SessionService. An unreadable stored identity is
// deleted and reported as ErrNotLoggedIn.
func (s *SessionServiceImpl) Current(ctx context.Context, userID string) (user.Identity, error) {
	raw, err := s.kv.Get(ctx, s.key(userID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return user.Identity{}, auth.ErrNotLoggedIn
	}
	if err != nil {
		return user.Identity{}, fmt.Errorf("failed to load session: %w", err)
	}

	var identity user.Identity
	if err := json.Unmarshal(raw, &identity); err != nil || identity.ID == "" {
		slog.Warn("discarding unreadable session", "user_id", userID, "error", err)
		if delErr := s.kv.Delete(ctx, s.key(userID)); delErr != nil {
			slog.Error("failed to delete unreadable session", "user_id", userID, "error", delErr)
		}
		return user.Identity{}, auth.ErrNotLoggedIn
	}
	return identity, nil
}

// UpdateProfile implements auth.SessionService.
func (s *SessionServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.Identity, error) {
	identity, err := s.Current(ctx, userID)
	if err != nil {
		return user.Identity{}, err
	}
	identity = req.Apply(identity)
	if err := s.store(ctx, identity); err != nil {
		return user.Identity{}, err
	}
	return identity, nil
}

func (s *SessionServiceImpl) store(ctx context.Context, identity user.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.kv.Set(ctx, s.key(identity.ID), raw, s.opts.SessionTTL); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
