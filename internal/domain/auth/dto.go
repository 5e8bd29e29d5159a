package auth

import (
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/pkg/validator"
)

// MinPasswordLength is the shortest password the login form accepts.
const MinPasswordLength = 4

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs.Add("email", "email is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "invalid email format")
	}
	errs.Required("password", r.Password)

	return errs.Err()
}

type TokenResponse struct {
	User         user.ProfileResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	ExpiresAt    int64                `json:"expires_at"`
	RefreshToken string               `json:"-"`
	RefreshExp   int64                `json:"-"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.Required("refresh_token", r.RefreshToken)
	return errs.Err()
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
