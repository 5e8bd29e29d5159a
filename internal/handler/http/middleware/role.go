package middleware

import (
	"fmt"
	"net/http"

	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
)

func requireIdentity(allowed func(*user.Identity) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := user.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if !allowed(&identity) {
				response.HandleError(w, user.ErrAccessDenied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireReviewer admits team_lead, senior, md and admin.
func RequireReviewer(next http.Handler) http.Handler {
	return requireIdentity((*user.Identity).IsReviewer)(next)
}

// RequireAdministrative admits admin and md.
func RequireAdministrative(next http.Handler) http.Handler {
	return requireIdentity((*user.Identity).IsAdministrative)(next)
}

// RequirePermission checks if user has specific capability
func RequirePermission(capability user.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := user.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !user.HasPermission(&identity, capability) {
				response.Forbidden(w, fmt.Sprintf("access denied: required '%s', but user role is '%s'", capability, identity.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
