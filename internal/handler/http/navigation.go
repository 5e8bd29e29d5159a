package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/grofast/portal-backend-go/internal/domain/auth"
	"github.com/grofast/portal-backend-go/internal/domain/navigation"
	"github.com/grofast/portal-backend-go/internal/domain/user"
	"github.com/grofast/portal-backend-go/internal/handler/http/response"
	"github.com/grofast/portal-backend-go/internal/pkg/jwt"
)

type NavigationHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type NavigationHandlerImpl struct {
	jwtService     jwt.Service
	sessionService auth.SessionService
}

func NewNavigationHandler(jwtService jwt.Service, sessionService auth.SessionService) NavigationHandler {
	return &NavigationHandlerImpl{jwtService: jwtService, sessionService: sessionService}
}

type navigationResponse struct {
	Decision navigation.Decision `json:"decision"`
	View     navigation.View     `json:"view"`
}

// identity resolves the caller when a valid access token with a live
// session is present. Anything else is treated as anonymous.
func (h *NavigationHandlerImpl) identity(r *http.Request) (user.Identity, bool) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return user.Identity{}, false
	}
	if t, _ := claims["type"].(string); t != jwt.TokenTypeAccess {
		return user.Identity{}, false
	}
	if h.jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
		return user.Identity{}, false
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return user.Identity{}, false
	}
	identity, err := h.sessionService.Current(r.Context(), userID)
	if err != nil {
		return user.Identity{}, false
	}
	return identity, true
}

// Get implements NavigationHandler.
func (h *NavigationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(r)
	response.Success(w, navigationResponse{
		Decision: navigation.Route(r.URL.Query().Get("path"), ok, identity.Role),
		View:     navigation.Resolve(ok, identity.Role),
	})
}
