package chat

import (
	"github.com/grofast/portal-backend-go/internal/pkg/validator"
)

type SendMessageRequest struct {
	Content string `json:"content"`
}

func (r *SendMessageRequest) Validate() error {
	var errs validator.ValidationErrors
	errs.Required("content", r.Content)
	if len(r.Content) > 4000 {
		errs.Add("content", "content must be at most 4000 characters")
	}
	return errs.Err()
}

type StreamTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}
