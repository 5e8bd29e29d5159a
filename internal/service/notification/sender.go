package notification

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/grofast/portal-backend-go/internal/domain/webhook"
	"golang.org/x/oauth2/clientcredentials"
)

// LogSender records the call and reports success without any network I/O.
type LogSender struct{}

func (LogSender) Deliver(ctx context.Context, d webhook.Delivery) (int, error) {
	slog.Info("webhook", "endpoint", d.Endpoint, "attempt", d.Attempts, "payload", string(d.Payload))
	return http.StatusOK, nil
}

// OAuth2Options enables the client-credentials grant on outgoing calls.
type OAuth2Options struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// HTTPSender POSTs the payload as JSON to <baseURL>/<endpoint>.
type HTTPSender struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSender(baseURL string, timeout time.Duration, auth *OAuth2Options) *HTTPSender {
	client := &http.Client{}
	if auth != nil && auth.ClientID != "" {
		cc := clientcredentials.Config{
			ClientID:     auth.ClientID,
			ClientSecret: auth.ClientSecret,
			TokenURL:     auth.TokenURL,
			Scopes:       auth.Scopes,
		}
		client = cc.Client(context.Background())
	}
	client.Timeout = timeout
	return &HTTPSender{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *HTTPSender) Deliver(ctx context.Context, d webhook.Delivery) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/"+string(d.Endpoint), bytes.NewReader(d.Payload))
	if err != nil {
		return 0, fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Grofast-Endpoint", string(d.Endpoint))

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("webhook %s: %w", d.Endpoint, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 300 {
		return resp.StatusCode, fmt.Errorf("webhook %s: unexpected status %d", d.Endpoint, resp.StatusCode)
	}
	return resp.StatusCode, nil
}
