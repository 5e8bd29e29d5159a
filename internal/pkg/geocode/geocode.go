// Package geocode turns coordinates into a readable place description.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
)

// FallbackAddress is returned when a lookup fails.
const FallbackAddress = "Location detected"

var ErrNoAddress = errors.New("geocode: no address in response")

type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// Cache, when set, keeps answers for CacheTTL.
	Cache    kvstore.Store
	CacheTTL time.Duration
}

// NominatimClient calls GET <base>/reverse?format=json&lat=..&lon=.. and
// reads display_name.
type NominatimClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
	cache     kvstore.Store
	cacheTTL  time.Duration
}

func NewNominatimClient(opts Options) *NominatimClient {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	return &NominatimClient{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userAgent: opts.UserAgent,
		client:    &http.Client{Timeout: opts.Timeout},
		cache:     opts.Cache,
		cacheTTL:  opts.CacheTTL,
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// cacheKey rounds to five decimals (about a metre).
func cacheKey(lat, lon float64) string {
	return "geocode:" + strconv.FormatFloat(lat, 'f', 5, 64) + "," + strconv.FormatFloat(lon, 'f', 5, 64)
}

func (c *NominatimClient) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	key := cacheKey(lat, lon)
	if c.cache != nil {
		if v, err := c.cache.Get(ctx, key); err == nil {
			return string(v), nil
		}
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("geocode status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode geocode response: %w", err)
	}
	if out.DisplayName == "" {
		if out.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrNoAddress, out.Error)
		}
		return "", ErrNoAddress
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, []byte(out.DisplayName), c.cacheTTL); err != nil {
			slog.Warn("geocode cache write failed", "error", err)
		}
	}
	return out.DisplayName, nil
}

// Fallback never fails: any error from the wrapped geocoder is logged and
// replaced by FallbackAddress.
type Fallback struct {
	Geocoder Geocoder
}

func (f Fallback) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	if f.Geocoder == nil {
		return FallbackAddress, nil
	}
	addr, err := f.Geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		slog.Warn("reverse geocode failed", "lat", lat, "lon", lon, "error", err)
		return FallbackAddress, nil
	}
	return addr, nil
}
