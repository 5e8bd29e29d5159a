package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grofast/portal-backend-go/internal/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimClient_Reverse(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "12.9716", r.URL.Query().Get("lat"))
		assert.Equal(t, "77.5946", r.URL.Query().Get("lon"))
		assert.Equal(t, "grofast-test", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"display_name":"MG Road, Bengaluru, Karnataka, India"}`))
	}))
	defer srv.Close()

	c := NewNominatimClient(Options{BaseURL: srv.URL + "/", UserAgent: "grofast-test", Cache: kvstore.NewMemoryStore(), CacheTTL: time.Hour})

	for i := 0; i < 2; i++ {
		addr, err := c.Reverse(context.Background(), 12.9716, 77.5946)
		require.NoError(t, err)
		assert.Equal(t, "MG Road, Bengaluru, Karnataka, India", addr)
	}
	assert.Equal(t, int32(1), hits.Load(), "second lookup served from cache")
}

func TestNominatimClient_Errors(t *testing.T) {
	tests := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		},
		"no address": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":"Unable to geocode"}`))
		},
		"bad json": func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>`))
		},
	}
	for name, h := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()

			_, err := NewNominatimClient(Options{BaseURL: srv.URL}).Reverse(context.Background(), 1, 2)
			assert.Error(t, err)
		})
	}
}

type failingGeocoder struct{}

func (failingGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	return "", errors.New("network unreachable")
}

func TestFallback(t *testing.T) {
	addr, err := Fallback{Geocoder: failingGeocoder{}}.Reverse(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, FallbackAddress, addr)

	addr, err = Fallback{}.Reverse(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, FallbackAddress, addr)
}
