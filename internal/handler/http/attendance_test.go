package http

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadFrame(t *testing.T, srvURL, token string, client *http.Client, data []byte) (*http.Response, envelope) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, srvURL+"/api/v1/attendance/capture/frame", bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "image/png")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestUploadFrame_OversizedDimensionsRejected(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv, "ravi@grofast.com")

	resp, _ := do(t, srv, http.MethodPost, "/api/v1/attendance/capture", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 5000, 5000))))

	resp, env := uploadFrame(t, srv.URL, token, srv.Client(), buf.Bytes())
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Frame too large", env.Error.Message)

	resp, env = do(t, srv, http.MethodGet, "/api/v1/attendance/capture", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view struct {
		State string `json:"state"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "camera", view.State)
}

func TestUploadFrame_AcceptsSmallFrame(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv, "ravi@grofast.com")

	resp, _ := do(t, srv, http.MethodPost, "/api/v1/attendance/capture", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 48))))

	resp, env := uploadFrame(t, srv.URL, token, srv.Client(), buf.Bytes())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view struct {
		State    string `json:"state"`
		HasPhoto bool   `json:"hasPhoto"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "location", view.State)
	assert.True(t, view.HasPhoto)
}
