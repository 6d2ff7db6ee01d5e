// Package aisvc - Test ML client: soft-fail, không bao giờ chặn pipeline.
package aisvc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChiragDawra/BrainBug/config"
)

func newMLTestClient(endpoint, token string) *MLClient {
	return NewMLClient(&config.Configuration{
		HuggingFace_Endpoint: endpoint,
		HuggingFace_Token:    token,
		AI_TimeoutSeconds:    5,
	})
}

func TestMLClassify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "const x = 1", payload["inputs"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"label":"bug","score":0.91}]`))
	}))
	defer srv.Close()

	client := newMLTestClient(srv.URL, "test-token")
	output := client.Classify(context.Background(), "const x = 1")

	items, ok := output.([]interface{})
	require.True(t, ok, "output phải là mảng đã decode, got %T", output)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "bug", first["label"])
}

func TestMLClassify_MissingToken(t *testing.T) {
	client := newMLTestClient("http://unused.test", "")
	output := client.Classify(context.Background(), "code")

	payload, ok := output.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "HF_TOKEN missing", payload["error"])
}

func TestMLClassify_HTTPErrorSoftFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"model loading"}`))
	}))
	defer srv.Close()

	client := newMLTestClient(srv.URL, "test-token")
	output := client.Classify(context.Background(), "code")

	payload, ok := output.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Failed to get analysis from ML model", payload["error"])
	assert.Equal(t, http.StatusServiceUnavailable, payload["status"])
	assert.Contains(t, payload["details"], "model loading")
}

func TestMLClassify_TransportErrorSoftFails(t *testing.T) {
	// Server đã đóng: lỗi network, vẫn trả payload thay vì error
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newMLTestClient(srv.URL, "test-token")
	output := client.Classify(context.Background(), "code")

	payload, ok := output.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Failed to get analysis from ML model", payload["error"])
	assert.NotEmpty(t, payload["details"])
}
