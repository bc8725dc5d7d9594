package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bangg2309/book-exchange/internal/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.BackendConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestLoginDecodesEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/token", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "an.nguyen", body["username"])

		json.NewEncoder(w).Encode(map[string]any{
			"code": 1000,
			"result": map[string]any{
				"token":         "access-abc",
				"refreshToken":  "refresh-def",
				"authenticated": true,
			},
		})
	})

	result, err := client.Login(context.Background(), LoginParams{Username: "an.nguyen", Password: "x"})
	require.NoError(t, err)
	assert.Equal(t, "access-abc", result.AccessToken)
	assert.Equal(t, "refresh-def", result.RefreshToken)
	assert.True(t, result.Authenticated)
}

func TestNonSuccessCodeBecomesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"code":    1003,
			"message": "Tài khoản không tồn tại",
		})
	})

	_, err := client.Login(context.Background(), LoginParams{Username: "ghost", Password: "x"})
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 1003, apiErr.Code)
	assert.Equal(t, "Tài khoản không tồn tại", apiErr.Message)
}

func TestProfileSendsBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{
			"code": 1000,
			"result": map[string]any{
				"id":       "u-1",
				"username": "an.nguyen",
				"roles":    []map[string]any{{"name": "ADMIN"}},
			},
		})
	})

	profile, err := client.Profile(context.Background(), "token-123")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "an.nguyen", profile.Username)
	assert.True(t, profile.IsAdmin())
}

func TestNonEnvelopeResponseIsTransportError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	})

	_, err := client.Profile(context.Background(), "token")
	require.Error(t, err)
	_, ok := IsAPIError(err)
	assert.False(t, ok)
}

func TestResultlessOperation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/admin/authors/7", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"code": 1000})
	})

	err := client.AdminDeleteAuthor(context.Background(), "token", 7)
	assert.NoError(t, err)
}
