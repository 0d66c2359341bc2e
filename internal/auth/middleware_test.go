package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Preetham1508/DogHTTPImages/internal/token"
)

func newGate(t *testing.T) (Middleware, *MemoryRepository, *token.Service, *User) {
	t.Helper()
	repo := NewMemoryRepository()
	tokens := token.NewService([]byte("test-secret"), 24*time.Hour)

	user := &User{Name: "Preetham", Email: "p@test.local", PasswordHash: "x"}
	require.NoError(t, repo.CreateUser(context.Background(), user))

	return Middleware{Tokens: tokens, Repo: repo}, repo, tokens, user
}

func gateProbe(gate Middleware) (http.Handler, *bool, **User) {
	reached := false
	var seen *User
	handler := gate.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		seen = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return handler, &reached, &seen
}

func TestGateAdmitsValidToken(t *testing.T) {
	gate, _, tokens, user := newGate(t)
	handler, reached, seen := gateProbe(gate)

	signed, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.True(t, *reached)
	require.NotNil(t, *seen)
	assert.Equal(t, user.ID, (*seen).ID)
	assert.Equal(t, user.Email, (*seen).Email)
}

func TestGateRejections(t *testing.T) {
	gate, _, tokens, user := newGate(t)

	valid, err := tokens.Issue(user.ID)
	require.NoError(t, err)

	expiredTokens := token.NewService([]byte("test-secret"), 24*time.Hour).
		WithClock(func() time.Time { return time.Now().Add(-48 * time.Hour) })
	expired, err := expiredTokens.Issue(user.ID)
	require.NoError(t, err)

	foreign, err := token.NewService([]byte("other-secret"), 24*time.Hour).Issue(user.ID)
	require.NoError(t, err)

	orphan, err := tokens.Issue("00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)

	cases := []struct {
		name    string
		header  string
		message string
	}{
		{"no header", "", "token is missing or malformed"},
		{"wrong scheme", "Basic dXNlcjpwdw==", "token is missing or malformed"},
		{"bare token", valid, "token is missing or malformed"},
		{"garbage token", "Bearer garbage", "token is invalid"},
		{"foreign signature", "Bearer " + foreign, "token is invalid"},
		{"expired token", "Bearer " + expired, "token expired"},
		{"unknown user", "Bearer " + orphan, "user not found"},
		{"non-uuid subject", "Bearer " + mustIssue(t, tokens, "not-a-uuid"), "user not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler, reached, _ := gateProbe(gate)

			req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)

			assert.Equal(t, http.StatusUnauthorized, res.Code)
			assert.False(t, *reached, "handler must not run")

			var body struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body.Message)
		})
	}
}

func mustIssue(t *testing.T, tokens *token.Service, userID string) string {
	t.Helper()
	signed, err := tokens.Issue(userID)
	require.NoError(t, err)
	return signed
}
