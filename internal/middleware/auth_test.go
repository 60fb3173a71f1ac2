package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weathervault/internal/auth"
)

func authTestStack(t *testing.T) (*auth.TokenManager, http.Handler, *string) {
	t.Helper()

	tokens := auth.NewTokenManager("test-secret", time.Hour)

	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	return tokens, Authenticate(tokens)(next), &seenUserID
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	_, handler, seen := authTestStack(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authentication token required"}`, rec.Body.String())
	assert.Empty(t, *seen)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	_, handler, _ := authTestStack(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authentication token required"}`, rec.Body.String())
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	_, handler, seen := authTestStack(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, rec.Body.String())
	assert.Empty(t, *seen)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens, handler, seen := authTestStack(t)

	token, err := tokens.Issue("user-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", *seen)
}
