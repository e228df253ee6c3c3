package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/tradeport/pkg/auth"
)

func okHandler(t *testing.T, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRejectsMissingToken(t *testing.T) {
	var called bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)

	Auth(okHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "Missing bearer token")
}

func TestAuthRejectsMalformedToken(t *testing.T) {
	var called bool
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	Auth(okHandler(t, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthStoresClaimsForHandlers(t *testing.T) {
	token, err := auth.GenerateToken("665f1c2ab13e4c0001a2b3c4", auth.ActorSeller)
	require.NoError(t, err)

	var got *auth.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClaimsFromCtx(r.Context())
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	Auth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "665f1c2ab13e4c0001a2b3c4", got.UserID)
	assert.Equal(t, auth.ActorSeller, got.Type)
}

func TestRequireActorBlocksWrongActor(t *testing.T) {
	token, err := auth.GenerateToken("665f1c2ab13e4c0001a2b3c4", auth.ActorSeller)
	require.NoError(t, err)

	var called bool
	h := Auth(RequireActor(auth.ActorAdmin)(okHandler(t, &called)))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/sellers/submitted", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, called)
}

func TestRequireActorPassesMatchingActor(t *testing.T) {
	token, err := auth.GenerateToken("665f1c2ab13e4c0001a2b3c4", auth.ActorAdmin)
	require.NoError(t, err)

	var called bool
	h := Auth(RequireActor(auth.ActorAdmin)(okHandler(t, &called)))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/sellers/submitted", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestRequireActorWithoutAuthIsUnauthenticated(t *testing.T) {
	var called bool
	h := RequireActor(auth.ActorAdmin)(okHandler(t, &called))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/sellers/submitted", nil)

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}
