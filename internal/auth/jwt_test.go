package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestIssueAndParse(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, false)
	want := Identity{Username: "alice", Role: models.RoleStandard}

	token, err := tm.Issue(want)
	require.NoError(t, err)

	got, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestIssueUsesUniqueTokenIDs(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, false)
	id := Identity{Username: "alice", Role: models.RoleStandard}

	a, err := tm.Issue(id)
	require.NoError(t, err)
	b, err := tm.Issue(id)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParseRejects(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, false)
	id := Identity{Username: "alice", Role: models.RoleAdmin}

	otherKey, err := NewTokenManager([]byte("other-secret"), time.Hour, false).Issue(id)
	require.NoError(t, err)

	expired, err := NewTokenManager(testSecret, -time.Minute, false).Issue(id)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "mallory",
		Role:     "superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(testSecret)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "mallory",
		Role:     models.RoleAdmin,
	}).SignedString(testSecret)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"signed with another key", otherKey},
		{"expired", expired},
		{"unknown role", badRole},
		{"missing expiry", noExpiry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tm.Parse(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestStartAndEndSession(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, true)
	id := Identity{Username: "alice", Role: models.RoleStandard}

	rec := httptest.NewRecorder()
	require.NoError(t, tm.StartSession(rec, id))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, SessionCookieName, c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	got, err := tm.Parse(c.Value)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	rec = httptest.NewRecorder()
	tm.EndSession(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestSessionMiddleware(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour, false)
	alice := Identity{Username: "alice", Role: models.RoleStandard}
	token, err := tm.Issue(alice)
	require.NoError(t, err)

	var seen Identity
	var signedIn bool
	h := SessionMiddleware(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, signedIn = IdentityFromContext(r.Context())
	}))

	tests := []struct {
		name     string
		prepare  func(r *http.Request)
		signedIn bool
	}{
		{"no token", func(r *http.Request) {}, false},
		{"cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		}, true},
		{"bearer header", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+token)
		}, true},
		{"tampered cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token + "x"})
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen, signedIn = Identity{}, false
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			h.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tt.signedIn, signedIn)
			if tt.signedIn {
				assert.Equal(t, alice, seen)
			} else {
				assert.True(t, seen.Anonymous())
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	called := false
	h := RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/home", nil))
	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	req = req.WithContext(WithIdentity(req.Context(), Identity{Username: "alice", Role: models.RoleStandard}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
