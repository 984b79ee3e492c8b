package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/rs/zerolog/log"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// Claims defines the JWT claims structure.
type Claims struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates signed session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewTokenManager creates a TokenManager. secure sets the Secure flag on cookies.
func NewTokenManager(secret []byte, ttl time.Duration, secure bool) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl, secure: secure}
}

// Issue creates a new signed token for the identity.
func (tm *TokenManager) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username: id.Username,
		Role:     id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   id.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Parse validates a token string and returns the identity it carries.
func (tm *TokenManager) Parse(tokenStr string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, err
	}
	if !token.Valid {
		return Identity{}, fmt.Errorf("invalid token")
	}
	if claims.Username == "" || !claims.Role.Valid() {
		return Identity{}, fmt.Errorf("invalid session claims")
	}
	return Identity{Username: claims.Username, Role: claims.Role}, nil
}

// StartSession issues a token for id and sets it as the session cookie.
func (tm *TokenManager) StartSession(w http.ResponseWriter, id Identity) error {
	token, err := tm.Issue(id)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  time.Now().Add(tm.ttl),
		HttpOnly: true,
		Secure:   tm.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// EndSession clears the session cookie. Subsequent requests are anonymous.
func (tm *TokenManager) EndSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   tm.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

// SessionMiddleware resolves the optional session token into a request identity.
// Requests without a valid token continue anonymously.
func SessionMiddleware(tm *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var tokenStr string

			// 1. Try to get the token from the Authorization header
			if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			}

			// 2. If not in header, fall back to the cookie
			if tokenStr == "" {
				if cookie, err := r.Cookie(SessionCookieName); err == nil {
					tokenStr = cookie.Value
				}
			}

			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := tm.Parse(tokenStr)
			if err != nil {
				log.Debug().Err(err).Msg("Ignoring invalid session token")
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RequireSession redirects anonymous requests to the login page.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
