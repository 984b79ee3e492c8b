package auth

import (
	"context"

	"github.com/isdelr/vocab-trainer/internal/models"
)

// Identity is the authenticated username and role attached to a request.
// The zero value is the anonymous identity.
type Identity struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// Anonymous reports whether no user is signed in.
func (i Identity) Anonymous() bool {
	return i.Username == ""
}

// IsAdmin reports whether the identity belongs to a signed-in administrator.
func (i Identity) IsAdmin() bool {
	return !i.Anonymous() && i.Role == models.RoleAdmin
}

type contextKey string

const identityKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity stored in ctx. ok is false for anonymous requests.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.Anonymous() {
		return Identity{}, false
	}
	return id, true
}
