package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Action names an admin-only operation.
type Action string

const (
	ActionManageWords     Action = "words.manage"
	ActionDeleteWord      Action = "words.delete"
	ActionManageQuestions Action = "questions.manage"
	ActionDeleteQuestion  Action = "questions.delete"
	ActionManageUsers     Action = "users.manage"
	ActionViewEvents      Action = "events.view"
)

// ErrAccessDenied is matched by every *AccessDeniedError.
var ErrAccessDenied = errors.New("access denied")

// AccessDeniedError reports a rejected admin action.
type AccessDeniedError struct {
	Action   Action
	Username string // empty for anonymous callers
}

func (e *AccessDeniedError) Error() string {
	if e.Username == "" {
		return fmt.Sprintf("access denied: %s requires an administrator session", e.Action)
	}
	return fmt.Sprintf("access denied: %s requires an administrator, %s is not one", e.Action, e.Username)
}

func (e *AccessDeniedError) Is(target error) bool {
	return target == ErrAccessDenied
}

// Authorize allows the action only for a signed-in administrator.
func Authorize(id Identity, action Action) error {
	if id.IsAdmin() {
		return nil
	}
	return &AccessDeniedError{Action: action, Username: id.Username}
}

// DeniedFunc writes the response for a rejected request.
type DeniedFunc func(w http.ResponseWriter, r *http.Request, err *AccessDeniedError)

// Gate applies Authorize to routes and renders every denial the same way.
type Gate struct {
	denied DeniedFunc
}

// NewGate creates a Gate that reports denials through denied.
func NewGate(denied DeniedFunc) *Gate {
	return &Gate{denied: denied}
}

// Require returns middleware that only lets administrators through to next.
func (g *Gate) Require(action Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := IdentityFromContext(r.Context())
			if err := Authorize(id, action); err != nil {
				var denied *AccessDeniedError
				errors.As(err, &denied)
				log.Warn().Str("action", string(action)).Str("username", id.Username).Str("path", r.URL.Path).Msg("Admin action denied")
				g.denied(w, r, denied)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
