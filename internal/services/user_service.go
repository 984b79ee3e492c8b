package services

import (
	"context"
	"database/sql"
	"sync"

	"github.com/isdelr/vocab-trainer/internal/auth"
	"github.com/isdelr/vocab-trainer/internal/database"
	"github.com/isdelr/vocab-trainer/internal/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// BootstrapAdminUsername is the account guaranteed to exist after startup.
const BootstrapAdminUsername = "admin"

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Authenticate(ctx context.Context, username, password string) (auth.Identity, error)
	Register(ctx context.Context, username, password string) (auth.Identity, error)
	CreateUser(ctx context.Context, username, password string, role models.Role) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	BootstrapAdmin(ctx context.Context, password string) (bool, error)
}

// UserService verifies credentials and manages accounts.
type UserService struct {
	db       *sqlx.DB
	hashCost int

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService creates a new UserService hashing passwords at hashCost.
func NewUserService(db *sqlx.DB, hashCost int) *UserService {
	return &UserService{db: db, hashCost: hashCost}
}

// Authenticate checks the password against the stored hash for username.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (auth.Identity, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user,
		s.db.Rebind("SELECT id, username, password_hash, role FROM users WHERE username = ?"), username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Burn the same bcrypt time as a real comparison.
			auth.CheckPasswordHash(password, s.fallbackHash())
			return auth.Identity{}, ErrInvalidCredentials
		}
		return auth.Identity{}, errors.Wrap(err, "failed to look up user")
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return auth.Identity{}, ErrInvalidCredentials
	}
	return auth.Identity{Username: user.Username, Role: user.Role}, nil
}

// Register creates a standard account and returns its session identity.
func (s *UserService) Register(ctx context.Context, username, password string) (auth.Identity, error) {
	user, err := s.CreateUser(ctx, username, password, models.RoleStandard)
	if err != nil {
		return auth.Identity{}, err
	}
	return auth.Identity{Username: user.Username, Role: user.Role}, nil
}

// CreateUser inserts a new account with an explicit role.
func (s *UserService) CreateUser(ctx context.Context, username, password string, role models.Role) (models.User, error) {
	if blank(username, password) || !role.Valid() {
		return models.User{}, ErrInvalidInput
	}

	hash, err := auth.HashPassword(password, s.hashCost)
	if err != nil {
		return models.User{}, errors.Wrap(err, "failed to hash password")
	}

	user := models.User{Username: username, PasswordHash: hash, Role: role}
	err = database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count, tx.Rebind("SELECT COUNT(*) FROM users WHERE username = ?"), username); err != nil {
			return errors.Wrap(err, "failed to check username")
		}
		if count > 0 {
			return ErrDuplicateUsername
		}

		row := tx.QueryRowxContext(ctx,
			tx.Rebind("INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?) RETURNING id"),
			user.Username, user.PasswordHash, user.Role)
		if err := row.Scan(&user.ID); err != nil {
			if database.IsUniqueViolation(err) {
				return ErrDuplicateUsername
			}
			return errors.Wrap(err, "failed to insert user")
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	// Don't hand the hash back to callers
	user.PasswordHash = ""
	return user, nil
}

// ListUsers returns every account in creation order, without password hashes.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.SelectContext(ctx, &users, "SELECT id, username, role FROM users ORDER BY id"); err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	return users, nil
}

// BootstrapAdmin creates the "admin" account if it does not exist yet.
// It reports whether an account was created and is safe to call on every start.
func (s *UserService) BootstrapAdmin(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, ErrInvalidInput
	}

	created := false
	err := database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count, tx.Rebind("SELECT COUNT(*) FROM users WHERE username = ?"), BootstrapAdminUsername); err != nil {
			return errors.Wrap(err, "failed to look up bootstrap admin")
		}
		if count > 0 {
			return nil
		}

		hash, err := auth.HashPassword(password, s.hashCost)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
		res, err := tx.ExecContext(ctx,
			tx.Rebind("INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?) ON CONFLICT (username) DO NOTHING"),
			BootstrapAdminUsername, hash, models.RoleAdmin)
		if err != nil {
			return errors.Wrap(err, "failed to insert bootstrap admin")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "failed to read affected rows")
		}
		created = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	if created {
		log.Info().Str("username", BootstrapAdminUsername).Msg("Created bootstrap admin account")
	}
	return created, nil
}

// fallbackHash is compared against when the username does not exist.
func (s *UserService) fallbackHash() string {
	s.dummyOnce.Do(func() {
		hash, err := auth.HashPassword("not-a-real-password", s.hashCost)
		if err != nil {
			log.Error().Err(err).Msg("Failed to prepare fallback password hash")
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}
