package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"blog/internal/models"
	"blog/internal/session"
)

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminExists        = errors.New("admin already registered")
)

// Service orchestrates registration, login and logout over the user
// directory and the session store.
type Service struct {
	db       *sql.DB
	sessions session.Store
	ttl      time.Duration
}

func NewService(db *sql.DB, sessions session.Store, ttl time.Duration) *Service {
	return &Service{db: db, sessions: sessions, ttl: ttl}
}

// SessionTTL is the lifetime granted to sessions issued by Login.
func (s *Service) SessionTTL() time.Duration {
	return s.ttl
}

func (s *Service) Register(ctx context.Context, username, email, password string) (int, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return 0, err
	}
	return models.CreateUser(ctx, s.db, username, email, hash, models.RoleUser, false)
}

// RegisterAdmin creates the one admin account. The count check gives the
// friendly rejection; the partial unique index on users(role) is the
// backstop for two concurrent registrations passing the check together.
func (s *Service) RegisterAdmin(ctx context.Context, name, email, password string) (int, error) {
	n, err := models.CountUsersByRole(ctx, s.db, models.RoleAdmin)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, ErrAdminExists
	}
	hash, err := HashPassword(password)
	if err != nil {
		return 0, err
	}
	id, err := models.CreateUser(ctx, s.db, name, email, hash, models.RoleAdmin, true)
	if errors.Is(err, models.ErrDuplicateAdmin) {
		return 0, ErrAdminExists
	}
	return id, err
}

func (s *Service) Login(ctx context.Context, email, password string) (token string, isAdmin bool, err error) {
	user, err := models.GetUserByEmail(ctx, s.db, email)
	if errors.Is(err, models.ErrNotFound) {
		return "", false, ErrInvalidCredentials
	}
	if err != nil {
		return "", false, err
	}
	if !VerifyPassword(user.PasswordHash, password) {
		return "", false, ErrInvalidCredentials
	}
	token, err = s.sessions.Create(ctx, session.Identity{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	}, s.ttl)
	if err != nil {
		return "", false, err
	}
	return token, user.IsAdmin, nil
}

// Logout destroys the session. Destroying an absent token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}
