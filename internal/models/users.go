package models

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// CreateUser inserts a user and returns its id. Uniqueness violations are
// reported on the database constraint and translated to sentinel errors.
func CreateUser(ctx context.Context, db *sql.DB, username, email, passwordHash, role string, isAdmin bool) (int, error) {
	var id int
	err := db.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash, role, is_admin) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		username, email, passwordHash, role, isAdmin).Scan(&id)
	if err != nil {
		return 0, translateUserErr(err)
	}
	return id, nil
}

func translateUserErr(err error) error {
	str := err.Error()
	// sqlite reports the indexed columns, postgres the index name
	if strings.Contains(str, "users.email") || strings.Contains(str, "users_email") {
		return ErrDuplicateEmail
	}
	if strings.Contains(str, "users.role") || strings.Contains(str, "users_single_admin") {
		return ErrDuplicateAdmin
	}
	return err
}

func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*User, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, role, is_admin, created_at FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func GetUserByID(ctx context.Context, db *sql.DB, id int) (*User, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, role, is_admin, created_at FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.IsAdmin, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func CountUsersByRole(ctx context.Context, db *sql.DB, role string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&n)
	return n, err
}
