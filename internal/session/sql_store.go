package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQLStore keeps sessions in the sessions(token, data, expiry) table,
// identity serialized as JSON in the data column. Expired rows are
// removed lazily when read.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Create(ctx context.Context, ident Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("session: ttl must be positive")
	}
	data, err := json.Marshal(ident)
	if err != nil {
		return "", fmt.Errorf("session: marshal: %w", err)
	}
	token := NewToken()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (token, data, expiry) VALUES ($1, $2, $3)`,
		token, string(data), time.Now().Add(ttl))
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *SQLStore) Get(ctx context.Context, token string) (*Identity, error) {
	var (
		data   string
		expiry time.Time
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT data, expiry FROM sessions WHERE token = $1`, token).Scan(&data, &expiry)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(expiry) {
		_ = s.Destroy(ctx, token)
		return nil, nil
	}
	var ident Identity
	if err := json.Unmarshal([]byte(data), &ident); err != nil {
		return nil, fmt.Errorf("session: unmarshal: %w", err)
	}
	return &ident, nil
}

func (s *SQLStore) Destroy(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}
