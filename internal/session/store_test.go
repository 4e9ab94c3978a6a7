package session_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"blog/internal/db"
	"blog/internal/session"
)

func newTestStore(t *testing.T) (*session.SQLStore, *sql.DB) {
	t.Helper()
	database, err := db.Open(context.Background(), "sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return session.NewSQLStore(database), database
}

func TestCreateGetRoundTrip(t *testing.T) {
	c := qt.New(t)
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, session.Identity{UserID: 7, IsAdmin: true}, time.Hour)
	c.Assert(err, qt.IsNil)
	c.Assert(token, qt.Not(qt.Equals), "")

	ident, err := store.Get(ctx, token)
	c.Assert(err, qt.IsNil)
	c.Assert(ident, qt.IsNotNil)
	c.Assert(*ident, qt.Equals, session.Identity{UserID: 7, IsAdmin: true})
}

func TestGetUnknownToken(t *testing.T) {
	c := qt.New(t)
	store, _ := newTestStore(t)

	ident, err := store.Get(context.Background(), "no-such-token")
	c.Assert(err, qt.IsNil)
	c.Assert(ident, qt.IsNil)
}

func TestDestroyIsIdempotent(t *testing.T) {
	c := qt.New(t)
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, session.Identity{UserID: 1}, time.Hour)
	c.Assert(err, qt.IsNil)

	c.Assert(store.Destroy(ctx, token), qt.IsNil)
	c.Assert(store.Destroy(ctx, token), qt.IsNil)

	ident, err := store.Get(ctx, token)
	c.Assert(err, qt.IsNil)
	c.Assert(ident, qt.IsNil)
}

func TestExpiredSessionIsInvalid(t *testing.T) {
	c := qt.New(t)
	store, database := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, session.Identity{UserID: 1}, time.Hour)
	c.Assert(err, qt.IsNil)

	_, err = database.ExecContext(ctx,
		`UPDATE sessions SET expiry = $1 WHERE token = $2`,
		time.Now().Add(-time.Minute), token)
	c.Assert(err, qt.IsNil)

	ident, err := store.Get(ctx, token)
	c.Assert(err, qt.IsNil)
	c.Assert(ident, qt.IsNil)

	// the expired row is gone after the read
	var n int
	err = database.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions WHERE token = $1`, token).Scan(&n)
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, 0)
}

func TestCreateRejectsNonPositiveTTL(t *testing.T) {
	c := qt.New(t)
	store, _ := newTestStore(t)

	_, err := store.Create(context.Background(), session.Identity{UserID: 1}, 0)
	c.Assert(err, qt.IsNotNil)
}
