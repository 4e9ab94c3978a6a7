package posts_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"blog/internal/db"
	"blog/internal/models"
	"blog/internal/posts"
)

func newTestService(t *testing.T) (*posts.Service, *sql.DB) {
	t.Helper()
	database, err := db.Open(context.Background(), "sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return posts.NewService(database), database
}

func createUser(t *testing.T, database *sql.DB, name string) int {
	t.Helper()
	id, err := models.CreateUser(context.Background(), database, name, name+"@b.com", "x", models.RoleUser, false)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return id
}

func TestComposeRoundTrip(t *testing.T) {
	c := qt.New(t)
	svc, database := newTestService(t)
	ctx := context.Background()
	alice := createUser(t, database, "alice")

	id, err := svc.Compose(ctx, alice, "life", "hello", "world")
	c.Assert(err, qt.IsNil)

	post, err := svc.GetPublic(ctx, id)
	c.Assert(err, qt.IsNil)
	c.Assert(post.Subject, qt.Equals, "life")
	c.Assert(post.Title, qt.Equals, "hello")
	c.Assert(post.Content, qt.Equals, "world")
	c.Assert(post.UserID, qt.Equals, alice)
}

func TestGetPublicAbsent(t *testing.T) {
	c := qt.New(t)
	svc, _ := newTestService(t)

	_, err := svc.GetPublic(context.Background(), 42)
	c.Assert(err, qt.ErrorIs, models.ErrNotFound)
}

func TestMutationIsOwnershipScoped(t *testing.T) {
	c := qt.New(t)
	svc, database := newTestService(t)
	ctx := context.Background()
	alice := createUser(t, database, "alice")
	bob := createUser(t, database, "bob")

	id, err := svc.Compose(ctx, alice, "life", "hello", "world")
	c.Assert(err, qt.IsNil)

	// bob's attempts fail without revealing the post exists
	err = svc.Edit(ctx, id, bob, "x", "x", "x")
	c.Assert(err, qt.ErrorIs, models.ErrNotFound)
	err = svc.Delete(ctx, id, bob)
	c.Assert(err, qt.ErrorIs, models.ErrNotFound)

	post, err := svc.GetPublic(ctx, id)
	c.Assert(err, qt.IsNil)
	c.Assert(post.Title, qt.Equals, "hello")
	c.Assert(post.Content, qt.Equals, "world")

	// alice's succeed
	err = svc.Edit(ctx, id, alice, "life", "goodbye", "world")
	c.Assert(err, qt.IsNil)
	post, err = svc.GetPublic(ctx, id)
	c.Assert(err, qt.IsNil)
	c.Assert(post.Title, qt.Equals, "goodbye")

	err = svc.Delete(ctx, id, alice)
	c.Assert(err, qt.IsNil)
	_, err = svc.GetPublic(ctx, id)
	c.Assert(err, qt.ErrorIs, models.ErrNotFound)
}

func TestListingScopes(t *testing.T) {
	c := qt.New(t)
	svc, database := newTestService(t)
	ctx := context.Background()

	owners := make([]int, 3)
	for i := range owners {
		owners[i] = createUser(t, database, fmt.Sprintf("user%d", i))
		for j := 0; j < 2; j++ {
			_, err := svc.Compose(ctx, owners[i], "s", fmt.Sprintf("post %d-%d", i, j), "body")
			c.Assert(err, qt.IsNil)
		}
	}

	all, err := svc.ListForAdmin(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(all, qt.HasLen, 6)

	for _, owner := range owners {
		owned, err := svc.ListForDashboard(ctx, owner)
		c.Assert(err, qt.IsNil)
		c.Assert(owned, qt.HasLen, 2)
		for _, p := range owned {
			c.Assert(p.UserID, qt.Equals, owner)
		}
	}
}
