package posts

import (
	"context"
	"database/sql"

	"blog/internal/models"
)

// Service owns the post lifecycle. Reads of a single post are public;
// mutations are scoped to the owning user.
type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Compose(ctx context.Context, ownerID int, subject, title, content string) (int, error) {
	return models.CreatePost(ctx, s.db, ownerID, subject, title, content)
}

// GetPublic returns a post by id with no ownership check.
func (s *Service) GetPublic(ctx context.Context, id int) (*models.Post, error) {
	return models.GetPost(ctx, s.db, id)
}

func (s *Service) ListForDashboard(ctx context.Context, ownerID int) ([]models.Post, error) {
	return models.ListPostsByOwner(ctx, s.db, ownerID)
}

// ListAll returns every post, in datastore order, for the public home page.
func (s *Service) ListAll(ctx context.Context) ([]models.Post, error) {
	return models.ListPosts(ctx, s.db)
}

// ListForAdmin returns every post. Route guards ensure only the admin
// reaches it.
func (s *Service) ListForAdmin(ctx context.Context) ([]models.Post, error) {
	return s.ListAll(ctx)
}

// GetForOwner resolves a post for mutation by its owner. A miss returns
// models.ErrNotFound whether the post is absent or owned by someone else.
func (s *Service) GetForOwner(ctx context.Context, id, ownerID int) (*models.Post, error) {
	return models.GetPostByIDAndOwner(ctx, s.db, id, ownerID)
}

func (s *Service) Edit(ctx context.Context, id, ownerID int, subject, title, content string) error {
	if _, err := models.GetPostByIDAndOwner(ctx, s.db, id, ownerID); err != nil {
		return err
	}
	return models.UpdatePost(ctx, s.db, id, subject, title, content)
}

func (s *Service) Delete(ctx context.Context, id, ownerID int) error {
	if _, err := models.GetPostByIDAndOwner(ctx, s.db, id, ownerID); err != nil {
		return err
	}
	return models.DeletePost(ctx, s.db, id)
}
