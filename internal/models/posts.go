package models

import (
	"context"
	"database/sql"
	"errors"
)

func CreatePost(ctx context.Context, db *sql.DB, userID int, subject, title, content string) (int, error) {
	var id int
	err := db.QueryRowContext(ctx,
		`INSERT INTO posts (user_id, subject, title, content) VALUES ($1, $2, $3, $4) RETURNING id`,
		userID, subject, title, content).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func ListPosts(ctx context.Context, db *sql.DB) ([]Post, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, subject, title, content, created_at FROM posts`)
	if err != nil {
		return nil, err
	}
	return scanPosts(rows)
}

func ListPostsByOwner(ctx context.Context, db *sql.DB, userID int) ([]Post, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, subject, title, content, created_at FROM posts WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	return scanPosts(rows)
}

func scanPosts(rows *sql.Rows) ([]Post, error) {
	defer rows.Close()
	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Subject, &p.Title, &p.Content, &p.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func GetPost(ctx context.Context, db *sql.DB, id int) (*Post, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, user_id, subject, title, content, created_at FROM posts WHERE id = $1`, id)
	return scanPost(row)
}

// GetPostByIDAndOwner resolves a post only if it belongs to userID. Callers
// use it to check ownership before mutating; a miss does not distinguish
// "absent" from "not yours".
func GetPostByIDAndOwner(ctx context.Context, db *sql.DB, id, userID int) (*Post, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, user_id, subject, title, content, created_at FROM posts WHERE id = $1 AND user_id = $2`, id, userID)
	return scanPost(row)
}

func scanPost(row *sql.Row) (*Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.UserID, &p.Subject, &p.Title, &p.Content, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func UpdatePost(ctx context.Context, db *sql.DB, id int, subject, title, content string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE posts SET subject = $1, title = $2, content = $3 WHERE id = $4`,
		subject, title, content, id)
	return err
}

func DeletePost(ctx context.Context, db *sql.DB, id int) error {
	_, err := db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}
