package models

import (
	"errors"
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateAdmin = errors.New("admin already registered")
	ErrNotFound       = errors.New("not found")
)

type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsAdmin      bool
	CreatedAt    time.Time
}

type Post struct {
	ID        int
	UserID    int
	Subject   string
	Title     string
	Content   string
	CreatedAt time.Time
}
