package repository

import (
	"context"
	"errors"

	"arogyaai/internal/user"
)

var (
	// ErrDuplicateEmail means the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNotFound means no user matches the lookup.
	ErrNotFound = errors.New("user not found")
)

// CreateUserOptions carries the fields stored for a new account.
type CreateUserOptions struct {
	Email        string
	PasswordHash string
}

// Repository persists user accounts.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
}
