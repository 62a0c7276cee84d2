// Package users implements the credential store: persistence of account
// records with lookup by id or by username/email and partial updates.
// Uniqueness of username and email is enforced by database constraints, so
// the store stays the authority even under concurrent registrations.
package users

import (
	"context"

	"github.com/retail-hub/accounts/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A username or email collision yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByLogin finds a user whose username or email equals login. If several
	// rows match (corrupt data), the oldest row wins; records are never merged.
	GetByLogin(ctx context.Context, login string) (*models.User, error)

	// GetByID finds a user by its identifier.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Save writes all mutable columns of the user back to the row identified
	// by user.ID. A missing row yields common.ErrorNotFound, a uniqueness
	// collision common.ErrorAlreadyExists.
	Save(ctx context.Context, user *models.User) error

	// LoginTaken reports whether another user (id != excludeID) already owns
	// the given username or email. Empty strings match nothing.
	LoginTaken(ctx context.Context, username, email, excludeID string) (bool, error)
}
