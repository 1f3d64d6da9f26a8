// Package users contains the credential store: lookups and inserts against
// the users table. It holds no business rules; uniqueness of the normalized
// email is enforced by the store itself.
package users

import (
	"context"

	"github.com/dmitrijs2005/vaccinehub/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills in the generated ID. It returns
	// common.ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByEmail returns the raw record (digest included) or
	// common.ErrorNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
