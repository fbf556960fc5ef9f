package employees

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("employee not found")

type Repository interface {
	Create(ctx context.Context, e Employee) error
	Update(ctx context.Context, e Employee) error
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Delete(ctx context.Context, id string) error

	// Search filtra por substring en name o email.
	Search(ctx context.Context, query string) ([]Employee, error)
}
