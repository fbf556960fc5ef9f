package customers

import "context"

type Repository interface {
	Create(ctx context.Context, c Customer) error
	GetByID(ctx context.Context, id string) (Customer, error)
	GetByEmail(ctx context.Context, email string) (Customer, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	DeleteByEmail(ctx context.Context, email string) error

	// Search filtra por substring en name o email (staff CLI).
	Search(ctx context.Context, query string) ([]Customer, error)
}
