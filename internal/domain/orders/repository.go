package orders

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("order not found")

// SearchFilter es un filtro campo=valores, mismo formato que el catálogo.
type SearchFilter map[string][]string

type Repository interface {
	// CreateBatch inserta todas las filas en una sola escritura.
	CreateBatch(ctx context.Context, rows []Order) error

	GetByID(ctx context.Context, id string) (Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Order, error)
	Search(ctx context.Context, filter SearchFilter) ([]Order, error)
}
