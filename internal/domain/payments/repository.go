package payments

import (
	"context"
	"errors"
)

// ErrNotFound significa que el customer todavía no tiene método de pago.
var ErrNotFound = errors.New("payment method not found")

type Repository interface {
	// FindByCustomer espera cero o una fila por customer.
	FindByCustomer(ctx context.Context, customerID string) (Method, error)
	Create(ctx context.Context, m Method) error
}
