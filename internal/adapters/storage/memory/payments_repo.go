package memory

import (
	"context"
	"errors"
	"sync"

	"pet-adoption-store/internal/domain/payments"
)

type paymentsRepo struct {
	mu   sync.RWMutex
	byID map[string]payments.Method
}

func NewPaymentsRepo() payments.Repository {
	return &paymentsRepo{
		byID: make(map[string]payments.Method),
	}
}

func (r *paymentsRepo) FindByCustomer(ctx context.Context, customerID string) (payments.Method, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.byID {
		if m.CustomerID == customerID {
			return m, nil
		}
	}
	return payments.Method{}, payments.ErrNotFound
}

func (r *paymentsRepo) Create(ctx context.Context, m payments.Method) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == "" {
		return errors.New("payment method id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("payment method already exists")
	}
	r.byID[m.ID] = m
	return nil
}
