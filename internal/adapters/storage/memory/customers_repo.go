package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption-store/internal/domain/customers"
)

type customersRepo struct {
	mu   sync.RWMutex
	byID map[string]customers.Customer
}

func NewCustomersRepo() customers.Repository {
	return &customersRepo{
		byID: make(map[string]customers.Customer),
	}
}

func (r *customersRepo) Create(ctx context.Context, c customers.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == "" {
		return errors.New("customer id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("customer already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *customersRepo) GetByID(ctx context.Context, id string) (customers.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return customers.Customer{}, customers.ErrNotFound
	}
	return c, nil
}

func (r *customersRepo) GetByEmail(ctx context.Context, email string) (customers.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if c.Email == email {
			return c, nil
		}
	}
	return customers.Customer{}, customers.ErrNotFound
}

func (r *customersRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return customers.ErrNotFound
	}
	c.PasswordHash = passwordHash
	r.byID[id] = c
	return nil
}

func (r *customersRepo) DeleteByEmail(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.byID {
		if c.Email == email {
			delete(r.byID, id)
			return nil
		}
	}
	return customers.ErrNotFound
}

func (r *customersRepo) Search(ctx context.Context, query string) ([]customers.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]customers.Customer, 0)
	for _, c := range r.byID {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Email), q) {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
