package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoption-store/internal/domain/employees"
)

type employeesRepo struct {
	mu   sync.RWMutex
	byID map[string]employees.Employee
}

func NewEmployeesRepo() employees.Repository {
	return &employeesRepo{
		byID: make(map[string]employees.Employee),
	}
}

func (r *employeesRepo) Create(ctx context.Context, e employees.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("employee id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("employee already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *employeesRepo) Update(ctx context.Context, e employees.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[e.ID]; !exists {
		return employees.ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *employeesRepo) GetByID(ctx context.Context, id string) (employees.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return employees.Employee{}, employees.ErrNotFound
	}
	return e, nil
}

func (r *employeesRepo) GetByEmail(ctx context.Context, email string) (employees.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.byID {
		if e.Email == email {
			return e, nil
		}
	}
	return employees.Employee{}, employees.ErrNotFound
}

func (r *employeesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return employees.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *employeesRepo) Search(ctx context.Context, query string) ([]employees.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	out := make([]employees.Employee, 0)
	for _, e := range r.byID {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Email), q) {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
