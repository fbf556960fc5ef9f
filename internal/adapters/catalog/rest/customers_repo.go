package rest

import (
	"context"
	"net/url"

	"pet-adoption-store/internal/domain/customers"
)

type CustomersRepo struct {
	c *Client
}

func NewCustomersRepo(c *Client) *CustomersRepo {
	return &CustomersRepo{c: c}
}

type customerRow struct {
	CustomerID string `json:"customerid"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	Address    string `json:"address"`
	Password   string `json:"password"`
}

func (row customerRow) toCustomer() customers.Customer {
	return customers.Customer{
		ID:           row.CustomerID,
		Name:         row.Name,
		Email:        row.Email,
		Mobile:       row.Mobile,
		Address:      row.Address,
		PasswordHash: row.Password,
	}
}

func (r *CustomersRepo) Create(ctx context.Context, c customers.Customer) error {
	return r.c.insert(ctx, "customer", []customerRow{{
		CustomerID: c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Mobile:     c.Mobile,
		Address:    c.Address,
		Password:   c.PasswordHash,
	}}, nil)
}

func (r *CustomersRepo) GetByID(ctx context.Context, id string) (customers.Customer, error) {
	q := url.Values{}
	q.Set("customerid", eq(id))
	return r.findOne(ctx, q)
}

func (r *CustomersRepo) GetByEmail(ctx context.Context, email string) (customers.Customer, error) {
	q := url.Values{}
	q.Set("email", eq(email))
	return r.findOne(ctx, q)
}

func (r *CustomersRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	q := url.Values{}
	q.Set("customerid", eq(id))
	return r.c.update(ctx, "customer", q, map[string]string{"password": passwordHash})
}

func (r *CustomersRepo) DeleteByEmail(ctx context.Context, email string) error {
	q := url.Values{}
	q.Set("email", eq(email))
	return r.c.delete(ctx, "customer", q)
}

func (r *CustomersRepo) Search(ctx context.Context, query string) ([]customers.Customer, error) {
	// or=(name.ilike.*q*,email.ilike.*q*) es la forma PostgREST de un OR
	q := url.Values{}
	q.Set("or", "(name.ilike.*"+query+"*,email.ilike.*"+query+"*)")
	q.Set("order", "customerid.asc")

	var rows []customerRow
	if err := r.c.get(ctx, "customer", q, &rows); err != nil {
		return nil, err
	}

	out := make([]customers.Customer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toCustomer())
	}
	return out, nil
}

func (r *CustomersRepo) findOne(ctx context.Context, q url.Values) (customers.Customer, error) {
	var rows []customerRow
	if err := r.c.get(ctx, "customer", q, &rows); err != nil {
		return customers.Customer{}, err
	}
	if len(rows) == 0 {
		return customers.Customer{}, customers.ErrNotFound
	}
	return rows[0].toCustomer(), nil
}
