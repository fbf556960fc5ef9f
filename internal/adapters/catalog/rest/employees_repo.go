package rest

import (
	"context"
	"net/url"

	"pet-adoption-store/internal/domain/employees"
)

type EmployeesRepo struct {
	c *Client
}

func NewEmployeesRepo(c *Client) *EmployeesRepo {
	return &EmployeesRepo{c: c}
}

type employeeRow struct {
	EmployeeID    string `json:"employeeid"`
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	RoutingNumber string `json:"routingnumber"`
}

func toEmployeeRow(e employees.Employee) employeeRow {
	return employeeRow{
		EmployeeID:    e.ID,
		Name:          e.Name,
		Mobile:        e.Mobile,
		Email:         e.Email,
		Password:      e.PasswordHash,
		Role:          string(e.Role),
		RoutingNumber: e.RoutingNumber,
	}
}

func (row employeeRow) toEmployee() employees.Employee {
	return employees.Employee{
		ID:            row.EmployeeID,
		Name:          row.Name,
		Mobile:        row.Mobile,
		Email:         row.Email,
		PasswordHash:  row.Password,
		Role:          employees.Role(row.Role),
		RoutingNumber: row.RoutingNumber,
	}
}

func (r *EmployeesRepo) Create(ctx context.Context, e employees.Employee) error {
	return r.c.insert(ctx, "employee", []employeeRow{toEmployeeRow(e)}, nil)
}

func (r *EmployeesRepo) Update(ctx context.Context, e employees.Employee) error {
	q := url.Values{}
	q.Set("employeeid", eq(e.ID))
	return r.c.update(ctx, "employee", q, toEmployeeRow(e))
}

func (r *EmployeesRepo) GetByID(ctx context.Context, id string) (employees.Employee, error) {
	q := url.Values{}
	q.Set("employeeid", eq(id))
	return r.findOne(ctx, q)
}

func (r *EmployeesRepo) GetByEmail(ctx context.Context, email string) (employees.Employee, error) {
	q := url.Values{}
	q.Set("email", eq(email))
	return r.findOne(ctx, q)
}

func (r *EmployeesRepo) Delete(ctx context.Context, id string) error {
	q := url.Values{}
	q.Set("employeeid", eq(id))
	return r.c.delete(ctx, "employee", q)
}

func (r *EmployeesRepo) Search(ctx context.Context, query string) ([]employees.Employee, error) {
	q := url.Values{}
	q.Set("or", "(name.ilike.*"+query+"*,email.ilike.*"+query+"*)")
	q.Set("order", "employeeid.asc")

	var rows []employeeRow
	if err := r.c.get(ctx, "employee", q, &rows); err != nil {
		return nil, err
	}

	out := make([]employees.Employee, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toEmployee())
	}
	return out, nil
}

func (r *EmployeesRepo) findOne(ctx context.Context, q url.Values) (employees.Employee, error) {
	var rows []employeeRow
	if err := r.c.get(ctx, "employee", q, &rows); err != nil {
		return employees.Employee{}, err
	}
	if len(rows) == 0 {
		return employees.Employee{}, employees.ErrNotFound
	}
	return rows[0].toEmployee(), nil
}
