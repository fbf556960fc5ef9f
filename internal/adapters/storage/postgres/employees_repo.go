package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-adoption-store/internal/domain/employees"
)

type EmployeesRepo struct {
	db *sql.DB
}

func NewEmployeesRepo(db *sql.DB) *EmployeesRepo {
	return &EmployeesRepo{db: db}
}

func (r *EmployeesRepo) Create(ctx context.Context, e employees.Employee) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO employee (employeeid, name, mobile, email, password, role, routingnumber)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		e.ID,
		e.Name,
		e.Mobile,
		e.Email,
		e.PasswordHash,
		e.Role,
		e.RoutingNumber,
	)
	return err
}

func (r *EmployeesRepo) Update(ctx context.Context, e employees.Employee) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE employee
		SET name = $2, mobile = $3, email = $4, password = $5, role = $6, routingnumber = $7
		WHERE employeeid = $1
	`,
		e.ID,
		e.Name,
		e.Mobile,
		e.Email,
		e.PasswordHash,
		e.Role,
		e.RoutingNumber,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return employees.ErrNotFound
	}
	return nil
}

func (r *EmployeesRepo) GetByID(ctx context.Context, id string) (employees.Employee, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT employeeid, name, mobile, email, password, role, routingnumber
		FROM employee
		WHERE employeeid = $1
	`, id)
	return scanEmployee(row)
}

func (r *EmployeesRepo) GetByEmail(ctx context.Context, email string) (employees.Employee, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT employeeid, name, mobile, email, password, role, routingnumber
		FROM employee
		WHERE email = $1
	`, email)
	return scanEmployee(row)
}

func (r *EmployeesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employee WHERE employeeid = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return employees.ErrNotFound
	}
	return nil
}

func (r *EmployeesRepo) Search(ctx context.Context, query string) ([]employees.Employee, error) {
	q := "%" + strings.ToLower(query) + "%"

	rows, err := r.db.QueryContext(ctx, `
		SELECT employeeid, name, mobile, email, password, role, routingnumber
		FROM employee
		WHERE lower(name) LIKE $1 OR lower(email) LIKE $1
		ORDER BY employeeid ASC
	`, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]employees.Employee, 0)
	for rows.Next() {
		var e employees.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Mobile, &e.Email, &e.PasswordHash, &e.Role, &e.RoutingNumber); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEmployee(row *sql.Row) (employees.Employee, error) {
	var e employees.Employee
	if err := row.Scan(&e.ID, &e.Name, &e.Mobile, &e.Email, &e.PasswordHash, &e.Role, &e.RoutingNumber); err != nil {
		if err == sql.ErrNoRows {
			return employees.Employee{}, employees.ErrNotFound
		}
		return employees.Employee{}, err
	}
	return e, nil
}
