package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-adoption-store/internal/domain/customers"
)

type CustomersRepo struct {
	db *sql.DB
}

func NewCustomersRepo(db *sql.DB) *CustomersRepo {
	return &CustomersRepo{db: db}
}

func (r *CustomersRepo) Create(ctx context.Context, c customers.Customer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customer (customerid, name, email, mobile, address, password)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		c.ID,
		c.Name,
		c.Email,
		c.Mobile,
		c.Address,
		c.PasswordHash,
	)
	return err
}

func (r *CustomersRepo) GetByID(ctx context.Context, id string) (customers.Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT customerid, name, email, mobile, address, password
		FROM customer
		WHERE customerid = $1
	`, id)
	return scanCustomer(row)
}

func (r *CustomersRepo) GetByEmail(ctx context.Context, email string) (customers.Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT customerid, name, email, mobile, address, password
		FROM customer
		WHERE email = $1
	`, email)
	return scanCustomer(row)
}

func (r *CustomersRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customer SET password = $2 WHERE customerid = $1
	`, id, passwordHash)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return customers.ErrNotFound
	}
	return nil
}

func (r *CustomersRepo) DeleteByEmail(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customer WHERE email = $1`, email)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return customers.ErrNotFound
	}
	return nil
}

func (r *CustomersRepo) Search(ctx context.Context, query string) ([]customers.Customer, error) {
	q := "%" + strings.ToLower(query) + "%"

	rows, err := r.db.QueryContext(ctx, `
		SELECT customerid, name, email, mobile, address, password
		FROM customer
		WHERE lower(name) LIKE $1 OR lower(email) LIKE $1
		ORDER BY customerid ASC
	`, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]customers.Customer, 0)
	for rows.Next() {
		var c customers.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Mobile, &c.Address, &c.PasswordHash); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCustomer(row *sql.Row) (customers.Customer, error) {
	var c customers.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Mobile, &c.Address, &c.PasswordHash); err != nil {
		if err == sql.ErrNoRows {
			return customers.Customer{}, customers.ErrNotFound
		}
		return customers.Customer{}, err
	}
	return c, nil
}
