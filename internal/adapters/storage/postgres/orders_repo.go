package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"pet-adoption-store/internal/domain/orders"
)

type OrdersRepo struct {
	db *sql.DB
}

func NewOrdersRepo(db *sql.DB) *OrdersRepo {
	return &OrdersRepo{db: db}
}

// CreateBatch inserta todas las filas dentro de una transacción:
// o entran todas o no entra ninguna.
func (r *OrdersRepo) CreateBatch(ctx context.Context, rows []orders.Order) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, o := range rows {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orderinfo (orderid, customerid, employeeid, paymentid, petid, orderdate, totalamount)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
		`,
			o.ID,
			o.CustomerID,
			toNullString(o.EmployeeID),
			toNullString(o.PaymentID),
			o.PetID,
			o.OrderDate,
			o.Total,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *OrdersRepo) GetByID(ctx context.Context, id string) (orders.Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT orderid, customerid, employeeid, paymentid, petid, orderdate, totalamount
		FROM orderinfo
		WHERE orderid = $1
	`, id)

	o, err := scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return orders.Order{}, orders.ErrNotFound
		}
		return orders.Order{}, err
	}
	return o, nil
}

func (r *OrdersRepo) ListByCustomer(ctx context.Context, customerID string) ([]orders.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT orderid, customerid, employeeid, paymentid, petid, orderdate, totalamount
		FROM orderinfo
		WHERE customerid = $1
		ORDER BY orderdate ASC, orderid ASC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrdersRepo) Search(ctx context.Context, filter orders.SearchFilter) ([]orders.Order, error) {
	where, args := buildOrderWhere(filter)

	rows, err := r.db.QueryContext(ctx, `
		SELECT orderid, customerid, employeeid, paymentid, petid, orderdate, totalamount
		FROM orderinfo
		`+where+`
		ORDER BY orderdate ASC, orderid ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func buildOrderWhere(filter orders.SearchFilter) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}

	fields := make([]string, 0, len(filter))
	for f := range filter {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	conds := make([]string, 0, len(fields))
	args := make([]any, 0)
	for _, f := range fields {
		values := filter[f]
		placeholders := make([]string, 0, len(values))
		for _, v := range values {
			args = append(args, v)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		conds = append(conds, fmt.Sprintf("%s::text IN (%s)", f, strings.Join(placeholders, ",")))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func scanOrder(row rowScanner) (orders.Order, error) {
	var o orders.Order
	var employeeID, paymentID sql.NullString
	err := row.Scan(
		&o.ID,
		&o.CustomerID,
		&employeeID,
		&paymentID,
		&o.PetID,
		&o.OrderDate,
		&o.Total,
	)
	if err != nil {
		return orders.Order{}, err
	}
	o.EmployeeID = employeeID.String
	o.PaymentID = paymentID.String
	return o, nil
}

func collectOrders(rows *sql.Rows) ([]orders.Order, error) {
	out := make([]orders.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// employeeid y paymentid son nullable en orderinfo
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
