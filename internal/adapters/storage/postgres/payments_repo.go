package postgres

import (
	"context"
	"database/sql"

	"pet-adoption-store/internal/domain/payments"
)

type PaymentsRepo struct {
	db *sql.DB
}

func NewPaymentsRepo(db *sql.DB) *PaymentsRepo {
	return &PaymentsRepo{db: db}
}

func (r *PaymentsRepo) FindByCustomer(ctx context.Context, customerID string) (payments.Method, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT paymentid, customerid, cardnumber, cardexpiration, cvv, cardholder, billingaddress
		FROM paymentinfo
		WHERE customerid = $1
	`, customerID)

	var m payments.Method
	if err := row.Scan(
		&m.ID,
		&m.CustomerID,
		&m.CardNumber,
		&m.CardExpiration,
		&m.CVV,
		&m.Cardholder,
		&m.BillingAddress,
	); err != nil {
		if err == sql.ErrNoRows {
			return payments.Method{}, payments.ErrNotFound
		}
		return payments.Method{}, err
	}
	return m, nil
}

func (r *PaymentsRepo) Create(ctx context.Context, m payments.Method) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO paymentinfo (paymentid, customerid, cardnumber, cardexpiration, cvv, cardholder, billingaddress)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		m.ID,
		m.CustomerID,
		m.CardNumber,
		m.CardExpiration,
		m.CVV,
		m.Cardholder,
		m.BillingAddress,
	)
	return err
}
