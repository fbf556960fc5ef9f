package rest

import (
	"context"
	"net/url"

	"pet-adoption-store/internal/domain/payments"
)

type PaymentsRepo struct {
	c *Client
}

func NewPaymentsRepo(c *Client) *PaymentsRepo {
	return &PaymentsRepo{c: c}
}

type paymentRow struct {
	PaymentID      string `json:"paymentid"`
	CustomerID     string `json:"customerid"`
	CardNumber     string `json:"cardnumber"`
	CardExpiration string `json:"cardexpiration"`
	CVV            string `json:"cvv"`
	Cardholder     string `json:"cardholder"`
	BillingAddress string `json:"billingaddress"`
}

func (r *PaymentsRepo) FindByCustomer(ctx context.Context, customerID string) (payments.Method, error) {
	q := url.Values{}
	q.Set("customerid", eq(customerID))

	var rows []paymentRow
	if err := r.c.get(ctx, "paymentinfo", q, &rows); err != nil {
		return payments.Method{}, err
	}
	if len(rows) == 0 {
		return payments.Method{}, payments.ErrNotFound
	}

	row := rows[0]
	return payments.Method{
		ID:             row.PaymentID,
		CustomerID:     row.CustomerID,
		CardNumber:     row.CardNumber,
		CardExpiration: row.CardExpiration,
		CVV:            row.CVV,
		Cardholder:     row.Cardholder,
		BillingAddress: row.BillingAddress,
	}, nil
}

func (r *PaymentsRepo) Create(ctx context.Context, m payments.Method) error {
	return r.c.insert(ctx, "paymentinfo", []paymentRow{{
		PaymentID:      m.ID,
		CustomerID:     m.CustomerID,
		CardNumber:     m.CardNumber,
		CardExpiration: m.CardExpiration,
		CVV:            m.CVV,
		Cardholder:     m.Cardholder,
		BillingAddress: m.BillingAddress,
	}}, nil)
}
