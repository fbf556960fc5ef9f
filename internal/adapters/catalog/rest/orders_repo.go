package rest

import (
	"context"
	"net/url"
	"time"

	"pet-adoption-store/internal/domain/orders"
)

type OrdersRepo struct {
	c *Client
}

func NewOrdersRepo(c *Client) *OrdersRepo {
	return &OrdersRepo{c: c}
}

type orderRow struct {
	OrderID     string  `json:"orderid"`
	CustomerID  string  `json:"customerid"`
	EmployeeID  *string `json:"employeeid"`
	PaymentID   *string `json:"paymentid"`
	PetID       int64   `json:"petid"`
	OrderDate   string  `json:"orderdate"`
	TotalAmount float64 `json:"totalamount"`
}

func toOrderRow(o orders.Order) orderRow {
	row := orderRow{
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		PetID:       o.PetID,
		OrderDate:   o.OrderDate.Format(time.DateOnly),
		TotalAmount: o.Total,
	}
	if o.EmployeeID != "" {
		row.EmployeeID = &o.EmployeeID
	}
	if o.PaymentID != "" {
		row.PaymentID = &o.PaymentID
	}
	return row
}

func (row orderRow) toOrder() orders.Order {
	o := orders.Order{
		ID:         row.OrderID,
		CustomerID: row.CustomerID,
		PetID:      row.PetID,
		Total:      row.TotalAmount,
	}
	if row.EmployeeID != nil {
		o.EmployeeID = *row.EmployeeID
	}
	if row.PaymentID != nil {
		o.PaymentID = *row.PaymentID
	}
	if t, err := time.Parse(time.DateOnly, row.OrderDate); err == nil {
		o.OrderDate = t
	}
	return o
}

func (r *OrdersRepo) CreateBatch(ctx context.Context, rows []orders.Order) error {
	if len(rows) == 0 {
		return nil
	}

	body := make([]orderRow, 0, len(rows))
	for _, o := range rows {
		body = append(body, toOrderRow(o))
	}
	return r.c.insert(ctx, "orderinfo", body, nil)
}

func (r *OrdersRepo) GetByID(ctx context.Context, id string) (orders.Order, error) {
	q := url.Values{}
	q.Set("orderid", eq(id))

	var rows []orderRow
	if err := r.c.get(ctx, "orderinfo", q, &rows); err != nil {
		return orders.Order{}, err
	}
	if len(rows) == 0 {
		return orders.Order{}, orders.ErrNotFound
	}
	return rows[0].toOrder(), nil
}

func (r *OrdersRepo) ListByCustomer(ctx context.Context, customerID string) ([]orders.Order, error) {
	q := url.Values{}
	q.Set("customerid", eq(customerID))
	q.Set("order", "orderdate.asc,orderid.asc")
	return r.listOrders(ctx, q)
}

func (r *OrdersRepo) Search(ctx context.Context, filter orders.SearchFilter) ([]orders.Order, error) {
	q := url.Values{}
	for field, values := range filter {
		if len(values) == 1 {
			q.Set(field, eq(values[0]))
		} else {
			q.Set(field, in(values))
		}
	}
	q.Set("order", "orderdate.asc,orderid.asc")
	return r.listOrders(ctx, q)
}

func (r *OrdersRepo) listOrders(ctx context.Context, q url.Values) ([]orders.Order, error) {
	var rows []orderRow
	if err := r.c.get(ctx, "orderinfo", q, &rows); err != nil {
		return nil, err
	}

	out := make([]orders.Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toOrder())
	}
	return out, nil
}
