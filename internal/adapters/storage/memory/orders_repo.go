package memory

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"pet-adoption-store/internal/domain/orders"
)

type ordersRepo struct {
	mu   sync.RWMutex
	byID map[string]orders.Order
}

func NewOrdersRepo() orders.Repository {
	return &ordersRepo{
		byID: make(map[string]orders.Order),
	}
}

func (r *ordersRepo) CreateBatch(ctx context.Context, rows []orders.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range rows {
		if o.ID == "" {
			return errors.New("order id required")
		}
		if _, exists := r.byID[o.ID]; exists {
			return errors.New("order already exists")
		}
	}
	for _, o := range rows {
		r.byID[o.ID] = o
	}
	return nil
}

func (r *ordersRepo) GetByID(ctx context.Context, id string) (orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return orders.Order{}, orders.ErrNotFound
	}
	return o, nil
}

func (r *ordersRepo) ListByCustomer(ctx context.Context, customerID string) ([]orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]orders.Order, 0)
	for _, o := range r.byID {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ordersRepo) Search(ctx context.Context, filter orders.SearchFilter) ([]orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]orders.Order, 0)
	for _, o := range r.byID {
		if matchesOrder(o, filter) {
			out = append(out, o)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func matchesOrder(o orders.Order, filter orders.SearchFilter) bool {
	for field, values := range filter {
		actual := orderFieldValue(o, field)
		found := false
		for _, v := range values {
			if actual == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func orderFieldValue(o orders.Order, field string) string {
	switch field {
	case "orderid":
		return o.ID
	case "customerid":
		return o.CustomerID
	case "employeeid":
		return o.EmployeeID
	case "petid":
		return strconv.FormatInt(o.PetID, 10)
	case "orderdate":
		return o.OrderDate.Format(time.DateOnly)
	default:
		return ""
	}
}
