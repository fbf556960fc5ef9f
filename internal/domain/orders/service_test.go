package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-adoption-store/internal/domain/catalog"
	"pet-adoption-store/internal/domain/payments"
)

type testRepo struct {
	byID       map[string]Order
	lastFilter SearchFilter
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Order{}}
}

func (r *testRepo) CreateBatch(_ context.Context, rows []Order) error {
	for _, o := range rows {
		r.byID[o.ID] = o
	}
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (r *testRepo) ListByCustomer(_ context.Context, customerID string) ([]Order, error) {
	var out []Order
	for _, o := range r.byID {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *testRepo) Search(_ context.Context, filter SearchFilter) ([]Order, error) {
	r.lastFilter = filter
	return nil, nil
}

// catálogo de prueba con una sola mascota
type testCatalog struct {
	pet     catalog.Pet
	updated []int64
}

func (c *testCatalog) GetByID(_ context.Context, id int64) (catalog.Pet, error) {
	if id != c.pet.ID {
		return catalog.Pet{}, catalog.ErrNotFound
	}
	return c.pet, nil
}

func (c *testCatalog) ListByStatus(_ context.Context, _ catalog.AdoptionStatus) ([]catalog.Pet, error) {
	return nil, nil
}
func (c *testCatalog) Create(_ context.Context, _ catalog.Pet) error        { return nil }
func (c *testCatalog) Update(_ context.Context, _ catalog.Pet) error        { return nil }
func (c *testCatalog) Delete(_ context.Context, _ int64) error              { return nil }
func (c *testCatalog) Search(_ context.Context, _ catalog.SearchFilter) ([]catalog.Pet, error) {
	return nil, nil
}

func (c *testCatalog) UpdateAvailability(_ context.Context, ids []int64, status catalog.AdoptionStatus) error {
	c.updated = append(c.updated, ids...)
	if c.pet.ID == ids[0] {
		c.pet.AdoptionStatus = status
	}
	return nil
}

type testPayments struct {
	method payments.Method
	err    error
}

func (p *testPayments) FindByCustomer(_ context.Context, _ string) (payments.Method, error) {
	if p.err != nil {
		return payments.Method{}, p.err
	}
	return p.method, nil
}

func (p *testPayments) Create(_ context.Context, _ payments.Method) error { return nil }

func TestStaffSell(t *testing.T) {
	repo := newTestRepo()
	cat := &testCatalog{pet: catalog.Pet{ID: 10000001, Name: "milo", AdoptionFee: 120, AdoptionStatus: catalog.StatusUnadopted}}
	pay := &testPayments{err: payments.ErrNotFound}

	svc := NewService(repo, cat, pay)
	svc.now = func() time.Time { return time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC) }

	o, err := svc.StaffSell(context.Background(), "emp-1", "cust-1", 10000001)
	if err != nil {
		t.Fatalf("staff sell: %v", err)
	}
	if o.Total != 120 {
		t.Fatalf("expected total = adoption fee 120, got %v", o.Total)
	}
	if o.EmployeeID != "emp-1" {
		t.Fatalf("expected sale attributed to emp-1, got %q", o.EmployeeID)
	}
	if o.PaymentID != "" {
		t.Fatal("counter sale without saved card must have empty paymentid")
	}
	if cat.pet.AdoptionStatus != catalog.StatusAdopted {
		t.Fatal("pet must be marked adopted after the sale")
	}
	if _, err := repo.GetByID(context.Background(), o.ID); err != nil {
		t.Fatalf("order must be persisted: %v", err)
	}
}

func TestStaffSell_UsesSavedPaymentMethod(t *testing.T) {
	repo := newTestRepo()
	cat := &testCatalog{pet: catalog.Pet{ID: 10000001, AdoptionFee: 50, AdoptionStatus: catalog.StatusUnadopted}}
	pay := &testPayments{method: payments.Method{ID: "pm-9"}}

	svc := NewService(repo, cat, pay)

	o, err := svc.StaffSell(context.Background(), "emp-1", "cust-1", 10000001)
	if err != nil {
		t.Fatalf("staff sell: %v", err)
	}
	if o.PaymentID != "pm-9" {
		t.Fatalf("expected saved payment method referenced, got %q", o.PaymentID)
	}
}

func TestStaffSell_Rejections(t *testing.T) {
	cat := &testCatalog{pet: catalog.Pet{ID: 10000001, AdoptionStatus: catalog.StatusAdopted}}
	svc := NewService(newTestRepo(), cat, &testPayments{err: payments.ErrNotFound})
	ctx := context.Background()

	if _, err := svc.StaffSell(ctx, "emp-1", "cust-1", 10000001); !errors.Is(err, ErrPetNotForSale) {
		t.Fatalf("expected ErrPetNotForSale for adopted pet, got %v", err)
	}
	if _, err := svc.StaffSell(ctx, "emp-1", "cust-1", 99999999); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected catalog.ErrNotFound for unknown pet, got %v", err)
	}
	if _, err := svc.StaffSell(ctx, "", "cust-1", 10000001); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without employee, got %v", err)
	}
	if _, err := svc.StaffSell(ctx, "emp-1", "cust-1", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for pet id 0, got %v", err)
	}
}

func TestOrderSearch_ValidatesFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &testCatalog{}, &testPayments{err: payments.ErrNotFound})
	ctx := context.Background()

	if _, err := svc.Search(ctx, []string{"petid", "10000001,10000002", "customerid", "cust-1"}); err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(repo.lastFilter["petid"]) != 2 {
		t.Fatalf("expected comma values split, got %+v", repo.lastFilter)
	}

	if _, err := svc.Search(ctx, []string{"totalamount", "50"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unsupported field, got %v", err)
	}
	if _, err := svc.Search(ctx, []string{"petid", "abc"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-numeric petid, got %v", err)
	}
	if _, err := svc.Search(ctx, []string{"petid"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for odd pairs, got %v", err)
	}
}
