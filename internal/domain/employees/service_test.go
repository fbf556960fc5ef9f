package employees

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type testRepo struct {
	byID map[string]Employee
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Employee{}}
}

func (r *testRepo) Create(_ context.Context, e Employee) error {
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) Update(_ context.Context, e Employee) error {
	if _, ok := r.byID[e.ID]; !ok {
		return ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id string) (Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return Employee{}, ErrNotFound
	}
	return e, nil
}

func (r *testRepo) GetByEmail(_ context.Context, email string) (Employee, error) {
	for _, e := range r.byID {
		if e.Email == email {
			return e, nil
		}
	}
	return Employee{}, ErrNotFound
}

func (r *testRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) Search(_ context.Context, q string) ([]Employee, error) {
	var out []Employee
	for _, e := range r.byID {
		if strings.Contains(e.Name, q) || strings.Contains(e.Email, q) {
			out = append(out, e)
		}
	}
	return out, nil
}

func validAdd() AddInput {
	return AddInput{
		Email:         "sam@store.com",
		Name:          "Sam",
		Password:      "pw",
		Role:          "employee",
		RoutingNumber: "123456789",
	}
}

func TestAddEmployee(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	e, err := svc.Add(ctx, validAdd())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if e.ID == "" {
		t.Fatal("expected generated employee id")
	}
	if e.Role != RoleEmployee {
		t.Fatalf("expected role employee, got %s", e.Role)
	}
	if e.PasswordHash == "pw" || e.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
}

func TestAddEmployee_Validation(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	bad := validAdd()
	bad.Email = "not-an-email"
	if _, err := svc.Add(ctx, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad email, got %v", err)
	}

	bad = validAdd()
	bad.Role = "owner"
	if _, err := svc.Add(ctx, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}

	bad = validAdd()
	bad.RoutingNumber = "12345"
	if _, err := svc.Add(ctx, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short routing number, got %v", err)
	}

	bad = validAdd()
	bad.RoutingNumber = "12345678a"
	if _, err := svc.Add(ctx, bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-digit routing number, got %v", err)
	}
}

func TestStaffLogin(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	in := validAdd()
	in.Role = "admin"
	created, err := svc.Add(ctx, in)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	sess, err := svc.Login(ctx, "Sam@Store.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.EmployeeID != created.ID {
		t.Fatalf("expected employee %s, got %s", created.ID, sess.EmployeeID)
	}
	if sess.Role != RoleAdmin {
		t.Fatalf("expected admin role in session, got %s", sess.Role)
	}

	if _, err := svc.Login(ctx, "sam@store.com", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@store.com", "pw"); !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for unknown email, got %v", err)
	}
}

func TestUpdateEmployee_Partial(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	created, err := svc.Add(ctx, validAdd())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	role := "admin"
	updated, err := svc.Update(ctx, created.ID, UpdateInput{Role: &role})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != RoleAdmin {
		t.Fatalf("expected promotion to admin, got %s", updated.Role)
	}
	if updated.Name != created.Name {
		t.Fatal("untouched fields must survive a partial update")
	}

	badRouting := "99"
	if _, err := svc.Update(ctx, created.ID, UpdateInput{RoutingNumber: &badRouting}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad routing number, got %v", err)
	}

	if _, err := svc.Update(ctx, "missing", UpdateInput{Role: &role}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveEmployee(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	created, err := svc.Add(ctx, validAdd())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.Remove(ctx, created.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.Remove(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound removing twice, got %v", err)
	}
}
