package catalog

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	byID map[int64]Pet

	lastFilter SearchFilter
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(_ context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(_ context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByStatus(_ context.Context, status AdoptionStatus) ([]Pet, error) {
	var out []Pet
	for _, p := range r.byID {
		if p.AdoptionStatus == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) Search(_ context.Context, filter SearchFilter) ([]Pet, error) {
	r.lastFilter = filter
	return nil, nil
}

func (r *testRepo) UpdateAvailability(_ context.Context, ids []int64, status AdoptionStatus) error {
	for _, id := range ids {
		p, ok := r.byID[id]
		if !ok {
			continue
		}
		p.AdoptionStatus = status
		r.byID[id] = p
	}
	return nil
}

func newTestService(repo *testRepo) *Service {
	svc := NewService(repo)
	next := int64(10000000)
	svc.newID = func() int64 { next++; return next }
	return svc
}

func TestCreate_DefaultsAndValidation(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateInput{
		Name:        "milo",
		Species:     "dog",
		Gender:      "male",
		Age:         3,
		AdoptionFee: 120,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID < 10000000 || p.ID > 99999999 {
		t.Fatalf("expected 8-digit pet id, got %d", p.ID)
	}
	if p.AdoptionStatus != StatusUnadopted {
		t.Fatalf("new pets must start unadopted, got %s", p.AdoptionStatus)
	}

	if _, err := svc.Create(ctx, CreateInput{Species: "dog", Gender: "male"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without name, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Name: "x", Species: "dog", Gender: "dragon"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad gender, got %v", err)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "milo", Species: "dog", Gender: "male", AdoptionFee: 120})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fee := 80.0
	status := "adopted"
	updated, err := svc.Update(ctx, created.ID, UpdateInput{AdoptionFee: &fee, Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.AdoptionFee != 80.0 {
		t.Fatalf("expected fee 80, got %v", updated.AdoptionFee)
	}
	if updated.AdoptionStatus != StatusAdopted {
		t.Fatalf("expected adopted, got %s", updated.AdoptionStatus)
	}
	if updated.Name != "milo" {
		t.Fatal("untouched fields must survive a partial update")
	}

	bad := "on hold"
	if _, err := svc.Update(ctx, created.ID, UpdateInput{Status: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}

	if _, err := svc.Update(ctx, 99999999, UpdateInput{AdoptionFee: &fee}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByStatus_DefaultsToUnadopted(t *testing.T) {
	repo := newTestRepo()
	repo.byID[1] = Pet{ID: 1, AdoptionStatus: StatusUnadopted}
	repo.byID[2] = Pet{ID: 2, AdoptionStatus: StatusAdopted}
	svc := newTestService(repo)

	pets, err := svc.ListByStatus(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pets) != 1 || pets[0].ID != 1 {
		t.Fatalf("expected only the unadopted pet, got %+v", pets)
	}
}

func TestSearch_BuildsFilterFromPairs(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Search(ctx, []string{"species", "cat,dog", "age", "3"}); err != nil {
		t.Fatalf("search: %v", err)
	}

	want := SearchFilter{
		"species": {"cat", "dog"},
		"age":     {"3"},
	}
	if len(repo.lastFilter) != len(want) {
		t.Fatalf("filter mismatch: %+v", repo.lastFilter)
	}
	for field, values := range want {
		got := repo.lastFilter[field]
		if len(got) != len(values) {
			t.Fatalf("field %s: expected %v, got %v", field, values, got)
		}
		for i := range values {
			if got[i] != values[i] {
				t.Fatalf("field %s: expected %v, got %v", field, values, got)
			}
		}
	}
}

func TestSearch_RejectsBadInput(t *testing.T) {
	svc := newTestService(newTestRepo())
	ctx := context.Background()

	cases := [][]string{
		{},                            // vacío
		{"species"},                   // impar
		{"color", "brown"},            // campo no soportado
		{"age", "-1"},                 // negativo
		{"petid", "abc"},              // no numérico
		{"adoptionfee", "not-a-fee"},  // no numérico
		{"species", " , "},            // sin valores útiles
	}
	for _, pairs := range cases {
		if _, err := svc.Search(ctx, pairs); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %v, got %v", pairs, err)
		}
	}
}
