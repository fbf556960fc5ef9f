package memory

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	"pet-adoption-store/internal/domain/catalog"
)

type catalogRepo struct {
	mu   sync.RWMutex
	byID map[int64]catalog.Pet
}

func NewCatalogRepo() catalog.Repository {
	return &catalogRepo{
		byID: make(map[int64]catalog.Pet),
	}
}

func (r *catalogRepo) Create(ctx context.Context, p catalog.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID <= 0 {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *catalogRepo) Update(ctx context.Context, p catalog.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return catalog.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *catalogRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return catalog.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *catalogRepo) GetByID(ctx context.Context, id int64) (catalog.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return catalog.Pet{}, catalog.ErrNotFound
	}
	return p, nil
}

func (r *catalogRepo) ListByStatus(ctx context.Context, status catalog.AdoptionStatus) ([]catalog.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Pet, 0)
	for _, p := range r.byID {
		if p.AdoptionStatus == status {
			out = append(out, p)
		}
	}

	// Orden estable por id (solo para consistencia en dev/tests)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *catalogRepo) Search(ctx context.Context, filter catalog.SearchFilter) ([]catalog.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Pet, 0)
	for _, p := range r.byID {
		if matchesPet(p, filter) {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *catalogRepo) UpdateAvailability(ctx context.Context, ids []int64, status catalog.AdoptionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

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

// matchesPet: cada campo del filtro debe matchear (AND); dentro de un campo,
// cualquiera de los valores alcanza (OR), igual que el search del staff CLI.
func matchesPet(p catalog.Pet, filter catalog.SearchFilter) bool {
	for field, values := range filter {
		actual := petFieldValue(p, field)
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

func petFieldValue(p catalog.Pet, field string) string {
	switch field {
	case "petid":
		return strconv.FormatInt(p.ID, 10)
	case "species":
		return p.Species
	case "breed":
		return p.Breed
	case "name":
		return p.Name
	case "age":
		return strconv.Itoa(p.Age)
	case "gender":
		return string(p.Gender)
	case "isfixed":
		return strconv.FormatBool(p.IsFixed)
	case "adoptionfee":
		return strconv.FormatFloat(p.AdoptionFee, 'f', -1, 64)
	case "adoptionstatus":
		return string(p.AdoptionStatus)
	default:
		return ""
	}
}
