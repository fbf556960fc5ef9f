package rest

import (
	"context"
	"net/url"
	"strconv"

	"pet-adoption-store/internal/domain/catalog"
)

type CatalogRepo struct {
	c *Client
}

func NewCatalogRepo(c *Client) *CatalogRepo {
	return &CatalogRepo{c: c}
}

// petRow es la fila tal cual vive en la tabla pet del store remoto.
type petRow struct {
	PetID              int64   `json:"petid"`
	Species            string  `json:"species"`
	Breed              string  `json:"breed"`
	Name               string  `json:"name"`
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	GeneralDescription string  `json:"generaldescription"`
	AdoptionStatus     string  `json:"adoptionstatus"`
	IsFixed            bool    `json:"isfixed"`
	HealthInfo         string  `json:"healthinfo"`
	AdoptionFee        float64 `json:"adoptionfee"`
}

func toPetRow(p catalog.Pet) petRow {
	return petRow{
		PetID:              p.ID,
		Species:            p.Species,
		Breed:              p.Breed,
		Name:               p.Name,
		Age:                p.Age,
		Gender:             string(p.Gender),
		GeneralDescription: p.GeneralDescription,
		AdoptionStatus:     string(p.AdoptionStatus),
		IsFixed:            p.IsFixed,
		HealthInfo:         p.HealthInfo,
		AdoptionFee:        p.AdoptionFee,
	}
}

func (row petRow) toPet() catalog.Pet {
	return catalog.Pet{
		ID:                 row.PetID,
		Species:            row.Species,
		Breed:              row.Breed,
		Name:               row.Name,
		Age:                row.Age,
		Gender:             catalog.Gender(row.Gender),
		GeneralDescription: row.GeneralDescription,
		AdoptionStatus:     catalog.AdoptionStatus(row.AdoptionStatus),
		IsFixed:            row.IsFixed,
		HealthInfo:         row.HealthInfo,
		AdoptionFee:        row.AdoptionFee,
	}
}

func (r *CatalogRepo) Create(ctx context.Context, p catalog.Pet) error {
	return r.c.insert(ctx, "pet", []petRow{toPetRow(p)}, nil)
}

func (r *CatalogRepo) Update(ctx context.Context, p catalog.Pet) error {
	q := url.Values{}
	q.Set("petid", eq(strconv.FormatInt(p.ID, 10)))
	return r.c.update(ctx, "pet", q, toPetRow(p))
}

func (r *CatalogRepo) Delete(ctx context.Context, id int64) error {
	q := url.Values{}
	q.Set("petid", eq(strconv.FormatInt(id, 10)))
	return r.c.delete(ctx, "pet", q)
}

func (r *CatalogRepo) GetByID(ctx context.Context, id int64) (catalog.Pet, error) {
	q := url.Values{}
	q.Set("petid", eq(strconv.FormatInt(id, 10)))

	var rows []petRow
	if err := r.c.get(ctx, "pet", q, &rows); err != nil {
		return catalog.Pet{}, err
	}
	if len(rows) == 0 {
		return catalog.Pet{}, catalog.ErrNotFound
	}
	return rows[0].toPet(), nil
}

func (r *CatalogRepo) ListByStatus(ctx context.Context, status catalog.AdoptionStatus) ([]catalog.Pet, error) {
	q := url.Values{}
	q.Set("adoptionstatus", eq(string(status)))
	q.Set("order", "petid.asc")
	return r.listPets(ctx, q)
}

func (r *CatalogRepo) Search(ctx context.Context, filter catalog.SearchFilter) ([]catalog.Pet, error) {
	q := url.Values{}
	for field, values := range filter {
		if len(values) == 1 {
			q.Set(field, eq(values[0]))
		} else {
			q.Set(field, in(values))
		}
	}
	q.Set("order", "petid.asc")
	return r.listPets(ctx, q)
}

func (r *CatalogRepo) UpdateAvailability(ctx context.Context, ids []int64, status catalog.AdoptionStatus) error {
	if len(ids) == 0 {
		return nil
	}

	values := make([]string, 0, len(ids))
	for _, id := range ids {
		values = append(values, strconv.FormatInt(id, 10))
	}

	q := url.Values{}
	q.Set("petid", in(values))
	return r.c.update(ctx, "pet", q, map[string]string{"adoptionstatus": string(status)})
}

func (r *CatalogRepo) listPets(ctx context.Context, q url.Values) ([]catalog.Pet, error) {
	var rows []petRow
	if err := r.c.get(ctx, "pet", q, &rows); err != nil {
		return nil, err
	}

	out := make([]catalog.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toPet())
	}
	return out, nil
}
