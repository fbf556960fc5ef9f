package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"pet-adoption-store/internal/domain/catalog"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

const petColumns = `
	petid, species, breed, name, age, gender,
	generaldescription, adoptionstatus, isfixed, healthinfo, adoptionfee
`

func (r *CatalogRepo) Create(ctx context.Context, p catalog.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet (
			petid, species, breed, name, age, gender,
			generaldescription, adoptionstatus, isfixed, healthinfo, adoptionfee
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		p.ID,
		p.Species,
		p.Breed,
		p.Name,
		p.Age,
		p.Gender,
		p.GeneralDescription,
		p.AdoptionStatus,
		p.IsFixed,
		p.HealthInfo,
		p.AdoptionFee,
	)
	return err
}

func (r *CatalogRepo) Update(ctx context.Context, p catalog.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pet
		SET
			species = $2,
			breed = $3,
			name = $4,
			age = $5,
			gender = $6,
			generaldescription = $7,
			adoptionstatus = $8,
			isfixed = $9,
			healthinfo = $10,
			adoptionfee = $11
		WHERE petid = $1
	`,
		p.ID,
		p.Species,
		p.Breed,
		p.Name,
		p.Age,
		p.Gender,
		p.GeneralDescription,
		p.AdoptionStatus,
		p.IsFixed,
		p.HealthInfo,
		p.AdoptionFee,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pet WHERE petid = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) GetByID(ctx context.Context, id int64) (catalog.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pet
		WHERE petid = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return catalog.Pet{}, catalog.ErrNotFound
		}
		return catalog.Pet{}, err
	}
	return p, nil
}

func (r *CatalogRepo) ListByStatus(ctx context.Context, status catalog.AdoptionStatus) ([]catalog.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pet
		WHERE adoptionstatus = $1
		ORDER BY petid ASC
	`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *CatalogRepo) Search(ctx context.Context, filter catalog.SearchFilter) ([]catalog.Pet, error) {
	where, args := buildPetWhere(filter)

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pet
		`+where+`
		ORDER BY petid ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *CatalogRepo) UpdateAvailability(ctx context.Context, ids []int64, status catalog.AdoptionStatus) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids)+1)
	args = append(args, status)
	for i, id := range ids {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		args = append(args, id)
	}

	_, err := r.db.ExecContext(ctx, `
		UPDATE pet
		SET adoptionstatus = $1
		WHERE petid IN (`+strings.Join(placeholders, ",")+`)
	`, args...)
	return err
}

// buildPetWhere arma el WHERE a partir del filtro ya validado por el service.
// Cada campo es un AND; múltiples valores por campo van como IN (OR).
func buildPetWhere(filter catalog.SearchFilter) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}

	// orden determinístico de campos para que el SQL sea reproducible
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (catalog.Pet, error) {
	var p catalog.Pet
	err := row.Scan(
		&p.ID,
		&p.Species,
		&p.Breed,
		&p.Name,
		&p.Age,
		&p.Gender,
		&p.GeneralDescription,
		&p.AdoptionStatus,
		&p.IsFixed,
		&p.HealthInfo,
		&p.AdoptionFee,
	)
	return p, err
}

func collectPets(rows *sql.Rows) ([]catalog.Pet, error) {
	out := make([]catalog.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
