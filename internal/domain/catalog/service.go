package catalog

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Campos buscables desde el staff CLI (search-pets).
var searchableFields = map[string]bool{
	"petid":          true,
	"species":        true,
	"breed":          true,
	"name":           true,
	"age":            true,
	"gender":         true,
	"isfixed":        true,
	"adoptionfee":    true,
	"adoptionstatus": true,
}

type Service struct {
	repo  Repository
	newID func() int64
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		// petid numérico de 8 dígitos, como el resto de los datos de la tabla
		newID: func() int64 { return 10000000 + rand.Int63n(90000000) },
	}
}

type CreateInput struct {
	Name               string
	Species            string
	Breed              string
	Age                int
	Gender             string
	GeneralDescription string
	HealthInfo         string
	IsFixed            bool
	AdoptionFee        float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Age < 0 || in.AdoptionFee < 0 {
		return Pet{}, ErrInvalidInput
	}
	gender := Gender(strings.ToLower(strings.TrimSpace(in.Gender)))
	if gender != GenderMale && gender != GenderFemale {
		return Pet{}, ErrInvalidInput
	}

	p := Pet{
		ID:                 s.newID(),
		Name:               strings.TrimSpace(in.Name),
		Species:            strings.ToLower(strings.TrimSpace(in.Species)),
		Breed:              strings.ToLower(strings.TrimSpace(in.Breed)),
		Age:                in.Age,
		Gender:             gender,
		GeneralDescription: strings.TrimSpace(in.GeneralDescription),
		HealthInfo:         strings.TrimSpace(in.HealthInfo),
		IsFixed:            in.IsFixed,
		AdoptionFee:        in.AdoptionFee,
		AdoptionStatus:     StatusUnadopted,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByStatus(ctx context.Context, status AdoptionStatus) ([]Pet, error) {
	if status == "" {
		status = StatusUnadopted
	}
	return s.repo.ListByStatus(ctx, status)
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	Name        *string
	Breed       *string
	Age         *int
	AdoptionFee *float64
	HealthInfo  *string
	Description *string
	Status      *string
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Breed != nil {
		p.Breed = strings.ToLower(strings.TrimSpace(*in.Breed))
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.Age = *in.Age
	}
	if in.AdoptionFee != nil {
		if *in.AdoptionFee < 0 {
			return Pet{}, ErrInvalidInput
		}
		p.AdoptionFee = *in.AdoptionFee
	}
	if in.HealthInfo != nil {
		p.HealthInfo = strings.TrimSpace(*in.HealthInfo)
	}
	if in.Description != nil {
		p.GeneralDescription = strings.TrimSpace(*in.Description)
	}
	if in.Status != nil {
		st, ok := ParseAdoptionStatus(strings.ToLower(strings.TrimSpace(*in.Status)))
		if !ok {
			return Pet{}, ErrInvalidInput
		}
		p.AdoptionStatus = st
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Search arma un SearchFilter desde pares campo/valor estilo CLI:
// ["species", "cat,dog", "age", "3"]. Campos no soportados => ErrInvalidInput.
func (s *Service) Search(ctx context.Context, pairs []string) ([]Pet, error) {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return nil, ErrInvalidInput
	}

	filter := SearchFilter{}
	for i := 0; i < len(pairs); i += 2 {
		field := strings.ToLower(strings.TrimSpace(pairs[i]))
		if !searchableFields[field] {
			return nil, ErrInvalidInput
		}

		var values []string
		for _, v := range strings.Split(pairs[i+1], ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			// petid y age deben ser enteros no negativos
			if field == "petid" || field == "age" {
				n, err := strconv.Atoi(v)
				if err != nil || n < 0 {
					return nil, ErrInvalidInput
				}
			}
			if field == "adoptionfee" {
				f, err := strconv.ParseFloat(v, 64)
				if err != nil || f < 0 {
					return nil, ErrInvalidInput
				}
			}
			values = append(values, v)
		}
		if len(values) == 0 {
			return nil, ErrInvalidInput
		}
		filter[field] = values
	}

	return s.repo.Search(ctx, filter)
}
