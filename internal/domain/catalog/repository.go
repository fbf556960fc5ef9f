package catalog

import "context"

// Reader es la parte de solo lectura del catálogo (browse del storefront).
// La implementa también el adapter REST del catálogo remoto.
type Reader interface {
	ListByStatus(ctx context.Context, status AdoptionStatus) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
}

// SearchFilter es un filtro campo=valores (valores múltiples = OR).
// Los campos soportados los valida el service.
type SearchFilter map[string][]string

type Repository interface {
	Reader

	Create(ctx context.Context, p Pet) error
	Update(ctx context.Context, p Pet) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter SearchFilter) ([]Pet, error)

	// UpdateAvailability cambia el estado de adopción de un lote de mascotas.
	UpdateAvailability(ctx context.Context, ids []int64, status AdoptionStatus) error
}
