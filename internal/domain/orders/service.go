package orders

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-adoption-store/internal/domain/catalog"
	"pet-adoption-store/internal/domain/payments"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrPetNotForSale = errors.New("pet is not available for sale")
)

var orderSearchableFields = map[string]bool{
	"orderid":    true,
	"customerid": true,
	"employeeid": true,
	"petid":      true,
	"orderdate":  true,
}

type Service struct {
	repo     Repository
	pets     catalog.Repository
	payments payments.Repository
	now      func() time.Time
}

func NewService(repo Repository, pets catalog.Repository, pay payments.Repository) *Service {
	return &Service{
		repo:     repo,
		pets:     pets,
		payments: pay,
		now:      time.Now,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Order{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

// Search acepta pares campo/valor estilo CLI (search-orders).
func (s *Service) Search(ctx context.Context, pairs []string) ([]Order, error) {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return nil, ErrInvalidInput
	}

	filter := SearchFilter{}
	for i := 0; i < len(pairs); i += 2 {
		field := strings.ToLower(strings.TrimSpace(pairs[i]))
		if !orderSearchableFields[field] {
			return nil, ErrInvalidInput
		}

		var values []string
		for _, v := range strings.Split(pairs[i+1], ",") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if field == "petid" {
				if _, err := strconv.ParseInt(v, 10, 64); err != nil {
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

// StaffSell es la venta atendida por staff (sell-pet del CLI):
// valida que la mascota esté disponible, crea una orden atribuida al empleado
// con total = adoption fee de esa mascota, y la marca adopted.
// Si el customer tiene método de pago registrado se referencia; si no, la orden
// queda sin paymentid (el flujo de mostrador no captura tarjeta).
func (s *Service) StaffSell(ctx context.Context, employeeID, customerID string, petID int64) (Order, error) {
	employeeID = strings.TrimSpace(employeeID)
	customerID = strings.TrimSpace(customerID)
	if employeeID == "" || customerID == "" || petID <= 0 {
		return Order{}, ErrInvalidInput
	}

	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return Order{}, err
	}
	if p.AdoptionStatus != catalog.StatusUnadopted {
		return Order{}, ErrPetNotForSale
	}

	paymentID := ""
	if m, err := s.payments.FindByCustomer(ctx, customerID); err == nil {
		paymentID = m.ID
	} else if !errors.Is(err, payments.ErrNotFound) {
		return Order{}, err
	}

	o := Order{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		EmployeeID: employeeID,
		PaymentID:  paymentID,
		PetID:      petID,
		OrderDate:  s.now().Truncate(24 * time.Hour),
		Total:      p.AdoptionFee,
	}

	if err := s.repo.CreateBatch(ctx, []Order{o}); err != nil {
		return Order{}, err
	}

	if err := s.pets.UpdateAvailability(ctx, []int64{petID}, catalog.StatusAdopted); err != nil {
		// La orden ya existe; el estado queda desfasado hasta una corrección manual.
		return o, err
	}
	return o, nil
}
