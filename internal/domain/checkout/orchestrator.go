package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"pet-adoption-store/internal/domain/cart"
	"pet-adoption-store/internal/domain/catalog"
	"pet-adoption-store/internal/domain/orders"
	"pet-adoption-store/internal/domain/payments"
	"pet-adoption-store/internal/domain/session"
	"pet-adoption-store/internal/platform/logger"
)

// OrderWriter es lo único que el checkout necesita del módulo de órdenes.
type OrderWriter interface {
	CreateBatch(ctx context.Context, rows []orders.Order) error
}

// PetAvailability marca las mascotas compradas como adopted.
type PetAvailability interface {
	UpdateAvailability(ctx context.Context, ids []int64, status catalog.AdoptionStatus) error
}

// PaymentInput son los campos del formulario de alta de tarjeta.
// Solo se usan cuando el customer todavía no tiene método de pago.
type PaymentInput struct {
	Cardholder     string
	CardNumber     string
	CardExpiration string
	CVV            string
	BillingAddress string
}

func (in PaymentInput) complete() bool {
	return strings.TrimSpace(in.Cardholder) != "" &&
		strings.TrimSpace(in.CardNumber) != "" &&
		strings.TrimSpace(in.CardExpiration) != "" &&
		strings.TrimSpace(in.CVV) != "" &&
		strings.TrimSpace(in.BillingAddress) != ""
}

// Confirmation es el resultado de un checkout exitoso.
type Confirmation struct {
	OrderIDs  []string
	PaymentID string
	Total     float64
}

// Orchestrator ejecuta la secuencia de compra: precondiciones, resolución de
// método de pago, inserción de órdenes, actualización de disponibilidad,
// limpieza del carrito.
//
// Las dos escrituras finales (órdenes y disponibilidad) son llamadas separadas,
// no una transacción: si la segunda falla, se loguea y el checkout igual se
// reporta exitoso. Es una asimetría deliberada del diseño original que se
// preserva acá; ver DESIGN.md.
type Orchestrator struct {
	payments payments.Repository
	orders   OrderWriter
	pets     PetAvailability
	carts    *cart.Store
	log      logger.Logger
	now      func() time.Time

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewOrchestrator(pay payments.Repository, ow OrderWriter, pets PetAvailability, carts *cart.Store, log logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.Nop{}
	}
	return &Orchestrator{
		payments: pay,
		orders:   ow,
		pets:     pets,
		carts:    carts,
		log:      log,
		now:      time.Now,
		inFlight: make(map[string]bool),
	}
}

// Confirm convierte el carrito de la sesión en órdenes confirmadas.
// Solo un confirm en vuelo por customer; el segundo recibe ErrCheckoutInFlight
// en vez de encolarse (guard explícito en el orchestrator, no solo en la UI).
func (o *Orchestrator) Confirm(ctx context.Context, sess *session.Session, in PaymentInput) (Confirmation, error) {
	// --- ValidatingPreconditions ---
	id := sess.Identity()
	if !id.LoggedIn() {
		return Confirmation{}, ErrNotLoggedIn
	}
	customerID := id.CustomerID

	if !o.acquire(customerID) {
		return Confirmation{}, ErrCheckoutInFlight
	}
	defer o.release(customerID)

	items := o.carts.Items(customerID)
	if len(items) == 0 {
		return Confirmation{}, ErrEmptyCart
	}

	total := o.carts.Total(customerID)
	if total <= 0 {
		return Confirmation{}, ErrInvalidTotal
	}

	log := o.log.With(map[string]any{"customer_id": customerID})

	// --- ResolvingPayment ---
	log.Debug("checkout step", map[string]any{"status": StatusResolvingPayment.String()})
	paymentID, err := o.resolvePayment(ctx, customerID, in)
	if err != nil {
		return Confirmation{}, err
	}

	// --- CommittingOrders ---
	// Una orden por mascota. Nota: cada fila lleva el total del carrito
	// completo, no el precio individual; es el comportamiento observado del
	// sistema original y los tests lo fijan así (ver DESIGN.md).
	log.Debug("checkout step", map[string]any{"status": StatusCommittingOrders.String()})
	orderDate := dateOnly(o.now())

	rows := make([]orders.Order, 0, len(items))
	petIDs := make([]int64, 0, len(items))
	for _, it := range items {
		petID, err := strconv.ParseInt(strings.TrimSpace(it.ID), 10, 64)
		if err != nil {
			return Confirmation{}, fmt.Errorf("%w: %q", ErrInvalidPetID, it.ID)
		}
		rows = append(rows, orders.Order{
			ID:         uuid.NewString(),
			CustomerID: customerID,
			EmployeeID: "", // self-service: sin atribución de staff
			PaymentID:  paymentID,
			PetID:      petID,
			OrderDate:  orderDate,
			Total:      total,
		})
		petIDs = append(petIDs, petID)
	}

	if err := o.orders.CreateBatch(ctx, rows); err != nil {
		// Aborta con el carrito intacto; el método de pago recién creado
		// puede quedar huérfano y se tolera.
		return Confirmation{}, fmt.Errorf("order insert failed: %w", err)
	}

	// --- UpdatingAvailability ---
	// Si esto falla NO se revierte nada: se loguea y el flujo sigue a
	// Confirmed igual (falla conocida del diseño original, preservada).
	log.Debug("checkout step", map[string]any{"status": StatusUpdatingAvailability.String()})
	if err := o.pets.UpdateAvailability(ctx, petIDs, catalog.StatusAdopted); err != nil {
		log.Error("pet availability update failed after order insert", map[string]any{
			"pet_ids": petIDs,
			"error":   err.Error(),
		})
	}

	// --- Cleared / Confirmed ---
	o.carts.Clear(customerID)
	log.Info("checkout confirmed", map[string]any{
		"status": StatusConfirmed.String(),
		"orders": len(rows),
		"total":  total,
	})

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return Confirmation{OrderIDs: ids, PaymentID: paymentID, Total: total}, nil
}

// resolvePayment reusa el método existente del customer o, si no hay, exige el
// formulario completo e inserta uno nuevo. El alta es lazy a propósito: los
// datos de tarjeta se piden recién en la primera compra, no en el signup.
func (o *Orchestrator) resolvePayment(ctx context.Context, customerID string, in PaymentInput) (string, error) {
	m, err := o.payments.FindByCustomer(ctx, customerID)
	if err == nil {
		return m.ID, nil
	}
	if !errors.Is(err, payments.ErrNotFound) {
		return "", fmt.Errorf("payment lookup failed: %w", err)
	}

	if !in.complete() {
		return "", ErrIncompletePayment
	}

	created := payments.Method{
		ID:             uuid.NewString(),
		CustomerID:     customerID,
		CardNumber:     strings.TrimSpace(in.CardNumber),
		CardExpiration: strings.TrimSpace(in.CardExpiration),
		CVV:            strings.TrimSpace(in.CVV),
		Cardholder:     strings.TrimSpace(in.Cardholder),
		BillingAddress: strings.TrimSpace(in.BillingAddress),
	}
	if err := o.payments.Create(ctx, created); err != nil {
		return "", fmt.Errorf("payment save failed: %w", err)
	}
	return created.ID, nil
}

func (o *Orchestrator) acquire(customerID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.inFlight[customerID] {
		return false
	}
	o.inFlight[customerID] = true
	return true
}

func (o *Orchestrator) release(customerID string) {
	o.mu.Lock()
	delete(o.inFlight, customerID)
	o.mu.Unlock()
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
