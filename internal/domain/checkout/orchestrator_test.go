package checkout

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-store/internal/domain/cart"
	"pet-adoption-store/internal/domain/catalog"
	"pet-adoption-store/internal/domain/orders"
	"pet-adoption-store/internal/domain/payments"
	"pet-adoption-store/internal/domain/session"
	"pet-adoption-store/internal/platform/logger"
)

type mockPayments struct {
	mu        sync.Mutex
	method    payments.Method
	findErr   error
	createErr error

	findCalls int
	created   []payments.Method
}

func (m *mockPayments) FindByCustomer(_ context.Context, _ string) (payments.Method, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findCalls++
	if m.findErr != nil {
		return payments.Method{}, m.findErr
	}
	return m.method, nil
}

func (m *mockPayments) Create(_ context.Context, pm payments.Method) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, pm)
	return nil
}

type mockOrderWriter struct {
	mu      sync.Mutex
	err     error
	batches [][]orders.Order

	// Si no son nil, CreateBatch avisa y espera (para probar el guard).
	started chan struct{}
	release chan struct{}
}

func (m *mockOrderWriter) CreateBatch(_ context.Context, rows []orders.Order) error {
	if m.started != nil {
		m.started <- struct{}{}
		<-m.release
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.batches = append(m.batches, rows)
	return nil
}

type mockAvailability struct {
	mu    sync.Mutex
	err   error
	calls [][]int64
}

func (m *mockAvailability) UpdateAvailability(_ context.Context, ids []int64, _ catalog.AdoptionStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, ids)
	return m.err
}

func loggedInSession(customerID string) *session.Session {
	s := session.New()
	s.SetIdentity("dana@example.com", "Dana", customerID)
	return s
}

func cartWith(customerID string, items ...cart.Item) *cart.Store {
	st := cart.NewStore()
	for _, it := range items {
		st.Add(customerID, it)
	}
	return st
}

func fullPayment() PaymentInput {
	return PaymentInput{
		Cardholder:     "Dana H",
		CardNumber:     "4111 1111 1111 1234",
		CardExpiration: "12/27",
		CVV:            "123",
		BillingAddress: "12 Main St",
	}
}

func TestConfirm_NotLoggedIn_NoCollaboratorCalls(t *testing.T) {
	pay := &mockPayments{}
	ow := &mockOrderWriter{}
	av := &mockAvailability{}
	orch := NewOrchestrator(pay, ow, av, cart.NewStore(), nil)

	_, err := orch.Confirm(context.Background(), session.New(), fullPayment())

	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, pay.findCalls)
	assert.Empty(t, ow.batches)
	assert.Empty(t, av.calls)
}

func TestConfirm_EmptyCart(t *testing.T) {
	pay := &mockPayments{}
	orch := NewOrchestrator(pay, &mockOrderWriter{}, &mockAvailability{}, cart.NewStore(), nil)

	_, err := orch.Confirm(context.Background(), loggedInSession("cust-1"), fullPayment())

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, pay.findCalls, "preconditions must fail before any remote call")
}

func TestConfirm_InvalidTotal(t *testing.T) {
	carts := cartWith("cust-1", cart.Item{ID: "10000001", Name: "milo", Price: 0})
	pay := &mockPayments{}
	orch := NewOrchestrator(pay, &mockOrderWriter{}, &mockAvailability{}, carts, nil)

	_, err := orch.Confirm(context.Background(), loggedInSession("cust-1"), fullPayment())

	require.ErrorIs(t, err, ErrInvalidTotal)
	assert.Zero(t, pay.findCalls)
}

func TestConfirm_ReusesSavedPaymentMethod(t *testing.T) {
	carts := cartWith("cust-1", cart.Item{ID: "10000001", Name: "milo", Price: 100})
	pay := &mockPayments{method: payments.Method{ID: "pm-77", CustomerID: "cust-1"}}
	ow := &mockOrderWriter{}
	orch := NewOrchestrator(pay, ow, &mockAvailability{}, carts, nil)

	// Formulario vacío: con método guardado no hace falta.
	conf, err := orch.Confirm(context.Background(), loggedInSession("cust-1"), PaymentInput{})

	require.NoError(t, err)
	assert.Equal(t, "pm-77", conf.PaymentID)
	assert.Empty(t, pay.created, "must not create a second payment method")
	require.Len(t, ow.batches, 1)
	assert.Equal(t, "pm-77", ow.batches[0][0].PaymentID)
}

func TestConfirm_NewPaymentRequiresAllFields(t *testing.T) {
	carts := cartWith("cust-1", cart.Item{ID: "10000001", Name: "milo", Price: 100})
	pay := &mockPayments{findErr: payments.ErrNotFound}
	ow := &mockOrderWriter{}
	orch := NewOrchestrator(pay, ow, &mockAvailability{}, carts, nil)

	in := fullPayment()
	in.CVV = "" // un campo vacío alcanza para rechazar

	_, err := orch.Confirm(context.Background(), loggedInSession("cust-1"), in)

	require.ErrorIs(t, err, ErrIncompletePayment)
	assert.Empty(t, pay.created)
	assert.Empty(t, ow.batches)
	assert.Len(t, carts.Items("cust-1"), 1, "cart must stay intact")
}

func TestConfirm_CreatesPaymentAndOneOrderPerPet(t *testing.T) {
	carts := cartWith("cust-1",
		cart.Item{ID: "10000001", Name: "milo", Species: "dog", Price: 100},
		cart.Item{ID: "10000002", Name: "luna", Species: "cat", Price: 75},
	)
	pay := &mockPayments{findErr: payments.ErrNotFound}
	ow := &mockOrderWriter{}
	av := &mockAvailability{}
	orch := NewOrchestrator(pay, ow, av, carts, nil)
	orch.now = func() time.Time {
		return time.Date(2024, 6, 15, 17, 42, 3, 0, time.UTC)
	}

	conf, err := orch.Confirm(context.Background(), loggedInSession("cust-1"), fullPayment())

	require.NoError(t, err)
	require.Len(t, pay.created, 1)
	assert.Equal(t, "cust-1", pay.created[0].CustomerID)
	assert.Equal(t, conf.PaymentID, pay.created[0].ID)

	require.Len(t, ow.batches, 1)
	rows := ow.batches[0]
	require.Len(t, rows, 2)
	for _, o := range rows {
		// Cada fila lleva el total del carrito completo, no el fee del pet.
		assert.Equal(t, 175.0, o.Total)
		assert.Equal(t, "cust-1", o.CustomerID)
		assert.Empty(t, o.EmployeeID)
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), o.OrderDate)
	}
	assert.Equal(t, int64(10000001), rows[0].PetID)
	assert.Equal(t, int64(10000002), rows[1].PetID)

	require.Len(t, av.calls, 1)
	assert.Equal(t, []int64{10000001, 10000002}, av.calls[0])

	assert.Empty(t, carts.Items("cust-1"), "cart cleared after confirm")
	assert.Equal(t, 175.0, conf.Total)
	assert.Len(t, conf.OrderIDs, 2)
}

func TestConfirm_InvalidPetIDInCart(t *testing.T) {
	carts := cartWith("cust-1", cart.Item{ID: "not-a-number", Name: "???", Price: 10})
	pay := &mockPayments{method: payments.Method{ID: "pm-1"}}
	ow := &mockOrderWriter{}
	orch := NewOrchestrator(pay, ow, &mockAvailability{}, carts, nil)

	_, err := orch.Confirm(context.Background(), loggedInSession("cust-1"), PaymentInput{})

	require.ErrorIs(t, err, ErrInvalidPetID)
	assert.Empty(t, ow.batches)
	assert.Len(t, carts.Items("cust-1"), 1)
}

func TestConfirm_OrderInsertFailure_LeavesCartIntact(t *testing.T) {
	carts := cartWith("cust-1", cart.Item{ID: "10000001", Name: "milo", Price: 100})
	pay := &mockPayments{method: payments.Method{ID: "pm-1"}}
	ow := &mockOrderWriter{err: errors.New("insert blew up")}
	av := &mockAvailability{}
	orch := NewOrchestrator(pay, ow, av, carts, nil)

	_, err := orch.Confirm(context.Background(), loggedInSession("cust-1"), PaymentInput{})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, av.calls, "availability must not run after failed insert")
	assert.Len(t, carts.Items("cust-1"), 1, "cart must stay intact")
}

func TestConfirm_AvailabilityFailure_StillConfirmsAndLogs(t *testing.T) {
	carts := cartWith("cust-1", cart.Item{ID: "10000001", Name: "milo", Price: 100})
	pay := &mockPayments{method: payments.Method{ID: "pm-1"}}
	ow := &mockOrderWriter{}
	av := &mockAvailability{err: errors.New("remote store down")}

	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Error, Out: &buf})
	orch := NewOrchestrator(pay, ow, av, carts, log)

	conf, err := orch.Confirm(context.Background(), loggedInSession("cust-1"), PaymentInput{})

	require.NoError(t, err, "availability failure must not fail the checkout")
	assert.Len(t, conf.OrderIDs, 1)
	assert.Empty(t, carts.Items("cust-1"), "cart cleared even when availability fails")
	assert.Contains(t, buf.String(), "pet availability update failed after order insert")
}

func TestConfirm_SecondConcurrentConfirmRejected(t *testing.T) {
	carts := cartWith("cust-1", cart.Item{ID: "10000001", Name: "milo", Price: 100})
	pay := &mockPayments{method: payments.Method{ID: "pm-1"}}
	ow := &mockOrderWriter{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	orch := NewOrchestrator(pay, ow, &mockAvailability{}, carts, nil)

	done := make(chan error, 1)
	go func() {
		_, err := orch.Confirm(context.Background(), loggedInSession("cust-1"), PaymentInput{})
		done <- err
	}()

	<-ow.started // el primer confirm está dentro de CreateBatch

	_, err := orch.Confirm(context.Background(), loggedInSession("cust-1"), PaymentInput{})
	require.ErrorIs(t, err, ErrCheckoutInFlight)

	close(ow.release)
	require.NoError(t, <-done)

	// Con el primero terminado, un nuevo confirm vuelve a estar permitido
	// (y falla por carrito vacío, no por el guard).
	_, err = orch.Confirm(context.Background(), loggedInSession("cust-1"), PaymentInput{})
	require.ErrorIs(t, err, ErrEmptyCart)
}
