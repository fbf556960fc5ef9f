package checkout

import "errors"

// Errores de precondición: se reportan al usuario tal cual, sin tocar estado
// y sin emitir ninguna llamada al catálogo remoto.
var (
	ErrNotLoggedIn       = errors.New("please log in again before purchasing")
	ErrEmptyCart         = errors.New("cart is empty, nothing to purchase")
	ErrInvalidTotal      = errors.New("total amount is invalid")
	ErrIncompletePayment = errors.New("please fill out all payment fields before confirming")
	ErrInvalidPetID      = errors.New("cart contains an invalid pet id")

	// ErrCheckoutInFlight rechaza un confirm concurrente para el mismo customer.
	ErrCheckoutInFlight = errors.New("a checkout is already in progress")
)
