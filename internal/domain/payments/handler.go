package payments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoption-store/internal/middleware"
)

func RegisterRoutes(r chi.Router, repo Repository) {
	r.Get("/payment-method", getPaymentMethodHandler(repo))
}

type methodResponse struct {
	PaymentID      string `json:"paymentid"`
	Cardholder     string `json:"cardholder"`
	CardNumber     string `json:"cardnumber"` // enmascarado
	CardExpiration string `json:"cardexpiration"`
	BillingAddress string `json:"billingaddress"`
}

func getPaymentMethodHandler(repo Repository) http.HandlerFunc {
	// La pantalla de pago usa esto para decidir si muestra la tarjeta
	// guardada o el formulario de alta. 404 = todavía no hay método.
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity().LoggedIn() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := repo.FindByCustomer(r.Context(), sess.Identity().CustomerID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "no payment method on file", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, methodResponse{
			PaymentID:      m.ID,
			Cardholder:     m.Cardholder,
			CardNumber:     m.MaskedCardNumber(),
			CardExpiration: m.CardExpiration,
			BillingAddress: m.BillingAddress,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
