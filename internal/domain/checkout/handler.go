package checkout

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoption-store/internal/middleware"
)

func RegisterRoutes(r chi.Router, orch *Orchestrator) {
	r.Post("/checkout", confirmHandler(orch))
}

type confirmRequest struct {
	// Campos de tarjeta nueva; opcionales si ya hay método guardado.
	Cardholder     string `json:"cardholder"`
	CardNumber     string `json:"cardnumber"`
	CardExpiration string `json:"cardexpiration"`
	CVV            string `json:"cvv"`
	BillingAddress string `json:"billingaddress"`
}

type confirmResponse struct {
	OrderIDs  []string `json:"orderids"`
	PaymentID string   `json:"paymentid"`
	Total     float64  `json:"totalamount"`
}

func confirmHandler(orch *Orchestrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok {
			http.Error(w, ErrNotLoggedIn.Error(), http.StatusUnauthorized)
			return
		}

		var req confirmRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
		}

		conf, err := orch.Confirm(r.Context(), sess, PaymentInput{
			Cardholder:     req.Cardholder,
			CardNumber:     req.CardNumber,
			CardExpiration: req.CardExpiration,
			CVV:            req.CVV,
			BillingAddress: req.BillingAddress,
		})
		if err != nil {
			// Cada falla produce un único mensaje legible atado al paso que
			// falló; no se exponen códigos internos.
			switch {
			case errors.Is(err, ErrNotLoggedIn):
				http.Error(w, err.Error(), http.StatusUnauthorized)
			case errors.Is(err, ErrEmptyCart),
				errors.Is(err, ErrInvalidTotal),
				errors.Is(err, ErrIncompletePayment),
				errors.Is(err, ErrInvalidPetID):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrCheckoutInFlight):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, "could not complete your purchase, please try again", http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, http.StatusOK, confirmResponse{
			OrderIDs:  conf.OrderIDs,
			PaymentID: conf.PaymentID,
			Total:     conf.Total,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
