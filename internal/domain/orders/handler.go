package orders

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-adoption-store/internal/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me/orders", listMyOrdersHandler(svc))
}

type orderResponse struct {
	ID         string  `json:"orderid"`
	CustomerID string  `json:"customerid"`
	EmployeeID string  `json:"employeeid,omitempty"`
	PaymentID  string  `json:"paymentid,omitempty"`
	PetID      int64   `json:"petid"`
	OrderDate  string  `json:"orderdate"` // YYYY-MM-DD
	Total      float64 `json:"totalamount"`
}

func listMyOrdersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity().LoggedIn() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByCustomer(r.Context(), sess.Identity().CustomerID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]orderResponse, 0, len(items))
		for _, o := range items {
			out = append(out, toOrderResponse(o))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toOrderResponse(o Order) orderResponse {
	return orderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		EmployeeID: o.EmployeeID,
		PaymentID:  o.PaymentID,
		PetID:      o.PetID,
		OrderDate:  o.OrderDate.Format(time.DateOnly),
		Total:      o.Total,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
