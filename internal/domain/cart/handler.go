package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pet-adoption-store/internal/domain/catalog"
	"pet-adoption-store/internal/middleware"
)

// RegisterRoutes monta el carrito del shopper. El add valida contra el
// catálogo: el CartItem se arma desde la fila del pet, no desde el body.
func RegisterRoutes(r chi.Router, store *Store, pets catalog.Reader) {
	r.Route("/cart", func(cr chi.Router) {
		cr.Get("/", getCartHandler(store))
		cr.Post("/items", addItemHandler(store, pets))
		cr.Delete("/items/{petID}", removeItemHandler(store))
		cr.Delete("/", clearCartHandler(store))
	})
}

type addItemRequest struct {
	PetID int64 `json:"petid"`
}

type cartItemResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Price   float64 `json:"price"`
}

type cartResponse struct {
	Items []cartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

func getCartHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity().LoggedIn() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		cid := sess.Identity().CustomerID
		writeJSON(w, http.StatusOK, toCartResponse(store.Items(cid), store.Total(cid)))
	}
}

func addItemHandler(store *Store, pets catalog.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity().LoggedIn() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req addItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := pets.GetByID(r.Context(), req.PetID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if p.AdoptionStatus != catalog.StatusUnadopted {
			http.Error(w, "pet is no longer available", http.StatusConflict)
			return
		}

		cid := sess.Identity().CustomerID
		store.Add(cid, Item{
			ID:      strconv.FormatInt(p.ID, 10),
			Name:    p.Name,
			Species: p.Species,
			Price:   p.AdoptionFee,
		})

		writeJSON(w, http.StatusOK, toCartResponse(store.Items(cid), store.Total(cid)))
	}
}

func removeItemHandler(store *Store) http.HandlerFunc {
	// Remove de un id ausente es no-op, igual devuelve 200 con el estado actual.
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity().LoggedIn() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		cid := sess.Identity().CustomerID
		store.Remove(cid, chi.URLParam(r, "petID"))

		writeJSON(w, http.StatusOK, toCartResponse(store.Items(cid), store.Total(cid)))
	}
}

func clearCartHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity().LoggedIn() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		store.Clear(sess.Identity().CustomerID)
		w.WriteHeader(http.StatusNoContent)
	}
}

func toCartResponse(items []Item, total float64) cartResponse {
	out := cartResponse{Items: make([]cartItemResponse, 0, len(items)), Total: total}
	for _, it := range items {
		out.Items = append(out.Items, cartItemResponse{
			ID:      it.ID,
			Name:    it.Name,
			Species: it.Species,
			Price:   it.Price,
		})
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
