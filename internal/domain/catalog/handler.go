package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el browse del storefront (solo lectura).
// El reader puede ser el repo local o el adapter REST del catálogo remoto.
func RegisterRoutes(r chi.Router, reader Reader) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(reader))
		pr.Get("/{petID}", getPetHandler(reader))
	})
}

type petResponse struct {
	ID                 int64   `json:"petid"`
	Name               string  `json:"name"`
	Species            string  `json:"species"`
	Breed              string  `json:"breed"`
	Age                int     `json:"age"`
	Gender             string  `json:"gender"`
	GeneralDescription string  `json:"generaldescription"`
	HealthInfo         string  `json:"healthinfo"`
	IsFixed            bool    `json:"isfixed"`
	AdoptionFee        float64 `json:"adoptionfee"`
	AdoptionStatus     string  `json:"adoptionstatus"`
}

func listPetsHandler(reader Reader) http.HandlerFunc {
	// Por default lista las mascotas disponibles (unadopted).
	return func(w http.ResponseWriter, r *http.Request) {
		status := StatusUnadopted
		if q := strings.TrimSpace(r.URL.Query().Get("status")); q != "" {
			st, ok := ParseAdoptionStatus(strings.ToLower(q))
			if !ok {
				http.Error(w, "status must be unadopted or adopted", http.StatusBadRequest)
				return
			}
			status = st
		}

		pets, err := reader.ListByStatus(r.Context(), status)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(pets))
		for _, p := range pets {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(reader Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
		if err != nil {
			http.Error(w, "petID must be numeric", http.StatusBadRequest)
			return
		}

		p, err := reader.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Species:            p.Species,
		Breed:              p.Breed,
		Age:                p.Age,
		Gender:             string(p.Gender),
		GeneralDescription: p.GeneralDescription,
		HealthInfo:         p.HealthInfo,
		IsFixed:            p.IsFixed,
		AdoptionFee:        p.AdoptionFee,
		AdoptionStatus:     string(p.AdoptionStatus),
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
