package customers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pet-adoption-store/internal/domain/cart"
	"pet-adoption-store/internal/domain/session"
	"pet-adoption-store/internal/middleware"
)

// RegisterRoutes monta signup/login/perfil. El handler de login es el único
// lugar que emite sesiones: email, name y customerID se setean juntos, siempre.
func RegisterRoutes(r chi.Router, svc *Service, sessions *session.Store, carts *cart.Store) {
	r.Post("/signup", signUpHandler(svc))
	r.Post("/login", loginHandler(svc, sessions))
	r.Post("/logout", logoutHandler(sessions))
	r.Post("/password", changePasswordHandler(svc))
	r.Delete("/me", deleteAccountHandler(svc, sessions, carts))
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type customerResponse struct {
	ID      string `json:"customerid"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Mobile  string `json:"mobile"`
	Address string `json:"address"`
}

func signUpHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.SignUp(r.Context(), SignUpInput{
			Name:     req.Name,
			Email:    req.Email,
			Mobile:   req.Mobile,
			Address:  req.Address,
			Password: req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "name, email and password are required", http.StatusBadRequest)
			case errors.Is(err, ErrEmailInUse):
				http.Error(w, "an account with this email already exists", http.StatusConflict)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toCustomerResponse(c))
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token      string `json:"token"`
	CustomerID string `json:"customerid"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

func loginHandler(svc *Service, sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "email and password are required", http.StatusBadRequest)
			case errors.Is(err, ErrBadCredentials):
				http.Error(w, "invalid email or password", http.StatusUnauthorized)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		token, _ := sessions.Issue(c.Email, c.Name, c.ID)

		writeJSON(w, http.StatusOK, loginResponse{
			Token:      token,
			CustomerID: c.ID,
			Name:       c.Name,
			Email:      c.Email,
		})
	}
}

func logoutHandler(sessions *session.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.GetToken(r.Context())
		if token != "" {
			sessions.Revoke(token)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type changePasswordRequest struct {
	Current string `json:"current_password"`
	New     string `json:"new_password"`
}

func changePasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity().LoggedIn() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req changePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		err := svc.ChangePassword(r.Context(), sess.Identity().Email, req.Current, req.New)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "new password is required", http.StatusBadRequest)
			case errors.Is(err, ErrPasswordMismatch):
				http.Error(w, "current password does not match", http.StatusForbidden)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteAccountHandler(svc *Service, sessions *session.Store, carts *cart.Store) http.HandlerFunc {
	// Borra la cuenta y limpia sesión + carrito, en ese orden.
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSession(r.Context())
		if !ok || !sess.Identity().LoggedIn() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := sess.Identity()
		if err := svc.DeleteAccount(r.Context(), id.Email); err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "account not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		carts.Clear(id.CustomerID)
		sessions.RevokeByCustomer(id.CustomerID)
		sess.Clear()

		w.WriteHeader(http.StatusNoContent)
	}
}

func toCustomerResponse(c Customer) customerResponse {
	return customerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Mobile:  c.Mobile,
		Address: c.Address,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
