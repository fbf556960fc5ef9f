package session

import (
	"strings"
	"sync"
)

// Identity es la información del customer logueado.
// Las tres piezas vienen juntas de la respuesta de login; nunca se setean por separado.
type Identity struct {
	Email      string
	Name       string
	CustomerID string
}

func (id Identity) LoggedIn() bool {
	return strings.TrimSpace(id.CustomerID) != ""
}

// Session es el registro en memoria de "quién está usando la app".
// Se reemplaza completa en login y se limpia completa en logout / borrado de cuenta.
type Session struct {
	mu sync.RWMutex
	id Identity
}

func New() *Session {
	return &Session{}
}

// SetIdentity reemplaza los tres campos de forma atómica.
func (s *Session) SetIdentity(email, name, customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = Identity{
		Email:      strings.TrimSpace(email),
		Name:       strings.TrimSpace(name),
		CustomerID: strings.TrimSpace(customerID),
	}
}

// Clear resetea la identidad completa (logout, cuenta borrada).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = Identity{}
}

func (s *Session) Identity() Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.id
}
