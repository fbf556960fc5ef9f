package session

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Store emite tokens y guarda las sesiones activas en memoria.
// No se persiste: un restart del server invalida todas las sesiones,
// igual que cerrar la app en el diseño original.
type Store struct {
	mu      sync.RWMutex
	byToken map[string]*Session
}

func NewStore() *Store {
	return &Store{
		byToken: make(map[string]*Session),
	}
}

// Issue crea una sesión nueva con la identidad dada y devuelve su token.
func (st *Store) Issue(email, name, customerID string) (string, *Session) {
	s := New()
	s.SetIdentity(email, name, customerID)

	token := uuid.NewString()

	st.mu.Lock()
	st.byToken[token] = s
	st.mu.Unlock()

	return token, s
}

func (st *Store) Get(token string) (*Session, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, false
	}

	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.byToken[token]
	return s, ok
}

// Revoke limpia la sesión y la saca del store.
func (st *Store) Revoke(token string) {
	st.mu.Lock()
	s, ok := st.byToken[token]
	delete(st.byToken, token)
	st.mu.Unlock()

	if ok {
		s.Clear()
	}
}

// RevokeByCustomer invalida todas las sesiones de un customer
// (se usa al borrar la cuenta).
func (st *Store) RevokeByCustomer(customerID string) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	for token, s := range st.byToken {
		if s.Identity().CustomerID == customerID {
			s.Clear()
			delete(st.byToken, token)
		}
	}
}
