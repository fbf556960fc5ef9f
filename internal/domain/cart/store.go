package cart

import (
	"strings"
	"sync"
)

// Observer recibe el estado del carrito después de cada mutación.
// Se notifica de forma síncrona, dentro de la misma llamada que mutó.
type Observer func(customerID string, items []Item)

// Store mantiene los carritos en memoria, uno por customer.
// Vive lo que vive el proceso; no se persiste (igual que el estado de la app
// original). El composition root lo crea y lo inyecta donde haga falta.
type Store struct {
	mu        sync.Mutex
	byCust    map[string]*Cart
	observers []Observer
}

func NewStore() *Store {
	return &Store{
		byCust: make(map[string]*Cart),
	}
}

// Subscribe registra un observer. No hay unsubscribe: los observers
// viven tanto como el store.
func (s *Store) Subscribe(fn Observer) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) Add(customerID string, it Item) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return
	}

	s.mu.Lock()
	c := s.cart(customerID)
	c.Add(it)
	items := c.Items()
	obs := s.observers
	s.mu.Unlock()

	notify(obs, customerID, items)
}

func (s *Store) Remove(customerID, itemID string) {
	s.mu.Lock()
	c, ok := s.byCust[customerID]
	if !ok {
		s.mu.Unlock()
		return
	}
	c.Remove(itemID)
	items := c.Items()
	obs := s.observers
	s.mu.Unlock()

	notify(obs, customerID, items)
}

func (s *Store) Clear(customerID string) {
	s.mu.Lock()
	c, ok := s.byCust[customerID]
	if !ok {
		s.mu.Unlock()
		return
	}
	c.Clear()
	obs := s.observers
	s.mu.Unlock()

	notify(obs, customerID, nil)
}

func (s *Store) Items(customerID string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byCust[customerID]
	if !ok {
		return []Item{}
	}
	return c.Items()
}

func (s *Store) Total(customerID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byCust[customerID]
	if !ok {
		return 0
	}
	return c.Total()
}

// cart devuelve el carrito del customer, creándolo si no existe.
// Llamar con el lock tomado.
func (s *Store) cart(customerID string) *Cart {
	c, ok := s.byCust[customerID]
	if !ok {
		c = &Cart{}
		s.byCust[customerID] = c
	}
	return c
}

func notify(obs []Observer, customerID string, items []Item) {
	for _, fn := range obs {
		fn(customerID, items)
	}
}
