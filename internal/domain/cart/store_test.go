package cart

import (
	"math/rand"
	"testing"
)

func TestStore_Add_DeduplicatesByID(t *testing.T) {
	s := NewStore()

	s.Add("cust-1", Item{ID: "7", Name: "Milo", Species: "dog", Price: 20})
	s.Add("cust-1", Item{ID: "7", Name: "Milo otra vez", Species: "dog", Price: 999})
	s.Add("cust-1", Item{ID: "9", Name: "Nube", Species: "cat", Price: 30})

	items := s.Items("cust-1")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	// el segundo add con ID repetido no toca el item original
	if items[0].Name != "Milo" || items[0].Price != 20 {
		t.Fatalf("expected duplicate add to be a no-op, got %+v", items[0])
	}
}

func TestStore_Remove_AbsentIsNoop(t *testing.T) {
	s := NewStore()
	s.Add("cust-1", Item{ID: "7", Price: 20})

	s.Remove("cust-1", "no-such-id")
	s.Remove("cust-2", "7") // otro customer, no debe tocar nada

	if len(s.Items("cust-1")) != 1 {
		t.Fatalf("expected cart untouched by absent removes")
	}
}

func TestStore_InsertionOrderPreserved(t *testing.T) {
	s := NewStore()
	ids := []string{"3", "1", "4", "1", "5", "9", "2", "6"}
	for _, id := range ids {
		s.Add("cust-1", Item{ID: id})
	}
	s.Remove("cust-1", "4")

	want := []string{"3", "1", "5", "9", "2", "6"}
	items := s.Items("cust-1")
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("expected order %v, got item %d = %s", want, i, items[i].ID)
		}
	}
}

func TestStore_Total(t *testing.T) {
	s := NewStore()

	if got := s.Total("cust-1"); got != 0 {
		t.Fatalf("expected empty cart total 0, got %v", got)
	}

	s.Add("cust-1", Item{ID: "7", Price: 20})
	s.Add("cust-1", Item{ID: "9", Price: 30.50})

	if got := s.Total("cust-1"); got != 50.50 {
		t.Fatalf("expected total 50.50, got %v", got)
	}

	s.Clear("cust-1")
	if got := s.Total("cust-1"); got != 0 {
		t.Fatalf("expected total 0 after clear, got %v", got)
	}
}

// Propiedad: tras cualquier secuencia de add/remove, el carrito contiene
// exactamente un item por cada ID agregado y no removido después, y el total
// coincide con la suma de precios de los sobrevivientes.
func TestStore_AddRemoveSequences_SetSemantics(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	ids := []string{"1", "2", "3", "4", "5"}

	for seq := 0; seq < 100; seq++ {
		s := NewStore()
		alive := map[string]bool{}

		for op := 0; op < 30; op++ {
			id := ids[rng.Intn(len(ids))]
			if rng.Intn(2) == 0 {
				s.Add("c", Item{ID: id, Price: 10})
				alive[id] = true
			} else {
				s.Remove("c", id)
				delete(alive, id)
			}
		}

		items := s.Items("c")
		if len(items) != len(alive) {
			t.Fatalf("seq %d: expected %d items, got %d", seq, len(alive), len(items))
		}
		seen := map[string]bool{}
		for _, it := range items {
			if seen[it.ID] {
				t.Fatalf("seq %d: duplicate id %s in cart", seq, it.ID)
			}
			seen[it.ID] = true
			if !alive[it.ID] {
				t.Fatalf("seq %d: unexpected id %s in cart", seq, it.ID)
			}
		}
		if got, want := s.Total("c"), float64(len(alive))*10; got != want {
			t.Fatalf("seq %d: expected total %v, got %v", seq, want, got)
		}
	}
}

func TestStore_ObserversNotifiedSynchronously(t *testing.T) {
	s := NewStore()

	var calls int
	var last []Item
	s.Subscribe(func(customerID string, items []Item) {
		calls++
		last = items
	})

	s.Add("cust-1", Item{ID: "7", Price: 20})
	if calls != 1 || len(last) != 1 {
		t.Fatalf("expected 1 sync notification with 1 item, got calls=%d items=%d", calls, len(last))
	}

	s.Remove("cust-1", "7")
	if calls != 2 || len(last) != 0 {
		t.Fatalf("expected notification after remove, got calls=%d items=%d", calls, len(last))
	}

	s.Clear("cust-1")
	if calls != 3 {
		t.Fatalf("expected notification after clear, got calls=%d", calls)
	}
}
