package cart

// Item es una mascota seleccionada para adopción.
// ID referencia al petid del catálogo (como string; se convierte a numérico
// recién al armar la orden).
type Item struct {
	ID      string
	Name    string
	Species string
	Price   float64
}

// Cart es la selección en progreso de un shopper.
// Semántica de set por ID, orden de inserción preservado para mostrar.
type Cart struct {
	items []Item
}

// Add inserta el item si no hay otro con el mismo ID; si ya existe no hace nada.
// No es un error: el add es idempotente.
func (c *Cart) Add(it Item) {
	for _, existing := range c.items {
		if existing.ID == it.ID {
			return
		}
	}
	c.items = append(c.items, it)
}

// Remove saca el item con ese ID si está; si no está, no-op.
func (c *Cart) Remove(id string) {
	for i, it := range c.items {
		if it.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear vacía el carrito incondicionalmente.
func (c *Cart) Clear() {
	c.items = nil
}

// Items devuelve una copia en orden de inserción.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Total es la suma exacta de precios; 0 para carrito vacío.
func (c *Cart) Total() float64 {
	var sum float64
	for _, it := range c.items {
		sum += it.Price
	}
	return sum
}
