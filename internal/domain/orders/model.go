package orders

import "time"

// Order es una fila de orderinfo. Inmutable una vez creada.
// Una orden por mascota comprada: un checkout con N mascotas inserta N filas.
type Order struct {
	ID         string
	CustomerID string
	EmployeeID string // vacío en compras self-service; seteado en ventas de staff
	PaymentID  string // vacío en ventas de staff sin método de pago registrado
	PetID      int64
	OrderDate  time.Time // precisión de día
	Total      float64
}
