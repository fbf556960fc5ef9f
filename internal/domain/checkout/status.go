package checkout

// Status son los estados del flujo de confirmación de compra.
// El flujo es estrictamente secuencial; cualquier falla de validación o de la
// escritura de órdenes vuelve a Idle con el carrito intacto. Una falla en
// UpdatingAvailability NO revierte: el flujo avanza igual a Confirmed
// (comportamiento observado del sistema original, ver DESIGN.md).
type Status string

const (
	StatusIdle                    Status = "IDLE"
	StatusValidatingPreconditions Status = "VALIDATING_PRECONDITIONS"
	StatusResolvingPayment        Status = "RESOLVING_PAYMENT"
	StatusCommittingOrders        Status = "COMMITTING_ORDERS"
	StatusUpdatingAvailability    Status = "UPDATING_AVAILABILITY"
	StatusConfirmed               Status = "CONFIRMED"
)

func (s Status) String() string {
	return string(s)
}
