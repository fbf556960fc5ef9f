package employees

// Role define los roles del staff.
// @Enum admin, employee
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee:
		return Role(s), true
	default:
		return "", false
	}
}

// Employee es una fila de la tabla employee. Solo el staff CLI la toca.
type Employee struct {
	ID     string
	Name   string
	Mobile string
	Email  string
	Role   Role

	// RoutingNumber es el número de cuenta para el depósito de sueldo,
	// 9 dígitos.
	RoutingNumber string

	PasswordHash string
}
