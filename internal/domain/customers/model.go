package customers

// Customer es una fila de la tabla customer del store remoto.
// PasswordHash guarda bcrypt, nunca la contraseña en claro.
type Customer struct {
	ID      string
	Name    string
	Email   string
	Mobile  string
	Address string

	PasswordHash string
}
