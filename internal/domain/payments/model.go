package payments

import "strings"

// Method es una fila de paymentinfo. A lo sumo una por customer:
// se crea recién en el primer checkout, nunca se edita desde acá.
type Method struct {
	ID         string
	CustomerID string

	CardNumber     string
	CardExpiration string // MM/YY
	CVV            string
	Cardholder     string
	BillingAddress string
}

// MaskedCardNumber devuelve el número como se muestra en pantalla:
// **** **** **** 1234.
func (m Method) MaskedCardNumber() string {
	digits := strings.ReplaceAll(m.CardNumber, " ", "")
	if len(digits) < 4 {
		return ""
	}
	return "**** **** **** " + digits[len(digits)-4:]
}
