package model

import "fmt"

// Expiration - срок действия карты. Значения не проверяются: month=13 допустим.
type Expiration struct {
	Year  uint32
	Month uint32
}

// Card - разобранная запись карты.
type Card struct {
	Number uint32
	Exp    Expiration
	CVV    uint32
}

// String renders the card with its type name and every field, nested expiration included.
func (c Card) String() string {
	return fmt.Sprintf("Card{Number: %d, Exp: %s, CVV: %d}", c.Number, c.Exp, c.CVV)
}

func (e Expiration) String() string {
	return fmt.Sprintf("Expiration{Year: %d, Month: %d}", e.Year, e.Month)
}
