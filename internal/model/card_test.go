package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	c := Card{Number: 1234567, Exp: Expiration{Year: 5, Month: 4}, CVV: 123}
	assert.Equal(t, "Card{Number: 1234567, Exp: Expiration{Year: 5, Month: 4}, CVV: 123}", c.String())
	// %v и Println используют String
	assert.Equal(t, c.String(), fmt.Sprint(c))
}

func TestCard_String_NoRangeChecks(t *testing.T) {
	c := Card{Exp: Expiration{Month: 13}}
	assert.Equal(t, "Card{Number: 0, Exp: Expiration{Year: 0, Month: 13}, CVV: 0}", c.String())
}
