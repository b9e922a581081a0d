// Package cardinfo parses raw card strings and resolves cards by holder name.
package cardinfo

import (
	"fmt"
	"strconv"
	"strings"

	"cardlookup/internal/model"
)

// ExpectedFields - число токенов в строке карты: номер, месяц, год, CVV.
const ExpectedFields = 4

// ParseNumbers splits raw on single spaces and parses every token as a base-10 uint32.
// Tokens are not trimmed: consecutive spaces yield an empty token that fails to parse.
func ParseNumbers(raw string) ([]uint32, error) {
	tokens := strings.Split(raw, " ")
	numbers := make([]uint32, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			cause := fmt.Errorf("%q could not be parsed as uint32: %w", tok, err)
			return nil, Wrap(cause, "Failed to parse input as numbers. Input: %s", raw)
		}
		numbers = append(numbers, uint32(n))
	}
	return numbers, nil
}

// ParseCard parses raw into a Card. A token count other than ExpectedFields is user-facing.
func ParseCard(raw string) (model.Card, error) {
	numbers, err := ParseNumbers(raw)
	if err != nil {
		return model.Card{}, err
	}
	if len(numbers) != ExpectedFields {
		return model.Card{}, InvalidInput("Incorrect number of elements parsed. Expected %d but got %d", ExpectedFields, len(numbers))
	}

	// разбираем с конца: cvv, год, месяц, номер
	pop := func() uint32 {
		last := numbers[len(numbers)-1]
		numbers = numbers[:len(numbers)-1]
		return last
	}
	cvv := pop()
	year := pop()
	month := pop()
	number := pop()

	return model.Card{
		Number: number,
		Exp:    model.Expiration{Year: year, Month: month},
		CVV:    cvv,
	}, nil
}
