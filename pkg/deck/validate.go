package deck

import (
	"errors"
	"fmt"
)

// HandSize is the number of cards in a valid hand
const HandSize = 5

// MaxOfValue is the most cards of a single value a hand may hold
const MaxOfValue = 4

// validation errors
var (
	ErrInvalidCardCount = errors.New("a hand must have exactly five cards")
	ErrInvalidCardValue = errors.New("card value must be between 1 and 13")
	ErrTooManyOfValue   = errors.New("a hand cannot hold more than four cards of one value")
)

// Validate checks that the values make a legal hand.
// On success it returns a new hand sorted ascending. values is never modified.
func Validate(values []int) (Hand, error) {
	if len(values) != HandSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCardCount, len(values))
	}

	for _, v := range values {
		if v < MinValue || v > MaxValue {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidCardValue, v)
		}
	}

	hand := HandFromValues(values)
	for _, v := range values {
		if n := hand.CountOf(v); n > MaxOfValue {
			return nil, fmt.Errorf("%w: %d appears %d times", ErrTooManyOfValue, v, n)
		}
	}

	return hand.Sorted(), nil
}
