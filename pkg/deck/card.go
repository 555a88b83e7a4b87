package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCardString is an error when a card cannot be parsed from a string
var ErrInvalidCardString = errors.New("invalid card string")

// Card is an individual playing card
// Cards carry no suit, only a value
type Card struct {
	Value int `json:"value"`
}

// face cards
const (
	Ace     = 1
	Jack    = 11
	Queen   = 12
	King    = 13
	HighAce = 14

	MinValue = Ace
	MaxValue = King
)

func (c *Card) String() string {
	switch c.Value {
	case Ace, HighAce:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return strconv.Itoa(c.Value)
	}
}

// IsAce returns true if the card is an ace, regardless of how it is being ranked
func (c *Card) IsAce() bool {
	return c.Value == Ace || c.Value == HighAce
}

// AceHighValue return the value where Ace is considered high instead of low
func (c *Card) AceHighValue() int {
	if c.IsAce() {
		return HighAce
	}

	return c.Value
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

var cardRx = regexp.MustCompile(`(?i)^([0-9]{1,2}|[ajqk])\z`)

// CardFromString returns a Card from the string.
// The string is either a number or one of A, J, Q, K. The value is not range checked
// here, that is the job of Validate().
func CardFromString(s string) (*Card, error) {
	s = strings.TrimSpace(s)
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCardString, s)
	}

	var value int
	switch strings.ToUpper(match[1]) {
	case "A":
		value = Ace
	case "J":
		value = Jack
	case "Q":
		value = Queen
	case "K":
		value = King
	default:
		v, err := strconv.Atoi(match[1])
		if err != nil {
			// should never be hit due to the regexp
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCardString, s, err)
		}

		value = v
	}

	return &Card{Value: value}, nil
}

// CardsFromString will return a slice of cards from a string in the format of 1,3,5,7,9
func CardsFromString(s string) ([]*Card, error) {
	if strings.TrimSpace(s) == "" {
		return []*Card{}, nil
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, cs := range cardStrings {
		card, err := CardFromString(cs)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// ValuesFromString is like CardsFromString, but returns the raw values
func ValuesFromString(s string) ([]int, error) {
	cards, err := CardsFromString(s)
	if err != nil {
		return nil, err
	}

	return Hand(cards).Values(), nil
}

// CardsToString will convert a slice of cards to a string in the format of 1,3,5,7,9
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = strconv.Itoa(card.Value)
	}

	return strings.Join(c, ",")
}
