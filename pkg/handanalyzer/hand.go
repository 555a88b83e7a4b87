package handanalyzer

import "fmt"

// Category is the kind of poker hand, i.e., full house
// A higher category always beats a lower one
type Category int

// Constants for category
const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	FullHouse
	FourOfAKind
)

// Categories lists every category from lowest to highest
var Categories = []Category{HighCard, Pair, TwoPair, ThreeOfAKind, Straight, FullHouse, FourOfAKind}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// MarshalText renders the category by name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
