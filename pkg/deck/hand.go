package deck

import (
	"sort"
)

// Hand represents a collection of cards
type Hand []*Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i].Value < h[j].Value
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// HandFromValues builds an unsorted, unvalidated hand from raw values
func HandFromValues(values []int) Hand {
	h := make(Hand, len(values))
	for i, v := range values {
		h[i] = &Card{Value: v}
	}

	return h
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// LastCard returns the last card in the hand or nil if the cards are empty
func (h Hand) LastCard() *Card {
	n := len(h)
	if n == 0 {
		return nil
	}

	return h[n-1]
}

// Values returns the card values in hand order
func (h Hand) Values() []int {
	values := make([]int, len(h))
	for i, c := range h {
		values[i] = c.Value
	}

	return values
}

// CountOf returns how many cards in the hand have the value
func (h Hand) CountOf(value int) int {
	n := 0
	for _, c := range h {
		if c.Value == value {
			n++
		}
	}

	return n
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a deep clone of the hand
// The cards are copied as well, so the clone can be modified freely
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	for i, c := range h {
		h2[i] = c.Clone()
	}

	return h2
}

// Sorted returns a clone of the hand sorted ascending by value
func (h Hand) Sorted() Hand {
	h2 := h.Clone()
	sort.Stable(h2)
	return h2
}

// AceHigh returns a new hand where every ace is ranked as 14, sorted ascending.
// The receiver is left untouched.
func (h Hand) AceHigh() Hand {
	h2 := make(Hand, len(h))
	for i, c := range h {
		h2[i] = &Card{Value: c.AceHighValue()}
	}

	sort.Stable(h2)
	return h2
}
