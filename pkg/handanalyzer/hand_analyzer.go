package handanalyzer

import (
	"fmt"

	"blindpoker/pkg/deck"
)

// HandAnalyzer can analyze a hand
// It is built once by New() and is read-only afterwards
type HandAnalyzer struct {
	cards          deck.Hand
	groups         MatchGroups
	straightLength int

	hand Category
}

// New will return a new HandAnalyzer instance
// The cards are expected to have passed deck.Validate(). A card layout that no
// valid hand can produce will panic.
func New(cards deck.Hand) *HandAnalyzer {
	// clone to prevent modifying original
	h := &HandAnalyzer{
		cards: cards.Sorted(),
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// analyzeHand will loop through the sorted cards once, tracking the longest run of
// consecutive values and collecting groups of equal values
func (h *HandAnalyzer) analyzeHand() {
	st := straightTracker{}

	var prev *deck.Card
	for _, card := range h.cards {
		st.checkCard(card)

		if prev != nil && card.Value == prev.Value {
			h.groups.add(card.Value)
		}

		prev = card
	}

	h.straightLength = st.longest
}

// calculateHand will determine the category
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if h.straightLength == straightSize {
		h.hand = Straight
		return
	}

	switch len(h.groups) {
	case 0:
		h.hand = HighCard
	case 1:
		switch h.groups[0].Count {
		case 2:
			h.hand = Pair
		case 3:
			h.hand = ThreeOfAKind
		case 4:
			h.hand = FourOfAKind
		default:
			panic(fmt.Sprintf("impossible group of %d cards in hand %s", h.groups[0].Count, h.cards))
		}
	case 2:
		switch h.groups.TotalCount() {
		case 4:
			h.hand = TwoPair
		case 5:
			h.hand = FullHouse
		default:
			panic(fmt.Sprintf("impossible groups covering %d cards in hand %s", h.groups.TotalCount(), h.cards))
		}
	default:
		panic(fmt.Sprintf("impossible number of groups (%d) in hand %s", len(h.groups), h.cards))
	}
}

// GetHand will return the category of the hand
func (h *HandAnalyzer) GetHand() Category {
	return h.hand
}

// GetCards returns a copy of the cards, sorted ascending
func (h *HandAnalyzer) GetCards() deck.Hand {
	return h.cards.Clone()
}

// GetMatchGroups returns a copy of the groups in the order they were found (lowest value first)
func (h *HandAnalyzer) GetMatchGroups() MatchGroups {
	return h.groups.clone()
}

// GetStraightLength returns the longest run of consecutive values
func (h *HandAnalyzer) GetStraightLength() int {
	return h.straightLength
}

// GetFourOfAKind will return the four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if quads := h.groups.withCount(4); len(quads) > 0 {
		return quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the pack and the pair of a full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if h.hand != FullHouse {
		return nil, false
	}

	byCount := h.groups.ByCount()
	return []int{byCount[0].Value, byCount[1].Value}, true
}

// GetThreeOfAKind will return the three of a kind, if possible
// A full house also holds a three of a kind
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if trips := h.groups.withCount(3); len(trips) > 0 {
		return trips[0], true
	}

	return 0, false
}

// GetTwoPair will return both pairs, highest first, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if pairs := h.groups.withCount(2); len(pairs) >= 2 {
		return pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if pairs := h.groups.withCount(2); len(pairs) > 0 {
		return pairs[0], true
	}

	return 0, false
}

// GetStraight will return the top card of the straight, if possible
// Aces are read high, so the wheel (A,2,3,4,5) returns 14
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.hand != Straight {
		return 0, false
	}

	return h.cards.AceHigh().LastCard().Value, true
}

// GetHighCard will return the card values, highest first, with aces high
func (h *HandAnalyzer) GetHighCard() ([]int, bool) {
	high := h.cards.AceHigh()
	values := make([]int, len(high))
	for i, card := range high {
		values[len(high)-1-i] = card.Value
	}

	return values, true
}

// Describe returns a human-readable description, i.e., "Full house, 9s over As"
func (h *HandAnalyzer) Describe() string {
	switch h.hand {
	case HighCard:
		c, _ := h.GetHighCard()
		return fmt.Sprintf("%s, %s", h.hand, valueName(c[0]))
	case Pair:
		p, _ := h.GetPair()
		return fmt.Sprintf("Pair of %s", pluralName(p))
	case TwoPair:
		tp, _ := h.GetTwoPair()
		return fmt.Sprintf("%s, %s and %s", h.hand, pluralName(tp[0]), pluralName(tp[1]))
	case ThreeOfAKind:
		t, _ := h.GetThreeOfAKind()
		return fmt.Sprintf("%s, %s", h.hand, pluralName(t))
	case Straight:
		s, _ := h.GetStraight()
		return fmt.Sprintf("%s, %s high", h.hand, valueName(s))
	case FullHouse:
		fh, _ := h.GetFullHouse()
		return fmt.Sprintf("%s, %s over %s", h.hand, pluralName(fh[0]), pluralName(fh[1]))
	case FourOfAKind:
		q, _ := h.GetFourOfAKind()
		return fmt.Sprintf("%s, %s", h.hand, pluralName(q))
	}

	panic(fmt.Sprintf("unknown category: %d", h.hand))
}

func valueName(value int) string {
	c := deck.Card{Value: value}
	return c.String()
}

func pluralName(value int) string {
	return valueName(value) + "s"
}
