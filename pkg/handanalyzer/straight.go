package handanalyzer

import (
	"blindpoker/pkg/deck"
)

// the number of consecutive values that make a straight
const straightSize = deck.HandSize

// used to keep track of the straight progress
type straightTracker struct {
	prev    *deck.Card
	run     int
	longest int
}

// checkCard extends the current run if card is exactly one above the previous card.
// Any other card, including one of equal value, starts a new run.
func (s *straightTracker) checkCard(card *deck.Card) {
	if s.prev != nil && card.Value == s.prev.Value+1 {
		s.run++
	} else {
		s.run = 1
	}

	if s.run > s.longest {
		s.longest = s.run
	}

	s.prev = card
}
