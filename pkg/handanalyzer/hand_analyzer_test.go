package handanalyzer

import (
	"testing"

	"blindpoker/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func analyze(t *testing.T, s string) *HandAnalyzer {
	t.Helper()

	cards, err := deck.CardsFromString(s)
	if err != nil {
		t.Fatalf("could not parse %s: %v", s, err)
	}

	return New(cards)
}

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	h := analyze(t, "9,1,1,1,1")
	r, ok := h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, 1, r)
	_, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	_, ok = h.GetPair()
	assert.False(t, ok)

	h = analyze(t, "4,4,5,4,4")
	r, ok = h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, 4, r)

	h = analyze(t, "9,4,5,4,4")
	r, ok = h.GetFourOfAKind()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	h := analyze(t, "1,1,9,9,9")
	r, ok := h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{9, 1}, r)

	h = analyze(t, "10,10,1,1,1")
	r, ok = h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 10}, r)

	h = analyze(t, "3,3,3,4,5")
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)

	h = analyze(t, "3,3,4,4,5")
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetHighCard(t *testing.T) {
	h := analyze(t, "1,2,5,8,3")
	r, ok := h.GetHighCard()
	assert.Equal(t, []int{14, 8, 5, 3, 2}, r)
	assert.True(t, ok)
}

func TestHandAnalyzer_GetPair(t *testing.T) {
	h := analyze(t, "2,5,2,5,6")
	r, ok := h.GetPair()
	assert.True(t, ok)
	assert.Equal(t, 5, r)

	h = analyze(t, "2,3,4,5,7")
	r, ok = h.GetPair()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetTrips(t *testing.T) {
	h := analyze(t, "2,5,5,5,6")
	r, ok := h.GetThreeOfAKind()
	assert.True(t, ok)
	assert.Equal(t, 5, r)

	h = analyze(t, "2,3,4,4,2")
	r, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	h := analyze(t, "5,5,6,6,3")
	r, ok := h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, []int{6, 5}, r)

	h = analyze(t, "2,2,3,4,5")
	r, ok = h.GetTwoPair()
	assert.False(t, ok)
	assert.Nil(t, r)
}

// nolint:dupl
func TestHandAnalyzer_GetStraight(t *testing.T) {
	h := analyze(t, "2,3,4,5,6")
	r, ok := h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 6, r)
	assert.Equal(t, 5, h.GetStraightLength())

	h = analyze(t, "5,4,3,2,1")
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 14, r)

	h = analyze(t, "9,10,11,12,13")
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, 13, r)

	// aces only run low when building a straight
	h = analyze(t, "10,11,12,13,1")
	r, ok = h.GetStraight()
	assert.False(t, ok)
	assert.Equal(t, 0, r)
	assert.Equal(t, 4, h.GetStraightLength())
}

func TestHandAnalyzer_GetStraightLength(t *testing.T) {
	assert.Equal(t, 1, analyze(t, "1,3,5,7,9").GetStraightLength())
	assert.Equal(t, 3, analyze(t, "1,2,3,7,9").GetStraightLength())
	assert.Equal(t, 3, analyze(t, "1,2,2,3,4").GetStraightLength(), "an equal value is not a step")
	assert.Equal(t, 1, analyze(t, "7,7,7,7,1").GetStraightLength())
}

func TestHandAnalyzer_GetHand(t *testing.T) {
	h := analyze(t, "2,2,2,2,3")
	assert.Equal(t, FourOfAKind, h.GetHand())
	assert.Equal(t, "Four of a kind", h.GetHand().String())

	h = analyze(t, "2,2,2,3,3")
	assert.Equal(t, FullHouse, h.GetHand())
	assert.Equal(t, "Full house", h.GetHand().String())

	h = analyze(t, "1,2,3,4,5")
	assert.Equal(t, Straight, h.GetHand())
	assert.Equal(t, "Straight", h.GetHand().String())

	h = analyze(t, "1,3,7,7,7")
	assert.Equal(t, ThreeOfAKind, h.GetHand())
	assert.Equal(t, "Three of a kind", h.GetHand().String())

	h = analyze(t, "1,3,3,7,7")
	assert.Equal(t, TwoPair, h.GetHand())
	assert.Equal(t, "Two pair", h.GetHand().String())

	h = analyze(t, "1,3,5,7,7")
	assert.Equal(t, Pair, h.GetHand())
	assert.Equal(t, "Pair", h.GetHand().String())

	h = analyze(t, "1,3,5,7,9")
	assert.Equal(t, HighCard, h.GetHand())
	assert.Equal(t, "High card", h.GetHand().String())
}

func TestHandAnalyzer_GetMatchGroups(t *testing.T) {
	a := assert.New(t)

	a.Empty(analyze(t, "1,3,5,7,9").GetMatchGroups())
	a.Equal(MatchGroups{{Value: 1, Count: 2}, {Value: 9, Count: 3}}, analyze(t, "9,1,9,1,9").GetMatchGroups())
	a.Equal(MatchGroups{{Value: 2, Count: 4}}, analyze(t, "5,2,2,2,2").GetMatchGroups())
	a.Equal(MatchGroups{{Value: 3, Count: 2}, {Value: 7, Count: 2}}, analyze(t, "7,3,1,3,7").GetMatchGroups())
}

func TestHandAnalyzer_doesNotModifyInput(t *testing.T) {
	cards, _ := deck.CardsFromString("9,1,7,1,3")
	h := New(cards)
	assert.Equal(t, "9,1,7,1,3", deck.CardsToString(cards))
	assert.Equal(t, "1,1,3,7,9", h.GetCards().String())

	// the returned cards are a copy
	h.GetCards()[0].Value = 13
	assert.Equal(t, "1,1,3,7,9", h.GetCards().String())
}

func TestHandAnalyzer_impossibleHands(t *testing.T) {
	assert.PanicsWithValue(t, "impossible group of 5 cards in hand 7,7,7,7,7", func() {
		analyze(t, "7,7,7,7,7")
	})

	assert.Panics(t, func() {
		analyze(t, "2,2,3,3,4,4")
	})

	assert.Panics(t, func() {
		analyze(t, "2,2,3,3,3,3")
	})
}

func TestHandAnalyzer_Describe(t *testing.T) {
	a := assert.New(t)

	a.Equal("High card, A", analyze(t, "1,3,5,7,9").Describe())
	a.Equal("High card, K", analyze(t, "2,3,5,7,13").Describe())
	a.Equal("Pair of 7s", analyze(t, "1,3,5,7,7").Describe())
	a.Equal("Two pair, 7s and 3s", analyze(t, "1,3,3,7,7").Describe())
	a.Equal("Three of a kind, 7s", analyze(t, "1,3,7,7,7").Describe())
	a.Equal("Straight, A high", analyze(t, "1,2,3,4,5").Describe())
	a.Equal("Straight, 7 high", analyze(t, "3,4,5,6,7").Describe())
	a.Equal("Full house, 9s over As", analyze(t, "1,1,9,9,9").Describe())
	a.Equal("Four of a kind, Qs", analyze(t, "12,12,12,12,9").Describe())
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "Pair", Pair.String())
	assert.Panics(t, func() {
		_ = Category(99).String()
	})
}

func TestCategory_order(t *testing.T) {
	for i, c := range Categories {
		assert.Equal(t, Category(i), c)
	}

	assert.Len(t, Categories, 7)
}
