package solver

import (
	"fmt"

	"blindpoker/pkg/deck"
	"blindpoker/pkg/handanalyzer"
)

type tieBreaker func(a, b *handanalyzer.HandAnalyzer) Outcome

// BreakTie decides between two hands that share category
func BreakTie(category handanalyzer.Category, a, b *handanalyzer.HandAnalyzer) Outcome {
	breakTie := tieBreakerFor(category)
	if a.GetHand() != category || b.GetHand() != category {
		panic(fmt.Sprintf("BreakTie(%s) called with %s and %s", category, a.GetHand(), b.GetHand()))
	}

	return breakTie(a, b)
}

func tieBreakerFor(category handanalyzer.Category) tieBreaker {
	switch category {
	case handanalyzer.HighCard, handanalyzer.Straight:
		return compareAceHigh
	case handanalyzer.Pair, handanalyzer.TwoPair, handanalyzer.ThreeOfAKind, handanalyzer.FourOfAKind:
		return compareMatchGroups
	case handanalyzer.FullHouse:
		return compareFullHouses
	}

	panic(fmt.Sprintf("unknown category: %d", category))
}

// compareAceHigh walks both hands with aces read as 14
// An ace-low wheel (A,2,3,4,5) is read as A high as well
func compareAceHigh(a, b *handanalyzer.HandAnalyzer) Outcome {
	return compareKickers(a.GetCards().AceHigh(), b.GetCards().AceHigh())
}

func compareMatchGroups(a, b *handanalyzer.HandAnalyzer) Outcome {
	return compareGroups(a.GetMatchGroups().ByValue(), b.GetMatchGroups().ByValue())
}

func compareFullHouses(a, b *handanalyzer.HandAnalyzer) Outcome {
	return comparePacks(a.GetMatchGroups().ByCount(), b.GetMatchGroups().ByCount())
}

// compareKickers walks both ascending hands from the top card down
// The first unequal pair decides
func compareKickers(a, b deck.Hand) Outcome {
	if len(a) != len(b) {
		panic(fmt.Sprintf("cannot compare kickers of %d and %d cards", len(a), len(b)))
	}

	for i := len(a) - 1; i >= 0; i-- {
		if o := compareValues(a[i].Value, b[i].Value); o != Tie {
			return o
		}
	}

	return Tie
}

// compareGroups compares groups pairwise, highest value first
func compareGroups(a, b handanalyzer.MatchGroups) Outcome {
	if len(a) != len(b) {
		panic(fmt.Sprintf("cannot compare %d groups to %d groups", len(a), len(b)))
	}

	for i := range a {
		if o := compareValues(a[i].Value, b[i].Value); o != Tie {
			return o
		}
	}

	return Tie
}

// comparePacks compares only the three-card group of a full house
func comparePacks(a, b handanalyzer.MatchGroups) Outcome {
	return compareValues(a[0].Value, b[0].Value)
}
