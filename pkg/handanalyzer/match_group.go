package handanalyzer

import "sort"

// MatchGroup is every card of one value that appears at least twice in a hand
type MatchGroup struct {
	Value int `json:"value"`
	Count int `json:"count"`
}

// MatchGroups are the groups found in a single hand
// No two groups share a value
type MatchGroups []MatchGroup

// TotalCount returns the number of cards covered by the groups
func (m MatchGroups) TotalCount() int {
	total := 0
	for _, g := range m {
		total += g.Count
	}

	return total
}

// ByValue returns a copy of the groups, highest value first
func (m MatchGroups) ByValue() MatchGroups {
	sorted := m.clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value > sorted[j].Value
	})

	return sorted
}

// ByCount returns a copy of the groups, largest group first
// Groups of the same size are ordered by value, highest first
func (m MatchGroups) ByCount() MatchGroups {
	sorted := m.clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}

		return sorted[i].Value > sorted[j].Value
	})

	return sorted
}

// withCount returns the values of the groups that are exactly n cards, highest first
func (m MatchGroups) withCount(n int) []int {
	var values []int
	for _, g := range m.ByValue() {
		if g.Count == n {
			values = append(values, g.Value)
		}
	}

	return values
}

func (m MatchGroups) clone() MatchGroups {
	c := make(MatchGroups, len(m))
	copy(c, m)
	return c
}

// add will record another card of value
// cards must be fed in sorted order so that equal values arrive together
func (m *MatchGroups) add(value int) {
	groups := *m
	if n := len(groups); n > 0 && groups[n-1].Value == value {
		groups[n-1].Count++
		return
	}

	*m = append(groups, MatchGroup{Value: value, Count: 2})
}
