package handanalyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchGroups_add(t *testing.T) {
	var m MatchGroups
	m.add(3)
	m.add(3)
	m.add(8)

	assert.Equal(t, MatchGroups{{Value: 3, Count: 3}, {Value: 8, Count: 2}}, m)
	assert.Equal(t, 5, m.TotalCount())
}

func TestMatchGroups_ByValue(t *testing.T) {
	m := MatchGroups{{Value: 1, Count: 3}, {Value: 10, Count: 2}}
	assert.Equal(t, MatchGroups{{Value: 10, Count: 2}, {Value: 1, Count: 3}}, m.ByValue())
	assert.Equal(t, 1, m[0].Value, "original order is kept")
}

func TestMatchGroups_ByCount(t *testing.T) {
	m := MatchGroups{{Value: 1, Count: 3}, {Value: 10, Count: 2}}
	assert.Equal(t, MatchGroups{{Value: 1, Count: 3}, {Value: 10, Count: 2}}, m.ByCount())

	m = MatchGroups{{Value: 3, Count: 2}, {Value: 7, Count: 2}}
	assert.Equal(t, MatchGroups{{Value: 7, Count: 2}, {Value: 3, Count: 2}}, m.ByCount())
}
