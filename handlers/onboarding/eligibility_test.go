package onboarding

import (
	"testing"

	"clubkeeper/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func state(name string, members, required int) ClubState {
	return ClubState{
		Club:     model.Club{Tag: name, Name: name},
		Members:  members,
		Required: required,
	}
}

func names(states []ClubState) []string {
	var out []string
	for _, st := range states {
		out = append(out, st.Club.Name)
	}
	return out
}

func TestSplitEligible(t *testing.T) {
	states := []ClubState{
		state("full", model.ClubCapacity, 10000),
		state("high", 20, 25000),
		state("low", 25, 5000),
		state("sweaty", 28, 40000),
		state("roomy", 20, 12000),
	}

	open, full, under := SplitEligible(states, 30000)

	assert.Equal(t, []string{"high", "roomy", "low"}, names(open),
		"fewest members first, then higher requirement")
	assert.Equal(t, []string{"full"}, names(full))
	assert.Equal(t, []string{"sweaty"}, names(under))
}

func TestSplitEligibleBoundaries(t *testing.T) {
	// exactly the required trophies is enough
	open, _, under := SplitEligible([]ClubState{state("edge", 10, 30000)}, 30000)
	require.Len(t, open, 1)
	assert.Empty(t, under)

	// a single free seat keeps the club open
	open, full, _ := SplitEligible([]ClubState{state("one-seat", model.ClubCapacity - 1, 0)}, 0)
	assert.Len(t, open, 1)
	assert.Empty(t, full)

	open, full, _ = SplitEligible([]ClubState{state("at-cap", model.ClubCapacity, 0)}, 0)
	assert.Empty(t, open)
	assert.Len(t, full, 1)
}

func TestSplitEligibleEmpty(t *testing.T) {
	open, full, under := SplitEligible(nil, 1000)
	assert.Empty(t, open)
	assert.Empty(t, full)
	assert.Empty(t, under)
}
