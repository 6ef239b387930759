package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffMembers(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr []string
		joined     []string
		left       []string
	}{
		{
			name:   "one join one leave",
			prev:   []string{"A", "B", "C"},
			curr:   []string{"B", "C", "D"},
			joined: []string{"D"},
			left:   []string{"A"},
		},
		{
			name: "no change",
			prev: []string{"A", "B"},
			curr: []string{"B", "A"},
		},
		{
			name:   "everyone left",
			prev:   []string{"A", "B"},
			curr:   nil,
			left:   []string{"A", "B"},
			joined: nil,
		},
		{
			name:   "empty previous",
			prev:   []string{},
			curr:   []string{"X"},
			joined: []string{"X"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joined, left := DiffMembers(tt.prev, tt.curr)
			assert.Equal(t, tt.joined, joined)
			assert.Equal(t, tt.left, left)
		})
	}
}

func TestFormatNick(t *testing.T) {
	assert.Equal(t, "Spike | Raiders", FormatNick("{IGN} | {CLUB}", "Spike", "Raiders"))
	assert.Equal(t, "[Raiders] Spike", FormatNick("[{CLUB}] {IGN}", "Spike", "Raiders"))
	assert.Equal(t, "Spike | Raiders", FormatNick("", "Spike", "Raiders"), "empty format falls back to the default")
}
