package archive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitContent(t *testing.T) {
	assert.Nil(t, SplitContent("", 10))
	assert.Equal(t, []string{"short"}, SplitContent("short", 10))

	chunks := SplitContent("aaaa\nbbbb\ncccc", 9)
	assert.Equal(t, []string{"aaaa\nbbbb", "cccc"}, chunks, "splits on newline boundaries")

	long := strings.Repeat("x", 25)
	chunks = SplitContent(long, 10)
	require.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("x", 10), chunks[0])
	assert.Equal(t, strings.Repeat("x", 5), chunks[2])

	// every chunk respects the limit and nothing is lost
	in := strings.Repeat("word ", 1000) + "\n" + strings.Repeat("y", 4500)
	chunks = SplitContent(in, MessageLimit)
	var total int
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), MessageLimit)
		total += len(c)
	}
	assert.GreaterOrEqual(t, total, len(in)-len(chunks)) // newlines consumed at boundaries
}
