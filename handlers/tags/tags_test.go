package tags

import (
	"testing"

	"clubkeeper/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveTag(t *testing.T) {
	tests := []struct {
		name        string
		tags        []string
		def         int
		from, to    int
		wantTags    []string
		wantDefault int
	}{
		{
			name: "default follows the moved tag",
			tags: []string{"A", "B", "C"}, def: 0,
			from: 0, to: 2,
			wantTags: []string{"B", "C", "A"}, wantDefault: 2,
		},
		{
			name: "default shifts left when a tag moves past it",
			tags: []string{"A", "B", "C"}, def: 1,
			from: 0, to: 2,
			wantTags: []string{"B", "C", "A"}, wantDefault: 0,
		},
		{
			name: "default shifts right when a tag moves before it",
			tags: []string{"A", "B", "C"}, def: 1,
			from: 2, to: 0,
			wantTags: []string{"C", "A", "B"}, wantDefault: 2,
		},
		{
			name: "move to same position is a no-op",
			tags: []string{"A", "B"}, def: 1,
			from: 1, to: 1,
			wantTags: []string{"A", "B"}, wantDefault: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := model.UserRecord{Tags: tt.tags, DefaultIndex: tt.def}
			require.NoError(t, MoveTag(&rec, tt.from, tt.to))
			assert.Equal(t, tt.wantTags, rec.Tags)
			assert.Equal(t, tt.wantDefault, rec.DefaultIndex)
		})
	}
}

func TestMoveTagOutOfRange(t *testing.T) {
	rec := model.UserRecord{Tags: []string{"A"}}
	assert.Error(t, MoveTag(&rec, 0, 1))
	assert.Error(t, MoveTag(&rec, -1, 0))
	assert.Equal(t, []string{"A"}, rec.Tags)
}

func TestRemoveTag(t *testing.T) {
	rec := model.UserRecord{Tags: []string{"A", "B", "C"}, DefaultIndex: 2}

	removed, err := RemoveTag(&rec, 0)
	require.NoError(t, err)
	assert.Equal(t, "A", removed)
	assert.Equal(t, []string{"B", "C"}, rec.Tags)
	assert.Equal(t, 1, rec.DefaultIndex, "default shifts left when an earlier tag is removed")

	removed, err = RemoveTag(&rec, 1)
	require.NoError(t, err)
	assert.Equal(t, "C", removed)
	assert.Equal(t, 0, rec.DefaultIndex, "removing the default resets it to the first tag")

	_, err = RemoveTag(&rec, 5)
	assert.Error(t, err)
}
