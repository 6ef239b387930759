package clubsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampInterval(t *testing.T) {
	assert.Equal(t, MinInterval, ClampInterval(10))
	assert.Equal(t, MinInterval, ClampInterval(MinInterval))
	assert.Equal(t, 120, ClampInterval(120))
	assert.Equal(t, MaxInterval, ClampInterval(MaxInterval))
	assert.Equal(t, MaxInterval, ClampInterval(100000))
}
