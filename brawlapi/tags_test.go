package brawlapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "2ABC9", "2ABC9"},
		{"hash stripped and uppercased", "#abc123", "ABC123"},
		{"letter O becomes zero", "#O0o", "000"},
		{"surrounding whitespace", "  #vg89qr \n", "VG89QR"},
		{"double hash", "##QQ", "QQ"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTag(tt.in))
		})
	}
}

func TestNormalizeTagIdempotent(t *testing.T) {
	for _, raw := range []string{"#O0o", "player", "  #2ABC9 ", "#GGOGG"} {
		once := NormalizeTag(raw)
		assert.Equal(t, once, NormalizeTag(once), "normalizing %q twice changed the value", raw)
	}
}

func TestPrettyTag(t *testing.T) {
	assert.Equal(t, "#2ABC9", PrettyTag("#2abc9"))
	assert.Equal(t, "#000", PrettyTag("O0o"))
}
