package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pads", "Mon", 6, "Mon   "},
		{"exact", "Run 3 miles", 11, "Run 3 miles"},
		{"keeps longer text", "Run 10 miles", 5, "Run 10 miles"},
		{"empty", "", 3, "   "},
		{"runes", "Süd", 5, "Süd  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PadRight(tt.in, tt.width))
		})
	}
}

func TestPadCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", PadCenter("ab", 6))
	assert.Equal(t, "  ab   ", PadCenter("ab", 7))
	assert.Equal(t, "abcdef", PadCenter("abcdefgh", 6))
	assert.Equal(t, "   ", PadCenter("", 3))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Run 3 miles", Truncate("Run 3 miles", 20))
	assert.Equal(t, "Swim 1...", Truncate("Swim 1000 m + Bike 50 min", 9))
	assert.Equal(t, "Sw", Truncate("Swim", 2))
}
