package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple lowercase", "half", "half"},
		{"mixed case", "Spring Marathon", "spring-marathon"},
		{"special characters", "sprint@tri!2028", "sprint-tri-2028"},
		{"consecutive specials", "ultra---50k", "ultra-50k"},
		{"leading trailing specials", "--base--", "base"},
		{"numbers preserved", "marathon-i1", "marathon-i1"},
		{"mixed specials", "Boston (2028), B-Goal", "boston-2028-b-goal"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
