package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  matrix 6rc  ", "matrix 6rc"},
		{"punctuation collapses to space", "SoColor: 6RC", "SoColor 6RC"},
		{"keeps decimal shade codes", "краска 10.23", "краска 10.23"},
		{"keeps underscore", "shade_6", "shade_6"},
		{"collapses inner whitespace", "matrix\t\t6rc", "matrix 6rc"},
		{"punctuation run is one space", "matrix!!!???6rc", "matrix 6rc"},
		{"cyrillic preserved", "шампунь для волос", "шампунь для волос"},
		{"empty", "", ""},
		{"blank", "   \t ", ""},
		{"only punctuation", "?!,;", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"  Matrix: SoColor, 6RC!  ",
		"краска 10.23",
		"a   b\tc",
		"",
		"?!",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestIsDigits(t *testing.T) {
	assert.True(t, isDigits("007"))
	assert.True(t, isDigits("42"))
	assert.False(t, isDigits("6rc"))
	assert.False(t, isDigits("10.23"))
	assert.False(t, isDigits(""))
	assert.False(t, isDigits("١٢٣")) // non-ASCII digits stay on the text branch
}
