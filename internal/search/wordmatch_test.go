package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsWord(t *testing.T) {
	tests := []struct {
		name string
		text string
		word string
		want bool
	}{
		{"simple hit", "Matrix SoColor 6RC", "socolor", true},
		{"case-insensitive", "MATRIX SOCOLOR", "Socolor", true},
		{"no partial word", "Matrix SoColor", "color", false},
		{"cyrillic hit", "Шампунь для волос", "шампунь", true},
		{"cyrillic partial miss", "Шампунь", "шампу", false},
		{"token at end", "Loreal 6RC", "6rc", true},
		{"number bounded by period matches", "оттенок 10.23", "23", true},
		{"multiword phrase", "краска темный шатен 4.0", "темный шатен", true},
		{"missing word", "Loreal 6RC", "matrix", false},
		{"empty word", "Loreal", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsWord(tt.text, tt.word))
		})
	}
}

func TestContainsDelimitedNumber(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		digits string
		want   bool
	}{
		{"standalone number", "Shade 7 Red", "7", true},
		{"inside longer number", "Shade 17 Red", "7", false},
		{"decimal left part", "оттенок 10.23", "10", false},
		{"decimal right part", "оттенок 10.23", "23", false},
		{"followed by letters", "Loreal 6RC", "6", false},
		{"exact field", "7", "7", true},
		{"after comma", "тон,7,красный", "7", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, containsDelimitedNumber(tt.text, tt.digits))
		})
	}
}
