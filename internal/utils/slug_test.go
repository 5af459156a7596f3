package utils

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
		{"simple", "Shoes", "shoes"},
		{"spaces", "Eau de Parfum", "eau-de-parfum"},
		{"accents collapse", "Prêt-à-porter", "pr-t-porter"},
		{"punctuation", "Men's  Shoes!", "men-s-shoes"},
		{"leading and trailing", "  --Sale--  ", "sale"},
		{"digits kept", "Collection 2024", "collection-2024"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
