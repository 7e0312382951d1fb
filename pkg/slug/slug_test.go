// Copyright (c) 2026 Caboomlog. All rights reserved.

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caboomlog/backend/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Travel", "travel"},
		{"spaces", "Street Food  Guide", "street-food-guide"},
		{"accents", "Café Crème", "cafe-creme"},
		{"punctuation", "  Q&A / Tips!  ", "q-a-tips"},
		{"digits", "Top 10 Cities", "top-10-cities"},
		{"hangul_only", "여행", ""},
		{"mixed_script", "Japan 일본", "japan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}

func TestFromOr(t *testing.T) {
	assert.Equal(t, "travel", slug.FromOr("Travel", "fallback"))
	assert.Equal(t, "fallback", slug.FromOr("여행", "fallback"))
}
