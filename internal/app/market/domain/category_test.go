package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("cat-1", "Home & Garden")
	require.NoError(t, err)
	assert.Equal(t, "home-garden", c.Slug)

	_, err = NewCategory("cat-2", "")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		slug  string
	}{
		{"Electronics", "electronics"},
		{"Home & Garden", "home-garden"},
		{"  spaced   out  ", "spaced-out"},
		{"Already-Slugged", "already-slugged"},
		{"100% Cotton!", "100-cotton"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.slug, Slugify(tt.title), "title %q", tt.title)
	}
}
