package domain

import "strings"

// Category classifies product listings.
type Category struct {
	ID    string
	Title string
	Slug  string
}

// NewCategory creates a category with a slug derived from the title.
func NewCategory(id, title string) (Category, error) {
	if title == "" {
		return Category{}, ErrInvalidCategory
	}
	return Category{
		ID:    id,
		Title: title,
		Slug:  Slugify(title),
	}, nil
}

// Slugify derives a URL-safe slug: lowercase, runs of non-alphanumeric
// characters collapse to single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
