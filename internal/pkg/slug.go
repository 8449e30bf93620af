package pkg

import "strings"

// Slugify lowercases a community name and joins whitespace-separated words
// with hyphens. Runs of whitespace collapse, so "Book  Club" and "Book Club"
// produce the same slug; uniqueness is resolved by the caller with a suffix.
func Slugify(name string) string {
	words := strings.Fields(strings.ToLower(name))
	return strings.Join(words, "-")
}
