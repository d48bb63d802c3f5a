package athlete

import "strings"

// Slug turns a display name into the profile URL path segment.
// Only case and spaces are normalised; other punctuation passes through.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
