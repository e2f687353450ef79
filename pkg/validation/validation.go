package validation

import (
	"regexp"
	"strings"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// record and visitor identifiers: PocketBase ids, uuid hex, day-suffixed subjects
	identifierRegex = regexp.MustCompile(`^[a-zA-Z0-9_:\-]+$`)
	// visitor ids never contain ':', which separates the parts of ledger keys
	visitorIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)
)

// IsValidEmail validates email format
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidIdentifier reports whether s is a non-empty identifier safe to embed
// in a backend filter expression.
func IsValidIdentifier(s string) bool {
	return identifierRegex.MatchString(s)
}

// IsValidVisitorID reports whether s can be used as a visitor identifier
func IsValidVisitorID(s string) bool {
	return visitorIDRegex.MatchString(s)
}

// IsValidStatField validates the sortable post-stats field names
func IsValidStatField(field string) bool {
	return field == "views_total" || field == "comments_total"
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
