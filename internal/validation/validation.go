package validation

import (
	"regexp"
	"strings"
)

// Display id rules:
// - Lowercase only.
// - Start and end with [a-z0-9].
// - Middle chars may include [a-z0-9-].
// - Length 1..64.
//
// Examples valid: acme, acme-co, a, shop42
// Examples invalid: -lead, trail-, "", UPPER, "bad space", 65+ chars.
var displayIDRe = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,62}[a-z0-9])?$`)

// ValidDisplayID returns true if the value is a URL-safe tenant slug.
func ValidDisplayID(v string) bool {
	return displayIDRe.MatchString(v)
}

// emailRe is deliberately loose: one "@", no spaces, something on both sides.
// Real validation belongs to the identity provider.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail returns true if the value looks like an email address.
func ValidEmail(v string) bool {
	return len(v) <= 254 && emailRe.MatchString(v)
}

// ValidOrgName returns true if the trimmed name has at least 2 characters.
func ValidOrgName(v string) bool {
	return len(strings.TrimSpace(v)) >= 2
}

// Username rules: 1..64 chars, no whitespace. Matching elsewhere is exact
// and case-sensitive, so no normalization happens here.
func ValidUsername(v string) bool {
	if v == "" || len(v) > 64 {
		return false
	}
	return !strings.ContainsAny(v, " \t\r\n")
}
