package validation

import "testing"

func TestValidDisplayID_Valid(t *testing.T) {
	valids := []string{
		"a",
		"acme",
		"acme-co",
		"shop42",
		mkLen("a", 62) + "b", // 64 chars
	}
	for _, v := range valids {
		if !ValidDisplayID(v) {
			t.Fatalf("expected valid: %q", v)
		}
	}
}

func TestValidDisplayID_Invalid(t *testing.T) {
	invalids := []string{
		"",            // empty
		"-lead",       // starts with dash
		"trail-",      // ends with dash
		"bad space",   // space
		"UPPER",       // uppercase
		"under_score", // underscore not allowed
		mkLen("a", 65),
	}
	for _, v := range invalids {
		if ValidDisplayID(v) {
			t.Fatalf("expected invalid: %q", v)
		}
	}
}

func TestValidOrgName(t *testing.T) {
	if ValidOrgName(" a ") {
		t.Fatal("single char after trim should be invalid")
	}
	if !ValidOrgName("  Acme Co  ") {
		t.Fatal("trimmed name with >=2 chars should be valid")
	}
}

func TestValidUsername(t *testing.T) {
	if !ValidUsername("John.Doe") {
		t.Fatal("mixed case usernames are allowed (matching is case-sensitive)")
	}
	for _, v := range []string{"", "has space", "tab\there", mkLen("a", 65)} {
		if ValidUsername(v) {
			t.Fatalf("expected invalid: %q", v)
		}
	}
}

func TestValidEmail(t *testing.T) {
	if !ValidEmail("ops@acme.example") {
		t.Fatal("expected valid email")
	}
	for _, v := range []string{"", "no-at", "two@@x.com", "spaces in@x.com"} {
		if ValidEmail(v) {
			t.Fatalf("expected invalid: %q", v)
		}
	}
}

// mkLen builds a string of exactly n characters starting with prefix.
func mkLen(prefix string, total int) string {
	if total <= len(prefix) {
		return prefix[:total]
	}
	out := make([]byte, total)
	copy(out, []byte(prefix))
	for i := len(prefix); i < total; i++ {
		out[i] = 'a'
	}
	return string(out)
}
