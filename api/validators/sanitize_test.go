package validators

import "testing"

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello  ", 10); got != "hello" {
		t.Fatalf("expected trimmed string got %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("expected truncated string got %q", got)
	}
	if got := SanitizeString("  unbounded  ", 0); got != "unbounded" {
		t.Fatalf("expected trim only with zero max got %q", got)
	}
}
