package handlers

import (
	"strings"
	"testing"
)

func TestSanitizeEmail(t *testing.T) {
	t.Parallel()

	if got := SanitizeEmail("  Ana@Example.COM "); got != "ana@example.com" {
		t.Fatalf("SanitizeEmail = %q", got)
	}
	if got := SanitizeEmail(strings.Repeat("a", MaxEmailLength+1)); got != "" {
		t.Fatalf("oversized email not rejected: %q", got)
	}
}

func TestSanitizePassword(t *testing.T) {
	t.Parallel()

	if got := SanitizePassword("  hunter2  "); got != "hunter2" {
		t.Fatalf("SanitizePassword = %q", got)
	}
	if got := SanitizePassword(strings.Repeat("x", MaxPasswordLength+1)); got != "" {
		t.Fatalf("oversized password not rejected: %q", got)
	}
}
