package wizard

import (
	"strings"
	"testing"
)

func TestNewRefNumberFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref := NewRefNumber()
		if len(ref) != RefNumberLength {
			t.Fatalf("len(%q) = %d, want %d", ref, len(ref), RefNumberLength)
		}
		for _, r := range ref {
			if !strings.ContainsRune(refAlphabet, r) {
				t.Fatalf("ref %q contains %q, not in alphabet", ref, r)
			}
		}
	}
}

func TestNewRefNumberNotConstant(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[NewRefNumber()] = true
	}
	if len(seen) < 2 {
		t.Error("expected distinct reference numbers across generations")
	}
}
