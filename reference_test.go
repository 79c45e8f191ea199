package paymentwindow

import (
	"strings"
	"testing"
)

func TestNewReference(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 100 {
		ref := NewReference()
		if len(ref) != 32 || strings.Contains(ref, "-") {
			t.Fatalf("unexpected reference %q", ref)
		}
		if _, dup := seen[ref]; dup {
			t.Fatalf("duplicate reference %q", ref)
		}
		seen[ref] = struct{}{}
	}

	fs := sampleBuilder().Reference(NewReference()).Build()
	if err := fs.Validate(); err != nil {
		t.Fatalf("generated reference does not validate: %v", err)
	}
}
