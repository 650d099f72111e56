package id

import (
	"encoding/hex"
	"regexp"
	"strings"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_FormatAndDecode(t *testing.T) {
	got := NewID32()

	// length
	if len(got) != 32 {
		t.Fatalf("length = %d, want 32 (got=%q)", len(got), got)
	}
	// lowercase hex only (no separators/prefixes)
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
	// decodes to exactly 16 bytes
	b, err := hex.DecodeString(got)
	if err != nil {
		t.Fatalf("hex.DecodeString error: %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("decoded bytes = %d, want 16", len(b))
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 200
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewID32()
		if _, ok := seen[id]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewLoanNumber_Format(t *testing.T) {
	re := regexp.MustCompile(`^GL-[A-F0-9]{10}$`)
	for i := 0; i < 50; i++ {
		got := NewLoanNumber()
		if !re.MatchString(got) {
			t.Fatalf("loan number %q does not match GL-XXXXXXXXXX", got)
		}
	}
}

func TestNewReceiptNumber_Format(t *testing.T) {
	re := regexp.MustCompile(`^RCP-[A-F0-9]{12}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		got := NewReceiptNumber()
		if !re.MatchString(got) {
			t.Fatalf("receipt number %q does not match RCP-XXXXXXXXXXXX", got)
		}
		if strings.Contains(got[4:], "-") {
			t.Fatalf("receipt body contains hyphen: %q", got)
		}
		if _, ok := seen[got]; ok {
			t.Fatalf("duplicate receipt number: %q", got)
		}
		seen[got] = struct{}{}
	}
}
