package id

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// NewLoanNumber returns a human-facing loan number like GL-3FA85F64D7.
func NewLoanNumber() string {
	return "GL-" + strings.ToUpper(NewID32()[:10])
}

// NewReceiptNumber returns a receipt number like RCP-9B2D1C4E8F03.
// Uniqueness is enforced by the ledger's unique index.
func NewReceiptNumber() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "RCP-" + strings.ToUpper(raw[:12])
}
