package id

import (
	"fmt"
	"strings"
)

// FormatAccountNumber returns an account number like "ACC1000".
// The sequence is zero-padded to width digits; wider sequences are not truncated.
func FormatAccountNumber(prefix string, width, seq int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, seq)
}

// SameAccountNumber reports whether two account numbers match, ignoring case.
func SameAccountNumber(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
