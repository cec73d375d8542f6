package congress

import "strings"

// NormalizeTicker returns the symbol a price provider expects for a raw
// disclosure ticker.
//
// Share class annotations are dropped ("DUK$A" is "DUK") and the class
// separator becomes a dash ("BRK.B" is "BRK-B"). NormalizeTicker is
// idempotent.
func NormalizeTicker(raw string) string {
	if i := strings.IndexByte(raw, '$'); i >= 0 {
		raw = raw[:i]
	}
	// Every '.' is replaced, not just the first one: "A.B.C" would otherwise
	// need two passes to settle.
	return strings.ReplaceAll(raw, ".", "-")
}
