package counter

import "golang.org/x/text/unicode/norm"

// DefaultName is used when the caller does not name a counter.
const DefaultName = "default"

// CanonicalName resolves the name used as the primary key: empty names fall
// back to DefaultName, and the result is NFC-normalized so composed and
// decomposed spellings of the same name address the same row.
func CanonicalName(name string) string {
	if name == "" {
		return DefaultName
	}
	return norm.NFC.String(name)
}
