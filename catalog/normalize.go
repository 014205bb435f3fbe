package catalog

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize produces the equality key used for all name and title matching:
// Unicode NFC composition followed by Japanese-locale lowercasing. A caser
// is stateful, so one is created per call rather than shared.
func Normalize(s string) string {
	return cases.Lower(language.Japanese).String(norm.NFC.String(s))
}
