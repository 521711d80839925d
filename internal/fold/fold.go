// Package fold lowercases single runes using full Unicode case mapping.
package fold

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lowerer appends full lowercase expansions of runes to a builder.
// A rune may lower to more than one code point, as İ does.
//
// A Lowerer wraps a stateful cases.Caser and must not be shared between
// goroutines.
type Lowerer struct {
	caser cases.Caser
}

// NewLowerer returns a Lowerer using language-neutral case rules.
func NewLowerer() *Lowerer {
	return &Lowerer{caser: cases.Lower(language.Und)}
}

// AppendLower writes the lowercase form of r to b.
func (l *Lowerer) AppendLower(b *strings.Builder, r rune) {
	b.WriteString(l.caser.String(string(r)))
}
