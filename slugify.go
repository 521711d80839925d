package fileslug

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/eykd/fileslug-go/internal/domain"
	"github.com/eykd/fileslug-go/internal/fold"
)

// Slugify converts input using DefaultOptions.
func Slugify(input string) string {
	return SlugifyWith(input, DefaultOptions())
}

// SlugifyWith converts input into a filename-safe slug using opts.
//
// Letters and digits are kept, accented and Cyrillic letters are
// transliterated, and every other run of characters collapses into a single
// separator. The result is then trimmed, limited to opts.MaxLenBytes bytes
// and adjusted so that it is never empty, "." or "..", never a hidden file
// (with AvoidLeadingDot) and never a Windows device name.
func SlugifyWith(input string, opts Options) string {
	w := &writer{
		opts:       opts,
		sep:        domain.SanitizeSeparator(opts.Separator),
		lastWasSep: true,
	}
	w.b.Grow(max(min(len(input), opts.MaxLenBytes), 0))

	for _, r := range input {
		w.consume(r)
	}
	return finish(w.b.String(), opts, w.sep)
}

// writer accumulates slug output. lastWasSep starts true so leading
// boundaries emit nothing.
type writer struct {
	b          strings.Builder
	lower      *fold.Lowerer
	opts       Options
	sep        rune
	lastWasSep bool
}

func (w *writer) consume(r rune) {
	if domain.IsForbidden(r) {
		w.boundary()
		return
	}
	if w.appendWord(r) {
		return
	}
	if unicodeEnabled && w.opts.AllowUnicode && isAlphanumeric(r) {
		w.passthrough(r)
		return
	}
	if translitEnabled && w.transliterate(r) {
		return
	}
	// Whitespace, punctuation and anything unrecognised end the word.
	w.boundary()
}

// appendWord writes r if it belongs inside a word: an ASCII letter or digit,
// or '_' when underscores are kept.
func (w *writer) appendWord(r rune) bool {
	switch {
	case domain.IsASCIIAlnum(r):
		if w.opts.Lowercase {
			r = domain.ToASCIILower(r)
		}
	case r == '_' && w.opts.KeepUnderscore:
	default:
		return false
	}
	w.b.WriteRune(r)
	w.lastWasSep = false
	return true
}

func (w *writer) passthrough(r rune) {
	if w.opts.Lowercase {
		if w.lower == nil {
			w.lower = fold.NewLowerer()
		}
		w.lower.AppendLower(&w.b, r)
	} else {
		w.b.WriteRune(r)
	}
	w.lastWasSep = false
}

// transliterate writes the ASCII spelling of r. It reports false when r has
// no spelling or the spelling produced no word characters.
func (w *writer) transliterate(r rune) bool {
	s, ok := transliterate(r, w.opts.Lowercase)
	if !ok {
		return false
	}
	if s == "" {
		return true
	}
	wrote := false
	for _, t := range s {
		if w.appendWord(t) {
			wrote = true
		} else {
			w.boundary()
		}
	}
	return wrote
}

func (w *writer) boundary() {
	if !w.lastWasSep && w.b.Len() > 0 {
		w.b.WriteRune(w.sep)
		w.lastWasSep = true
	}
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.Is(unicode.Other_Alphabetic, r)
}

func finish(s string, opts Options, sep rune) string {
	fallback := fallbackName(opts, sep)

	s = domain.TrimTrailing(s, sep)
	s = domain.TrimLeadingSeparators(s, sep)
	if domain.IsDotName(s) {
		s = fallback
	}
	s = guardName(s, opts)

	if len(s) > opts.MaxLenBytes {
		s = truncate(s, opts.MaxLenBytes)
		// Cutting "com1x" leaves "com1".
		if domain.IsReservedName(domain.TrimTrailing(s, sep)) {
			s = truncate("_"+s, opts.MaxLenBytes)
		}
	}
	s = domain.TrimTrailing(s, sep)

	if domain.IsDotName(s) {
		s = fitFallback(fallback, opts, sep)
	}
	return s
}

// guardName prefixes '_' to hidden names (with AvoidLeadingDot) and to
// Windows device names.
func guardName(s string, opts Options) string {
	if opts.AvoidLeadingDot && strings.HasPrefix(s, ".") {
		s = "_" + s
	}
	if domain.IsReservedName(s) {
		s = "_" + s
	}
	return s
}

// fallbackName cleans opts.Fallback the way any result is cleaned. A
// fallback with nothing usable left becomes DefaultFallback.
func fallbackName(opts Options, sep rune) string {
	fb := strings.TrimLeftFunc(domain.TrimTrailing(opts.Fallback, sep), func(r rune) bool {
		return r == sep || r == ' '
	})
	if domain.IsDotName(fb) {
		fb = DefaultFallback
	}
	return guardName(fb, opts)
}

// truncate cuts s to at most maxLen bytes on a code point boundary.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 0 {
		return ""
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// fitFallback truncates fallback to opts.MaxLenBytes. When the cut leaves
// nothing usable, the whole fallback is returned so the result is never
// empty, a dot name or a device name.
func fitFallback(fallback string, opts Options, sep rune) string {
	t := domain.TrimTrailing(truncate(fallback, opts.MaxLenBytes), sep)
	if domain.IsDotName(t) || domain.IsReservedName(t) ||
		opts.AvoidLeadingDot && strings.HasPrefix(t, ".") {
		return fallback
	}
	return t
}
