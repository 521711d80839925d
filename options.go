package fileslug

// DefaultFallback replaces results that would otherwise be empty, "." or "..".
const DefaultFallback = "file"

// Options controls how text is converted. The zero value is not useful;
// start from DefaultOptions and override fields.
type Options struct {
	// Fallback is returned when nothing usable is left. It is cleaned like
	// any result: separators and spaces are trimmed from both ends and dots
	// from the end, and it gets the same '_' prefixes. A Fallback with
	// nothing left after trimming means DefaultFallback. Other characters
	// are used as given.
	Fallback string
	// MaxLenBytes caps the UTF-8 length of the result. Truncation never
	// splits a code point. A value of zero or less always yields Fallback.
	MaxLenBytes int
	// Separator joins words. Only - _ + and ~ are accepted; any other rune
	// is replaced by '-'.
	Separator rune
	// Lowercase folds ASCII letters, transliterations and passed-through
	// Unicode letters to lower case.
	Lowercase bool
	// AllowUnicode keeps non-ASCII letters and digits as they are instead
	// of transliterating them. It has no effect when the unicode capability
	// is compiled out.
	AllowUnicode bool
	// KeepUnderscore keeps '_' in the output. When false it is a separator.
	KeepUnderscore bool
	// AvoidLeadingDot prefixes '_' to results starting with '.'.
	AvoidLeadingDot bool
}

// DefaultOptions returns '-' separated, lowercased output of at most 255
// bytes that keeps underscores and falls back to "file".
func DefaultOptions() Options {
	return Options{
		Separator:       '-',
		Lowercase:       true,
		MaxLenBytes:     255,
		AllowUnicode:    false,
		KeepUnderscore:  true,
		AvoidLeadingDot: true,
		Fallback:        DefaultFallback,
	}
}
