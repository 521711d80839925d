package fileslug

import (
	"fmt"

	"github.com/eykd/fileslug-go/internal/config"
)

// ErrInvalidOptions is returned by ParseOptions for documents it cannot use.
var ErrInvalidOptions = config.ErrInvalidSettings

// ParseOptions decodes a YAML mapping of overrides on top of DefaultOptions.
//
//	separator: "_"
//	max_len_bytes: 64
//	fallback: untitled
//
// Accepted keys are separator, lowercase, max_len_bytes, allow_unicode,
// keep_underscore, avoid_leading_dot and fallback. Unknown keys are an error.
func ParseOptions(data []byte) (Options, error) {
	s, err := config.Parse(data)
	if err != nil {
		return Options{}, fmt.Errorf("parsing options: %w", err)
	}

	opts := DefaultOptions()
	if s.Separator != nil {
		opts.Separator = *s.Separator
	}
	if s.Lowercase != nil {
		opts.Lowercase = *s.Lowercase
	}
	if s.MaxLenBytes != nil {
		opts.MaxLenBytes = *s.MaxLenBytes
	}
	if s.AllowUnicode != nil {
		opts.AllowUnicode = *s.AllowUnicode
	}
	if s.KeepUnderscore != nil {
		opts.KeepUnderscore = *s.KeepUnderscore
	}
	if s.AvoidLeadingDot != nil {
		opts.AvoidLeadingDot = *s.AvoidLeadingDot
	}
	if s.Fallback != nil {
		opts.Fallback = *s.Fallback
	}
	return opts, nil
}
