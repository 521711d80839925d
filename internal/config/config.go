// Package config decodes slug option overrides from YAML documents.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned when a settings document cannot be decoded.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the overrides present in a document. Nil fields were absent.
type Settings struct {
	Separator       *rune
	Lowercase       *bool
	MaxLenBytes     *int
	AllowUnicode    *bool
	KeepUnderscore  *bool
	AvoidLeadingDot *bool
	Fallback        *string
}

// document mirrors the accepted keys. Separator is decoded as a string and
// checked for length separately.
type document struct {
	Separator       *string `yaml:"separator"`
	Lowercase       *bool   `yaml:"lowercase"`
	MaxLenBytes     *int    `yaml:"max_len_bytes"`
	AllowUnicode    *bool   `yaml:"allow_unicode"`
	KeepUnderscore  *bool   `yaml:"keep_underscore"`
	AvoidLeadingDot *bool   `yaml:"avoid_leading_dot"`
	Fallback        *string `yaml:"fallback"`
}

var knownKeys = map[string]bool{
	"separator":         true,
	"lowercase":         true,
	"max_len_bytes":     true,
	"allow_unicode":     true,
	"keep_underscore":   true,
	"avoid_leading_dot": true,
	"fallback":          true,
}

// Parse decodes a YAML mapping of option overrides. An empty or null
// document yields empty Settings.
func Parse(data []byte) (Settings, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if len(root.Content) == 0 {
		return Settings{}, nil
	}

	mapping := root.Content[0]
	if mapping.Kind == yaml.ScalarNode && mapping.Tag == "!!null" {
		return Settings{}, nil
	}
	if mapping.Kind != yaml.MappingNode {
		return Settings{}, fmt.Errorf("%w: document must be a mapping", ErrInvalidSettings)
	}
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		key := mapping.Content[i].Value
		if !knownKeys[key] {
			return Settings{}, fmt.Errorf("%w: unknown key %q (line %d)",
				ErrInvalidSettings, key, mapping.Content[i].Line)
		}
	}

	var doc document
	if err := mapping.Decode(&doc); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	s := Settings{
		Lowercase:       doc.Lowercase,
		MaxLenBytes:     doc.MaxLenBytes,
		AllowUnicode:    doc.AllowUnicode,
		KeepUnderscore:  doc.KeepUnderscore,
		AvoidLeadingDot: doc.AvoidLeadingDot,
		Fallback:        doc.Fallback,
	}
	if doc.Separator != nil {
		sep, err := parseSeparator(*doc.Separator)
		if err != nil {
			return Settings{}, err
		}
		s.Separator = &sep
	}
	return s, nil
}

func parseSeparator(v string) (rune, error) {
	if utf8.RuneCountInString(v) != 1 {
		return 0, fmt.Errorf("%w: separator must be a single character, got %q", ErrInvalidSettings, v)
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r, nil
}
