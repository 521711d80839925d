package domain

import (
	"strings"
	"unicode"
)

// DefaultSeparator is used when a requested separator is not on the allow-list.
const DefaultSeparator = '-'

// SanitizeSeparator returns sep if it is one of - _ + ~, otherwise DefaultSeparator.
func SanitizeSeparator(sep rune) rune {
	switch sep {
	case '-', '_', '+', '~':
		return sep
	default:
		return DefaultSeparator
	}
}

// IsForbidden reports whether r may never appear in a Windows filename:
// < > : " / \ | ? *, NUL and every control character.
func IsForbidden(r rune) bool {
	switch r {
	case '<', '>', ':', '"', '/', '\\', '|', '?', '*', 0:
		return true
	}
	return unicode.IsControl(r)
}

// IsASCIIAlnum reports whether r is in [0-9A-Za-z].
func IsASCIIAlnum(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// ToASCIILower lowercases A-Z and leaves every other rune alone.
func ToASCIILower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func toASCIIUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// IsDotName reports whether name is empty, "." or "..".
func IsDotName(name string) bool {
	return name == "" || name == "." || name == ".."
}

// TrimTrailing strips any mix of sep, '.' and ' ' from the end of s.
func TrimTrailing(s string, sep rune) string {
	return strings.TrimRightFunc(s, func(r rune) bool {
		return r == sep || r == '.' || r == ' '
	})
}

// TrimLeadingSeparators strips leading runs of sep.
func TrimLeadingSeparators(s string, sep rune) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return r == sep
	})
}

// IsReservedName reports whether name, compared case-insensitively, is a
// Windows device name: CON, PRN, AUX, NUL, COM1-COM9 or LPT1-LPT9.
// COM0, LPT0 and multi-digit suffixes such as COM10 are allowed.
func IsReservedName(name string) bool {
	if len(name) != 3 && len(name) != 4 {
		return false
	}
	upper := strings.Map(toASCIIUpper, name)
	switch upper {
	case "CON", "PRN", "AUX", "NUL":
		return true
	}
	if len(upper) != 4 {
		return false
	}
	prefix, digit := upper[:3], upper[3]
	return (prefix == "COM" || prefix == "LPT") && digit >= '1' && digit <= '9'
}
