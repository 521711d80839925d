//go:build !fileslug_nounicode

package fileslug

const unicodeEnabled = true
