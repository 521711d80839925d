package fileslug

// UnicodeSupported reports whether Options.AllowUnicode can take effect in
// this build.
func UnicodeSupported() bool { return unicodeEnabled }

// TransliterationSupported reports whether non-ASCII letters are
// transliterated in this build.
func TransliterationSupported() bool { return translitEnabled }
