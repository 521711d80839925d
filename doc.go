// Package fileslug turns arbitrary text into short names that are safe to
// use as a filename or URL path segment on Windows, Unix and the web.
//
//	fileslug.Slugify("Hello, world!")   // "hello-world"
//	fileslug.Slugify("Crème brûlée")    // "creme-brulee"
//	fileslug.Slugify("CON")             // "_con"
//	fileslug.Slugify("...")             // "file"
//
// Use SlugifyWith to change the separator, case handling, byte limit or
// fallback name:
//
//	opts := fileslug.DefaultOptions()
//	opts.Separator = '_'
//	opts.KeepUnderscore = false
//	fileslug.SlugifyWith("a b c", opts) // "a_b_c"
//
// Every input yields a non-empty result. Results never contain adjacent
// separators, never start or end with a separator, dot or space, never
// exceed Options.MaxLenBytes bytes and never equal a Windows device name
// such as CON or COM1.
//
// # Capabilities
//
// Transliteration of accented Latin and Cyrillic letters and passthrough of
// Unicode letters (Options.AllowUnicode) are compiled in by default. Build
// with -tags fileslug_notranslit or -tags fileslug_nounicode to leave either
// out; such runes then become separators.
package fileslug
