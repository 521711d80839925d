//go:build fileslug_notranslit

package fileslug

const translitEnabled = false

func transliterate(rune, bool) (string, bool) {
	return "", false
}
