//go:build !fileslug_notranslit

package fileslug

import "github.com/eykd/fileslug-go/internal/translit"

const translitEnabled = true

func transliterate(r rune, lowercase bool) (string, bool) {
	return translit.Lookup(r, lowercase)
}
