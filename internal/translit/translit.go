// Package translit maps single non-ASCII runes to best-effort ASCII spellings.
package translit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/eykd/fileslug-go/internal/domain"
)

// groups lists every rune in from as spelling to. Upper and lower case forms
// share a group; case is restored by Lookup.
var groups = []struct {
	from string
	to   string
}{
	// Latin
	{"ÀÁÂÃÄÅĀĂĄàáâãäåāăą", "a"},
	{"ÇĆĈĊČçćĉċč", "c"},
	{"ÐĎĐðďđ", "d"},
	{"ƏəÈÉÊËĒĔĖĘĚèéêëēĕėęě", "e"},
	{"ÌÍÎÏĨĪĬĮİìíîïĩīĭįı", "i"},
	{"ÑŃŅŇñńņň", "n"},
	{"ÒÓÔÕÖØŌŎŐòóôõöøōŏő", "o"},
	{"ÙÚÛÜŨŪŬŮŰŲùúûüũūŭůűų", "u"},
	{"ÝŸýÿ", "y"},
	{"Łł", "l"},
	{"ŽžŹźŻż", "z"},
	{"ŠšŚś", "s"},
	{"Þþ", "th"},
	{"Ææ", "ae"},
	{"Œœ", "oe"},

	// Look-alikes
	{"∂", "o"},
	{"€", "e"},
	{"∫", "s"},
	{"β", "b"},

	// Cyrillic
	{"Аа", "a"},
	{"Бб", "b"},
	{"Вв", "v"},
	{"ГгҐґ", "g"},
	{"Дд", "d"},
	{"ЕеЁёЭэ", "e"},
	{"Жж", "zh"},
	{"Зз", "z"},
	{"ИиІі", "i"},
	{"ЙйЫы", "y"},
	{"Кк", "k"},
	{"Лл", "l"},
	{"Мм", "m"},
	{"Нн", "n"},
	{"Оо", "o"},
	{"Пп", "p"},
	{"Рр", "r"},
	{"Сс", "s"},
	{"Тт", "t"},
	{"Уу", "u"},
	{"Фф", "f"},
	{"Хх", "h"},
	{"Цц", "ts"},
	{"Чч", "ch"},
	{"Шш", "sh"},
	{"Щщ", "shch"},
	{"Юю", "yu"},
	{"Яя", "ya"},
	{"Єє", "ye"},
	{"Її", "yi"},
	{"ЪъЬь", ""},
}

var table = buildTable()

func buildTable() map[rune]string {
	t := make(map[rune]string, 320)
	for _, g := range groups {
		for _, r := range g.from {
			t[r] = g.to
		}
	}
	return t
}

// Lookup returns the ASCII spelling of r.
//
// ok is false when no spelling is known and the caller should apply its own
// rule. An empty spelling with ok set means r should be dropped (Cyrillic
// soft and hard signs). When r is upper case and lowercase is false, the
// first letter of the spelling is upper-cased; ß always becomes "ss".
//
// Runes missing from the table fall back to their canonical decomposition
// when it is a single ASCII letter or digit plus combining marks, so ğ
// becomes g and Ř becomes R.
func Lookup(r rune, lowercase bool) (string, bool) {
	if r < utf8.RuneSelf {
		return "", false
	}
	if r == 'ß' {
		return "ss", true
	}

	titleCase := !lowercase && unicode.IsUpper(r)

	if s, ok := table[r]; ok {
		if titleCase {
			return titleCaseASCII(s), true
		}
		return s, true
	}

	base, ok := decompose(r)
	if !ok {
		return "", false
	}
	if lowercase {
		base = domain.ToASCIILower(base)
	}
	return string(base), true
}

// decompose returns the ASCII base letter of r when r canonically decomposes
// into that letter followed only by non-spacing marks.
func decompose(r rune) (rune, bool) {
	d := norm.NFD.String(string(r))
	base, size := utf8.DecodeRuneInString(d)
	if size == len(d) || !domain.IsASCIIAlnum(base) {
		return 0, false
	}
	for _, m := range d[size:] {
		if !unicode.Is(unicode.Mn, m) {
			return 0, false
		}
	}
	return base, true
}

func titleCaseASCII(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
