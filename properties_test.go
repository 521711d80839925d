package fileslug_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/eykd/fileslug-go"
	"github.com/eykd/fileslug-go/internal/domain"
)

var propertyInputs = []string{
	"",
	".",
	"..",
	"...",
	"Hello, world!",
	"  spaced   out ",
	"a/b\\c",
	"--a--",
	"CON",
	"com1",
	"COM0",
	"lpt10",
	"__init__",
	"_-_",
	". .hidden",
	"a\x00b\x01c",
	"\xff\xfe invalid utf8",
	"Crème brûlée",
	"Привіт, світ!",
	"日本語",
	"İstanbul ǅemal",
	"ьъЬЪ",
	strings.Repeat("long name ", 60),
	strings.Repeat("ж", 200),
}

// checkSlug verifies the properties every default-options result holds.
func checkSlug(t *testing.T, input, got string, maxLen int) {
	t.Helper()

	if domain.IsDotName(got) {
		t.Errorf("Slugify(%q) = %q, want a usable name", input, got)
	}
	if strings.Contains(got, "--") {
		t.Errorf("Slugify(%q) = %q contains adjacent separators", input, got)
	}
	for _, edge := range []string{"-", ".", " "} {
		if strings.HasPrefix(got, edge) || strings.HasSuffix(got, edge) {
			t.Errorf("Slugify(%q) = %q starts or ends with %q", input, got, edge)
		}
	}
	if len(got) > maxLen {
		t.Errorf("len(Slugify(%q)) = %d, want <= %d", input, len(got), maxLen)
	}
	if !utf8.ValidString(got) {
		t.Errorf("Slugify(%q) = %q is not valid UTF-8", input, got)
	}
	if domain.IsReservedName(got) {
		t.Errorf("Slugify(%q) = %q is a reserved device name", input, got)
	}
}

func TestSlugify_Properties(t *testing.T) {
	for _, input := range propertyInputs {
		got := fileslug.Slugify(input)
		checkSlug(t, input, got, 255)

		if again := fileslug.Slugify(got); again != got {
			t.Errorf("Slugify(Slugify(%q)) = %q, want %q", input, again, got)
		}
	}
}

func TestSlugifyWith_ConcurrentCallsShareOptions(t *testing.T) {
	opts := fileslug.DefaultOptions()
	opts.AllowUnicode = true

	want := make([]string, len(propertyInputs))
	for i, input := range propertyInputs {
		want[i] = fileslug.SlugifyWith(input, opts)
	}

	done := make(chan struct{})
	for n := 0; n < 8; n++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for i, input := range propertyInputs {
				if got := fileslug.SlugifyWith(input, opts); got != want[i] {
					t.Errorf("SlugifyWith(%q) = %q, want %q", input, got, want[i])
				}
			}
		}()
	}
	for n := 0; n < 8; n++ {
		<-done
	}
}

func FuzzSlugify(f *testing.F) {
	for _, input := range propertyInputs {
		f.Add(input)
	}
	f.Fuzz(func(t *testing.T, input string) {
		got := fileslug.Slugify(input)
		checkSlug(t, input, got, 255)
		if again := fileslug.Slugify(got); again != got {
			t.Errorf("Slugify(Slugify(%q)) = %q, want %q", input, again, got)
		}
	})
}

func FuzzSlugifyWith_MaxLenBytes(f *testing.F) {
	f.Add("abcdef", uint8(1))
	f.Add("com1x", uint8(0))
	f.Add("привет мир", uint8(3))
	f.Fuzz(func(t *testing.T, input string, extra uint8) {
		opts := fileslug.DefaultOptions()
		opts.AllowUnicode = true
		// Leave room for the fallback so the cap is always reachable.
		opts.MaxLenBytes = len(fileslug.DefaultFallback) + int(extra)

		checkSlug(t, input, fileslug.SlugifyWith(input, opts), opts.MaxLenBytes)
	})
}

// FuzzSlugifyWith_Fallback pairs arbitrary fallbacks with caps too small to
// hold them.
func FuzzSlugifyWith_Fallback(f *testing.F) {
	f.Add("", ".abcd", uint8(1), false)
	f.Add("???", "nul", uint8(0), true)
	f.Add("", "conx", uint8(3), true)
	f.Add("", "-", uint8(1), true)
	f.Add("", "  draft. ", uint8(2), true)
	f.Add("...", "..", uint8(3), false)
	f.Add("hello", "a-b", uint8(2), true)
	f.Fuzz(func(t *testing.T, input, fallback string, capSel uint8, avoid bool) {
		opts := fileslug.DefaultOptions()
		opts.Fallback = fallback
		opts.AvoidLeadingDot = avoid
		opts.MaxLenBytes = int(capSel % 4)

		got := fileslug.SlugifyWith(input, opts)
		if domain.IsDotName(got) {
			t.Errorf("SlugifyWith(%q, Fallback=%q) = %q, want a usable name", input, fallback, got)
		}
		if domain.IsReservedName(got) {
			t.Errorf("SlugifyWith(%q, Fallback=%q) = %q is a reserved device name", input, fallback, got)
		}
		for _, edge := range []string{"-", ".", " "} {
			if strings.HasSuffix(got, edge) {
				t.Errorf("SlugifyWith(%q, Fallback=%q) = %q ends with %q", input, fallback, got, edge)
			}
		}
		if strings.HasPrefix(got, "-") || strings.HasPrefix(got, " ") {
			t.Errorf("SlugifyWith(%q, Fallback=%q) = %q starts with a separator or space", input, fallback, got)
		}
		if avoid && strings.HasPrefix(got, ".") {
			t.Errorf("SlugifyWith(%q, Fallback=%q) = %q is a hidden name", input, fallback, got)
		}
		// An unusable cut returns the whole fallback, plus at most two '_'.
		if limit := max(len(fallback), len(fileslug.DefaultFallback)) + 2; len(got) > opts.MaxLenBytes && len(got) > limit {
			t.Errorf("len(SlugifyWith(%q, Fallback=%q)) = %d, want <= %d", input, fallback, len(got), limit)
		}
		if utf8.ValidString(fallback) && !utf8.ValidString(got) {
			t.Errorf("SlugifyWith(%q, Fallback=%q) = %q is not valid UTF-8", input, fallback, got)
		}
	})
}
