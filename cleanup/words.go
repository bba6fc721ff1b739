package cleanup

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// A word is a maximal run of letters, combining marks and digits. Go's \b only knows ASCII,
// which would split French words at accented letters.
var wordRegex = regexp.MustCompile(`[\p{L}\p{M}\p{N}]+`)

// wordFunc returns the replacement for the i-th word of a text. next is the text following
// the word. If abbreviation is true, a dot directly after the word is dropped.
type wordFunc func(i int, word, next string) (replacement string, abbreviation bool)

func mapWords(s string, f wordFunc) string {
	locs := wordRegex.FindAllStringIndex(s, -1)
	if locs == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for i, loc := range locs {
		start, end := loc[0], loc[1]
		b.WriteString(s[last:start])
		replacement, abbreviation := f(i, s[start:end], s[end:])
		b.WriteString(replacement)
		last = end
		if abbreviation && strings.HasPrefix(s[end:], ".") {
			last = end + 1
			if r, _ := utf8.DecodeRuneInString(s[last:]); isWordRune(r) {
				b.WriteByte(' ')
			}
		}
	}
	b.WriteString(s[last:])
	return b.String()
}

// replaceWords replaces the words found in table, keyed by their folded form.
func replaceWords(s string, table map[string]string, abbreviation bool) string {
	return mapWords(s, func(_ int, word, _ string) (string, bool) {
		if replacement, ok := table[fold(word)]; ok {
			return replacement, abbreviation
		}
		return word, false
	})
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsNumber(r)
}

func fold(s string) string {
	// Casers hold state, so a new one is used for each call.
	return cases.Fold().String(s)
}

func foldKeys(m map[string]string) map[string]string {
	folded := make(map[string]string, len(m))
	for k, v := range m {
		folded[fold(k)] = v
	}
	return folded
}
