package cleanup

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ComposeUnicode puts the text in NFC, so accents are part of the letter they modify.
func ComposeUnicode(s string) string {
	return norm.NFC.String(s)
}

var directionMarkerRegex = regexp.MustCompile(`(?i)^([\s\-,/;:]*(?:aller|retour)(?:[\s\-,/;:>]+|$))+`)

// RemoveDirectionMarkers drops leading "aller" and "retour" words.
func RemoveDirectionMarkers(s string) string {
	return directionMarkerRegex.ReplaceAllString(s, "")
}

var timeOfDay = foldKeys(map[string]string{
	"am": "Matin",
	"pm": "Après-Midi",
})

// ExpandTimeOfDay spells out standalone AM and PM.
func ExpandTimeOfDay(s string) string {
	return replaceWords(s, timeOfDay, false)
}

var viaRegex = regexp.MustCompile(`(?i)(^|[^\p{L}\p{M}\p{N}])via([^\p{L}\p{M}\p{N}]|$)`)

// RemoveVia drops the first "via" and everything after it, unless nothing would be left.
func RemoveVia(s string) string {
	loc := viaRegex.FindStringIndex(s)
	if loc == nil {
		return s
	}
	before := s[:loc[0]]
	if !wordRegex.MatchString(before) {
		return s
	}
	return strings.TrimRightFunc(before, unicode.IsSpace)
}

var saints = foldKeys(map[string]string{
	"st":     "Saint",
	"ste":    "Sainte",
	"saint":  "Saint",
	"sainte": "Sainte",
})

// Saint writes saint names in full.
func Saint(s string) string {
	return replaceWords(s, saints, true)
}

var streetTypesFRCA = foldKeys(map[string]string{
	"all":    "Allée",
	"av":     "Avenue",
	"ave":    "Avenue",
	"bd":     "Boulevard",
	"boul":   "Boulevard",
	"carref": "Carrefour",
	"ch":     "Chemin",
	"esp":    "Esplanade",
	"fbg":    "Faubourg",
	"imp":    "Impasse",
	"pl":     "Place",
	"prom":   "Promenade",
	"rte":    "Route",
	"sq":     "Square",
})

// StreetTypesFRCA expands French and Canadian French street type abbreviations.
func StreetTypesFRCA(s string) string {
	return replaceWords(s, streetTypesFRCA, true)
}

var (
	spacesRegex             = regexp.MustCompile(`\s+`)
	spaceBeforeClosingRegex = regexp.MustCompile(`\s+([,.)])`)
	spaceAfterOpeningRegex  = regexp.MustCompile(`\(\s+`)
)

// CleanLabel normalizes Unicode and whitespace and trims dangling separators.
func CleanLabel(s string) string {
	s = ComposeUnicode(s)
	s = spacesRegex.ReplaceAllString(s, " ")
	s = spaceBeforeClosingRegex.ReplaceAllString(s, "$1")
	s = spaceAfterOpeningRegex.ReplaceAllString(s, "(")
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune("-,/;:", r)
	})
}

var frenchParticles = map[string]bool{
	"de":  true,
	"du":  true,
	"des": true,
	"et":  true,
	"à":   true,
	"au":  true,
	"aux": true,
	"en":  true,
	"sur": true,
}

// Elided articles only count when the apostrophe follows, so a lone D stays a line letter.
var frenchElisions = map[string]bool{
	"d": true,
	"l": true,
}

var romanNumeralRegex = regexp.MustCompile(`^[IVX]+$`)

func isAllCapsWord(word string) bool {
	letters := 0
	for _, r := range word {
		if unicode.IsMark(r) {
			continue
		}
		if !unicode.IsLetter(r) || unicode.IsLower(r) {
			return false
		}
		letters++
	}
	return letters >= 2
}

func hasApostrophePrefix(s string) bool {
	return strings.HasPrefix(s, "'") || strings.HasPrefix(s, "’")
}

func upperFirstLetter(s string) string {
	for i, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		if unicode.IsUpper(r) {
			return s
		}
		size := utf8.RuneLen(r)
		return s[:i] + cases.Upper(language.French).String(s[i:i+size]) + s[i+size:]
	}
	return s
}
