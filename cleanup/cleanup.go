// Package cleanup turns raw feed text into labels fit for riders.
//
// Every step is a pure string transform. Steps are chained into pipelines whose order
// matters: later steps assume the text was already normalized by earlier ones.
package cleanup

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Step is a single text transform.
type Step func(string) string

// Pipeline applies its steps in order.
type Pipeline []Step

// Apply runs every step on s.
func (p Pipeline) Apply(s string) string {
	for _, step := range p {
		s = step(s)
	}
	return s
}

// Normalizer holds the agency specific vocabulary used by the cleanup steps.
type Normalizer struct {
	acronyms map[string]string
}

// NewNormalizer builds a normalizer. Acronyms are given in their canonical casing.
func NewNormalizer(acronyms []string) *Normalizer {
	n := &Normalizer{acronyms: map[string]string{}}
	for _, acronym := range acronyms {
		n.acronyms[fold(acronym)] = acronym
	}
	return n
}

// FixAcronyms gives allow-listed acronyms their canonical casing.
func (n *Normalizer) FixAcronyms(s string) string {
	return replaceWords(s, n.acronyms, false)
}

// CleanLabelFR is CleanLabel plus French casing: shouted words are title-cased,
// particles are lowercased and the label starts with a capital.
func (n *Normalizer) CleanLabelFR(s string) string {
	s = CleanLabel(s)
	s = mapWords(s, func(i int, word, next string) (string, bool) {
		folded := fold(word)
		if i > 0 && (frenchParticles[folded] || (frenchElisions[folded] && hasApostrophePrefix(next))) {
			return cases.Lower(language.French).String(word), false
		}
		if _, ok := n.acronyms[folded]; ok {
			return word, false
		}
		if isAllCapsWord(word) && !romanNumeralRegex.MatchString(word) {
			return cases.Title(language.French).String(word), false
		}
		return word, false
	})
	return upperFirstLetter(s)
}

// TripHeadsign returns the full pipeline.
func (n *Normalizer) TripHeadsign() Pipeline {
	return Pipeline{
		ComposeUnicode,
		n.FixAcronyms,
		RemoveDirectionMarkers,
		ExpandTimeOfDay,
		RemoveVia,
		Saint,
		StreetTypesFRCA,
		n.CleanLabelFR,
	}
}

// StopName returns the stop name pipeline, which keeps via and time of day words.
func (n *Normalizer) StopName() Pipeline {
	return Pipeline{
		ComposeUnicode,
		n.FixAcronyms,
		Saint,
		StreetTypesFRCA,
		n.CleanLabelFR,
	}
}

// RouteLongName returns the route long name pipeline.
func (n *Normalizer) RouteLongName() Pipeline {
	return Pipeline{
		ComposeUnicode,
		n.FixAcronyms,
		Saint,
		StreetTypesFRCA,
		n.CleanLabelFR,
	}
}
