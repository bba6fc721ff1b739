// Package routeid derives stable numeric route IDs from route short names.
//
// IDs are composed from a base route number and optional markers for letters around it:
//
//	12    -> 12
//	12B   -> 12 + EndsWith(2)       = 200_012
//	12EXP -> 12 + EndsWith(Other(1)) = 2_700_012
//	C12   -> 12 + StartsWith(3)     = 30_000_012
//
// Agencies add a table of named routes and extra suffix tokens on top of this scheme with a Resolver.
package routeid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// NextCharsMultiplier places a suffix marker above the digits of the base route number.
	NextCharsMultiplier int64 = 100_000
	// PreviousCharsMultiplier places a prefix marker above any suffix marker.
	PreviousCharsMultiplier int64 = 10_000_000
	// MaxBaseNumber is the largest route number that can be combined with markers.
	MaxBaseNumber int64 = NextCharsMultiplier - 1

	// Single letters use markers 1-26, other tokens start above them.
	otherMarkerOffset int64 = 26
	// MaxMarker keeps a suffix marker below the prefix digits.
	MaxMarker int64 = PreviousCharsMultiplier/NextCharsMultiplier - 1
)

// ErrUnsupported is returned when a short name cannot be turned into an ID.
var ErrUnsupported = errors.New("unsupported route short name")

// EndsWith returns the offset encoding a marker that follows the route number.
func EndsWith(marker int64) int64 {
	return marker * NextCharsMultiplier
}

// StartsWith returns the offset encoding a marker that precedes the route number.
func StartsWith(marker int64) int64 {
	return marker * PreviousCharsMultiplier
}

// Other returns the marker for the n-th multi-letter token of an agency.
func Other(n int64) int64 {
	return otherMarkerOffset + n
}

// Letter returns the marker for a single letter token: A is 1, Z is 26.
func Letter(token string) (int64, bool) {
	if len(token) != 1 {
		return 0, false
	}
	c := strings.ToUpper(token)[0]
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return int64(c-'A') + 1, true
}

// NextCharsFunc resolves the token following a route number into an ID offset.
type NextCharsFunc func(token string) (int64, error)

var shortNameRegex = regexp.MustCompile(`^([A-Za-z]*)([0-9]+)([A-Za-z]*)$`)

// Converter is the default short name strategy: a route number with an optional letter
// prefix and an optional suffix token.
type Converter struct{}

// RouteID converts a short name, resolving suffix tokens with nextChars.
func (Converter) RouteID(shortName string, nextChars NextCharsFunc) (int64, error) {
	match := shortNameRegex.FindStringSubmatch(shortName)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupported, shortName)
	}
	id, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: route number in %q: %s", ErrUnsupported, shortName, err)
	}
	if match[1] == "" && match[3] == "" {
		if id <= 0 {
			return 0, fmt.Errorf("%w: route number in %q is not positive", ErrUnsupported, shortName)
		}
		return id, nil
	}
	if id > MaxBaseNumber {
		return 0, fmt.Errorf("%w: route number in %q is too large to carry markers", ErrUnsupported, shortName)
	}
	if previousChars := match[1]; previousChars != "" {
		marker, ok := Letter(previousChars)
		if !ok {
			return 0, fmt.Errorf("%w: prefix %q in %q", ErrUnsupported, previousChars, shortName)
		}
		id += StartsWith(marker)
	}
	if token := match[3]; token != "" {
		if nextChars == nil {
			nextChars = Converter{}.NextChars
		}
		offset, err := nextChars(strings.ToUpper(token))
		if err != nil {
			return 0, fmt.Errorf("suffix of %q: %w", shortName, err)
		}
		id += offset
	}
	return id, nil
}

// NextChars resolves single letter suffixes.
func (Converter) NextChars(token string) (int64, error) {
	marker, ok := Letter(token)
	if !ok {
		return 0, fmt.Errorf("%w: suffix %q", ErrUnsupported, token)
	}
	return EndsWith(marker), nil
}
