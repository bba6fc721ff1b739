package routeid

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// SchoolRouteThreshold is the largest ID that is not a school route.
const SchoolRouteThreshold int64 = 20000

// IsSchoolRoute reports whether the route only runs on school days.
func IsSchoolRoute(routeID int64) bool {
	return routeID > SchoolRouteThreshold
}

// SchoolRouteRegex matches school route short names like 12P3.
var SchoolRouteRegex = regexp.MustCompile(`(?i)^([0-9]+)P([0-9]+)$`)

// Fallback is the strategy used when no agency rule applies. Converter is the default.
type Fallback interface {
	RouteID(shortName string, nextChars NextCharsFunc) (int64, error)
	NextChars(token string) (int64, error)
}

// Options configures a Resolver.
type Options struct {
	// Named maps exact short names to IDs. It takes precedence over every other rule.
	Named map[string]int64
	// Suffixes maps tokens following a route number to markers, composed with EndsWith(Other(marker)).
	Suffixes map[string]int64
	Fallback Fallback
	Logger   *log.Logger
}

// Resolver resolves route IDs for one agency. It is immutable after New and safe for concurrent use.
type Resolver struct {
	named    map[string]int64
	suffixes map[string]int64
	fallback Fallback
	logger   *log.Logger
}

// New validates the tables and builds a resolver.
func New(opts Options) (*Resolver, error) {
	r := &Resolver{
		named:    make(map[string]int64, len(opts.Named)),
		suffixes: make(map[string]int64, len(opts.Suffixes)),
		fallback: opts.Fallback,
		logger:   opts.Logger,
	}
	if r.fallback == nil {
		r.fallback = Converter{}
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	idToName := map[int64]string{}
	for name, id := range opts.Named {
		if name == "" {
			return nil, fmt.Errorf("empty short name in route table")
		}
		if id <= 0 {
			return nil, fmt.Errorf("route %q has non-positive ID %d", name, id)
		}
		if other, ok := idToName[id]; ok {
			return nil, fmt.Errorf("routes %q and %q both map to ID %d", name, other, id)
		}
		if SchoolRouteRegex.MatchString(name) {
			return nil, fmt.Errorf("route %q in the route table is shaped like a school route", name)
		}
		idToName[id] = name
		r.named[name] = id
	}
	markerToToken := map[int64]string{}
	for token, marker := range opts.Suffixes {
		upper := strings.ToUpper(token)
		if _, ok := r.suffixes[upper]; ok {
			return nil, fmt.Errorf("suffix %q is defined twice", upper)
		}
		if !isLetters(upper) {
			return nil, fmt.Errorf("suffix %q is not alphabetic", token)
		}
		if marker <= 0 || Other(marker) > MaxMarker {
			return nil, fmt.Errorf("suffix %q has marker %d outside of [1, %d]", token, marker, MaxMarker-otherMarkerOffset)
		}
		if other, ok := markerToToken[marker]; ok {
			return nil, fmt.Errorf("suffixes %q and %q both use marker %d", token, other, marker)
		}
		markerToToken[marker] = token
		r.suffixes[upper] = marker
	}
	return r, nil
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// ResolveSuffix returns the ID offset for a token following a route number.
func (r *Resolver) ResolveSuffix(token string) (int64, error) {
	if marker, ok := r.suffixes[strings.ToUpper(token)]; ok {
		return EndsWith(Other(marker)), nil
	}
	return r.fallback.NextChars(token)
}

// RouteID resolves a short name: the named table first, then the school route pattern,
// then the fallback strategy.
func (r *Resolver) RouteID(shortName string) (int64, error) {
	if id, ok := r.named[shortName]; ok {
		return id, nil
	}
	if id, ok := r.schoolRouteID(shortName); ok {
		return id, nil
	}
	return r.fallback.RouteID(shortName, r.ResolveSuffix)
}

// schoolRouteID maps NPM to N*1000+M.
//
// A variant M of 1000 or more is not composed: N*1000+M would alias the ID of another
// route number, so the short name is logged and left to the fallback, which rejects it.
// The same applies to overflowing numbers and to names like 0P0 that would give a
// non-positive ID.
func (r *Resolver) schoolRouteID(shortName string) (int64, bool) {
	match := SchoolRouteRegex.FindStringSubmatch(shortName)
	if match == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		r.logger.Printf("school route %q: invalid route number: %s", shortName, err)
		return 0, false
	}
	m, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil {
		r.logger.Printf("school route %q: invalid variant number: %s", shortName, err)
		return 0, false
	}
	if m >= 1000 {
		r.logger.Printf("school route %q: variant number %d does not fit in three digits", shortName, m)
		return 0, false
	}
	if n > (math.MaxInt64-m)/1000 {
		r.logger.Printf("school route %q: ID overflows", shortName)
		return 0, false
	}
	id := n*1000 + m
	if id <= 0 {
		r.logger.Printf("school route %q: ID %d is not positive", shortName, id)
		return 0, false
	}
	return id, true
}
