// Package config holds agency profiles: the static data that customizes how a feed is imported.
//
// A profile is a plain value passed to the agency tools, so alternate profiles can be
// loaded from YAML or built in tests without touching package state.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/sankeo-tools/gtfs"
	"gopkg.in/yaml.v3"
)

// Profile describes one agency.
type Profile struct {
	Name string `yaml:"name" validate:"required"`
	// Color is a hex RGB color without the leading '#'.
	Color string `yaml:"color" validate:"rgbhex"`
	// RouteType is a GTFS route type name like "bus" or "TROLLEY_BUS", in any case.
	RouteType string   `yaml:"routeType" validate:"required,routetype"`
	Languages []string `yaml:"languages" validate:"dive,len=2,alpha"`
	// Acronyms keep their canonical casing in cleaned labels.
	Acronyms []string `yaml:"acronyms" validate:"dive,required"`
	// RouteIDs maps route short names to fixed route IDs. Matching is exact and case-sensitive.
	RouteIDs map[string]int64 `yaml:"routeIDs" validate:"dive,keys,required,endkeys,gt=0"`
	// RouteSuffixes maps tokens following a route number, like "EXP", to a marker.
	RouteSuffixes map[string]int64 `yaml:"routeSuffixes" validate:"dive,keys,required,alpha,endkeys,gt=0"`
}

var hexColorRegex = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// The validator's hexcolor tag requires a leading '#', which GTFS colors never have.
	if err := v.RegisterValidation("rgbhex", func(fl validator.FieldLevel) bool {
		return hexColorRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("routetype", func(fl validator.FieldLevel) bool {
		_, ok := gtfs.ParseRouteTypeName(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks the field constraints of the profile.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile %q: %w", p.Name, err)
	}
	return nil
}

// Load reads a YAML profile from path on top of base and validates the result.
//
// Scalars and lists present in the file replace the base values; map entries are merged
// into the base maps, so a file can add or remap a single route.
func Load(path string, base Profile) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return Parse(data, base)
}

// Parse is Load for in-memory YAML.
func Parse(data []byte, base Profile) (Profile, error) {
	p := base.Clone()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Clone returns a deep copy, so that decoding into the copy leaves the original maps untouched.
func (p Profile) Clone() Profile {
	c := p
	c.Languages = append([]string(nil), p.Languages...)
	c.Acronyms = append([]string(nil), p.Acronyms...)
	c.RouteIDs = cloneMap(p.RouteIDs)
	c.RouteSuffixes = cloneMap(p.RouteSuffixes)
	return c
}

func cloneMap(m map[string]int64) map[string]int64 {
	if m == nil {
		return nil
	}
	c := make(map[string]int64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
