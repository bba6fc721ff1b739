// Package sankeo contains the agency tools for Sankéo, the bus network of Perpignan.
//
// Feed: https://transport.data.gouv.fr/datasets/gtfs-sankeo
package sankeo

import (
	"fmt"
	"log"

	"github.com/sankeo-tools/gtfs"
	"github.com/sankeo-tools/gtfs/agency"
	"github.com/sankeo-tools/gtfs/cleanup"
	"github.com/sankeo-tools/gtfs/config"
	"github.com/sankeo-tools/gtfs/routeid"
	"github.com/sankeo-tools/gtfs/stopid"
)

var profile = config.Profile{
	Name:      "Sankéo",
	Color:     "00A9CE",
	RouteType: "bus",
	Languages: []string{"fr"},
	Acronyms:  []string{"TGV", "SNCF", "HLM", "IUT", "ZI", "ZA", "ZAC", "CFA", "UPVD"},
	RouteIDs: map[string]int64{
		"A":               1000,
		"B":               2000,
		"C":               3000,
		"D":               4000,
		"CANET":           9000,
		"CANET'ON D'ETE":  9001,
		"NAV RAYONNANTES": 9002,
		"NCMI":            9003,
		"NAV DECOUVERTE":  9004,
		"NITB":            9005,
		"NCAN":            9006,
		"NPTB":            9007,
		"P'TIT BUS":       9008,
		"NWIL":            9009,
		"NCAB":            9010,
		"NSAL":            9011,
		"NAV PLAGES":      9012,
		"NAV AEROPORT":    9013,
	},
	RouteSuffixes: map[string]int64{
		"EXP": 1,
		"EX":  2,
	},
}

// Profile returns a copy of the built-in Sankéo profile.
func Profile() config.Profile {
	return profile.Clone()
}

// ToolsOpts contains the options for the Sankéo tools.
type ToolsOpts struct {
	// Logger receives non-fatal route ID problems. Defaults to the standard logger.
	Logger *log.Logger
}

// New returns the Sankéo tools for the given profile, usually Profile().
func New(p config.Profile, opts ToolsOpts) (agency.Tools, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	routes, err := routeid.New(routeid.Options{
		Named:    p.RouteIDs,
		Suffixes: p.RouteSuffixes,
		Logger:   opts.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid route table in profile %q: %w", p.Name, err)
	}
	normalizer := cleanup.NewNormalizer(p.Acronyms)
	return tools{
		DefaultTools:  agency.DefaultTools{Profile: p},
		routes:        routes,
		headsign:      normalizer.TripHeadsign(),
		stopName:      normalizer.StopName(),
		routeLongName: normalizer.RouteLongName(),
	}, nil
}

type tools struct {
	agency.DefaultTools

	routes        *routeid.Resolver
	headsign      cleanup.Pipeline
	stopName      cleanup.Pipeline
	routeLongName cleanup.Pipeline
}

// RouteID uses the route short name, which stays stable across feed updates while route_id does not.
func (t tools) RouteID(route *gtfs.Route) (int64, error) {
	if route.ShortName == "" {
		return t.DefaultTools.RouteID(route)
	}
	return t.routes.RouteID(route.ShortName)
}

// StopID accepts the non-numeric stop IDs found in the feed.
func (t tools) StopID(stop *gtfs.Stop) (int64, error) {
	return stopid.Resolve(stop.Id), nil
}

func (t tools) CleanRouteLongName(longName string) string {
	return t.routeLongName.Apply(longName)
}

func (t tools) CleanTripHeadsign(headsign string) string {
	return t.headsign.Apply(headsign)
}

func (t tools) CleanStopName(name string) string {
	return t.stopName.Apply(name)
}

func (t tools) IsSchoolRoute(routeID int64) bool {
	return routeid.IsSchoolRoute(routeID)
}
