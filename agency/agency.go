// Package agency defines the hooks through which an agency customizes a feed import.
package agency

import (
	"fmt"
	"strconv"

	"github.com/sankeo-tools/gtfs"
	"github.com/sankeo-tools/gtfs/cleanup"
	"github.com/sankeo-tools/gtfs/config"
)

// Tools are the hooks the importer calls to turn an agency feed into numeric IDs and rider-facing labels.
type Tools interface {
	AgencyName() string
	// AgencyColor is a hex RGB color without the leading '#'.
	AgencyColor() string
	AgencyRouteType() gtfs.RouteType
	Languages() []string

	RouteID(route *gtfs.Route) (int64, error)
	StopID(stop *gtfs.Stop) (int64, error)

	CleanRouteLongName(longName string) string
	CleanTripHeadsign(headsign string) string
	CleanStopName(name string) string

	// IsSchoolRoute reports whether non-descriptive headsigns are tolerated on the route.
	IsSchoolRoute(routeID int64) bool
}

// DefaultTools implements Tools with the behavior agencies inherit: numeric GTFS IDs are used
// as they are and labels only get whitespace cleanup. Agencies embed it and override hooks.
type DefaultTools struct {
	Profile config.Profile
}

func (d DefaultTools) AgencyName() string {
	return d.Profile.Name
}

func (d DefaultTools) AgencyColor() string {
	return d.Profile.Color
}

func (d DefaultTools) AgencyRouteType() gtfs.RouteType {
	t, ok := gtfs.ParseRouteTypeName(d.Profile.RouteType)
	if !ok {
		return gtfs.RouteType_Unknown
	}
	return t
}

func (d DefaultTools) Languages() []string {
	return d.Profile.Languages
}

func (d DefaultTools) RouteID(route *gtfs.Route) (int64, error) {
	id, err := strconv.ParseInt(route.Id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("route ID %q is not numeric", route.Id)
	}
	if id <= 0 {
		return 0, fmt.Errorf("route ID %q is not positive", route.Id)
	}
	return id, nil
}

func (d DefaultTools) StopID(stop *gtfs.Stop) (int64, error) {
	id, err := strconv.ParseInt(stop.Id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("stop ID %q is not numeric", stop.Id)
	}
	return id, nil
}

func (d DefaultTools) CleanRouteLongName(longName string) string {
	return cleanup.CleanLabel(longName)
}

func (d DefaultTools) CleanTripHeadsign(headsign string) string {
	return cleanup.CleanLabel(headsign)
}

func (d DefaultTools) CleanStopName(name string) string {
	return cleanup.CleanLabel(name)
}

func (d DefaultTools) IsSchoolRoute(routeID int64) bool {
	return false
}
