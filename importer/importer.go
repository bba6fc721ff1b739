// Package importer applies agency tools to a parsed GTFS static feed.
//
// The result carries the numeric IDs and cleaned labels that downstream consumers store,
// plus the warnings for everything that had to be skipped.
package importer

import (
	"errors"
	"strings"

	"github.com/sankeo-tools/gtfs"
	"github.com/sankeo-tools/gtfs/agency"
	"github.com/sankeo-tools/gtfs/stopid"
	"github.com/sankeo-tools/gtfs/warnings"
)

// ErrNoAgency is returned for feeds whose agency.txt has no usable row.
var ErrNoAgency = errors.New("feed has no agency")

// Feed is the imported form of a GTFS static feed.
type Feed struct {
	Agency   Agency
	Routes   []Route
	Stops    []Stop
	Trips    []Trip
	Warnings []warnings.StaticWarning
}

// Agency is the imported agency, with display fields taken from the agency tools.
type Agency struct {
	ID        string
	Name      string
	Color     string
	Url       string
	Timezone  string
	Languages []string
}

// Route is one imported route. GTFS routes sharing a short name are merged into it.
type Route struct {
	ID        int64
	ShortName string
	LongName  string
	Color     string
	TextColor string
	Type      gtfs.RouteType
	// GTFSIDs lists the feed routes merged into this route, in feed order.
	GTFSIDs []string
}

// Stop is one imported boardable stop.
type Stop struct {
	ID        int64
	GTFSID    string
	Code      string
	Name      string
	Latitude  *float64
	Longitude *float64
}

// Trip is one imported trip with its cleaned headsign.
type Trip struct {
	GTFSID      string
	RouteID     int64
	ServiceID   string
	Headsign    string
	DirectionID gtfs.DirectionID
}

// Import resolves IDs and cleans labels. Only the first agency of the feed is imported.
func Import(static *gtfs.Static, tools agency.Tools) (*Feed, error) {
	if len(static.Agencies) == 0 {
		return nil, ErrNoAgency
	}
	feed := &Feed{
		Agency:   importAgency(&static.Agencies[0], tools),
		Warnings: append([]warnings.StaticWarning(nil), static.Warnings...),
	}
	routeIDs := importRoutes(static.Routes, tools, feed)
	importStops(static.Stops, tools, feed)
	importTrips(static.Trips, routeIDs, tools, feed)
	return feed, nil
}

func importAgency(a *gtfs.Agency, tools agency.Tools) Agency {
	name := tools.AgencyName()
	if name == "" {
		name = a.Name
	}
	return Agency{
		ID:        a.Id,
		Name:      name,
		Color:     tools.AgencyColor(),
		Url:       a.Url,
		Timezone:  a.Timezone,
		Languages: tools.Languages(),
	}
}

// importRoutes returns the numeric ID of every imported GTFS route.
func importRoutes(routes []gtfs.Route, tools agency.Tools, feed *Feed) map[string]int64 {
	gtfsIDToID := map[string]int64{}
	idToIndex := map[int64]int{}
	for i := range routes {
		route := &routes[i]
		id, err := tools.RouteID(route)
		if err != nil {
			feed.Warnings = append(feed.Warnings, warnings.RouteIDUnresolved{
				RouteID:   route.Id,
				ShortName: route.ShortName,
				Err:       err,
			})
			continue
		}
		if j, ok := idToIndex[id]; ok {
			existing := &feed.Routes[j]
			if existing.ShortName != route.ShortName {
				feed.Warnings = append(feed.Warnings, warnings.RouteIDCollision{
					ID:                id,
					ShortName:         route.ShortName,
					ExistingShortName: existing.ShortName,
				})
				continue
			}
			existing.GTFSIDs = append(existing.GTFSIDs, route.Id)
			gtfsIDToID[route.Id] = id
			continue
		}
		color := route.Color
		if color == "" {
			color = tools.AgencyColor()
		}
		routeType := route.Type
		if routeType == gtfs.RouteType_Unknown {
			routeType = tools.AgencyRouteType()
		}
		idToIndex[id] = len(feed.Routes)
		gtfsIDToID[route.Id] = id
		feed.Routes = append(feed.Routes, Route{
			ID:        id,
			ShortName: route.ShortName,
			LongName:  tools.CleanRouteLongName(route.LongName),
			Color:     color,
			TextColor: route.TextColor,
			Type:      routeType,
			GTFSIDs:   []string{route.Id},
		})
	}
	return gtfsIDToID
}

func importStops(stops []gtfs.Stop, tools agency.Tools, feed *Feed) {
	idToGTFSID := map[int64]string{}
	for i := range stops {
		stop := &stops[i]
		if !stop.Type.IsBoardable() {
			continue
		}
		id, err := tools.StopID(stop)
		if err != nil {
			feed.Warnings = append(feed.Warnings, warnings.StopIDUnresolved{
				StopID: stop.Id,
				Err:    err,
			})
			continue
		}
		if existing, ok := idToGTFSID[id]; ok {
			feed.Warnings = append(feed.Warnings, warnings.StopIDCollision{
				ID:             id,
				StopID:         stop.Id,
				ExistingStopID: existing,
			})
			continue
		}
		idToGTFSID[id] = stop.Id
		feed.Stops = append(feed.Stops, Stop{
			ID:        id,
			GTFSID:    stop.Id,
			Code:      stop.Code,
			Name:      tools.CleanStopName(stop.Name),
			Latitude:  stop.Latitude,
			Longitude: stop.Longitude,
		})
	}
}

func importTrips(trips []gtfs.ScheduledTrip, routeIDs map[string]int64, tools agency.Tools, feed *Feed) {
	for i := range trips {
		trip := &trips[i]
		routeID, ok := routeIDs[trip.Route.Id]
		if !ok {
			// The route was skipped and already reported.
			continue
		}
		headsign := tools.CleanTripHeadsign(trip.Headsign)
		if isNonDescriptive(headsign, trip.Route.ShortName) && !tools.IsSchoolRoute(routeID) {
			feed.Warnings = append(feed.Warnings, warnings.NonDescriptiveHeadsign{
				TripID:   trip.ID,
				Headsign: headsign,
			})
		}
		feed.Trips = append(feed.Trips, Trip{
			GTFSID:      trip.ID,
			RouteID:     routeID,
			ServiceID:   trip.ServiceID,
			Headsign:    headsign,
			DirectionID: trip.DirectionId,
		})
	}
}

// isNonDescriptive reports whether a headsign fails to name a destination: it is empty,
// repeats the route short name or is only a number.
func isNonDescriptive(headsign, routeShortName string) bool {
	return headsign == "" ||
		strings.EqualFold(headsign, routeShortName) ||
		stopid.IsDigitsOnly(headsign)
}
