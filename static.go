// Package gtfs contains the host data model for GTFS static feeds and a reader for
// the files the agency tools need: agencies, routes, stops and trips.
package gtfs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strconv"

	"github.com/sankeo-tools/gtfs/constants"
	"github.com/sankeo-tools/gtfs/csv"
	"github.com/sankeo-tools/gtfs/warnings"
)

// Static contains the parsed content for a single GTFS static message.
type Static struct {
	Agencies []Agency
	Routes   []Route
	Stops    []Stop
	Trips    []ScheduledTrip

	Warnings []warnings.StaticWarning
}

// Agency corresponds to a single row in the agency.txt file.
type Agency struct {
	Id       string
	Name     string
	Url      string
	Timezone string
	Language string
	Phone    string
}

// Route corresponds to a single row in the routes.txt file.
//
// Color and TextColor are empty when the feed does not provide them.
type Route struct {
	Id          string
	Agency      *Agency
	Color       string
	TextColor   string
	ShortName   string
	LongName    string
	Description string
	Type        RouteType
	SortOrder   *int32
}

// Stop corresponds to a single row in the stops.txt file.
type Stop struct {
	Id           string
	Code         string
	Name         string
	Description  string
	Longitude    *float64
	Latitude     *float64
	Type         StopType
	Parent       *Stop
	PlatformCode string
}

// Root returns the root stop.
func (stop *Stop) Root() *Stop {
	for {
		if stop.Parent == nil {
			return stop
		}
		stop = stop.Parent
	}
}

// ScheduledTrip corresponds to a single row in the trips.txt file.
type ScheduledTrip struct {
	ID          string
	Route       *Route
	ServiceID   string
	Headsign    string
	ShortName   string
	DirectionId DirectionID
	BlockID     string
}

type ParseStaticOptions struct {
	// If set, agencies without an agency_id get this ID instead of one derived from their name.
	DefaultAgencyID string
}

// ParseStatic parses the content as a GTFS static feed.
func ParseStatic(content []byte, opts ParseStaticOptions) (*Static, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return nil, err
	}
	result := &Static{}
	fileNameToFile := map[string]*zip.File{}
	for _, file := range reader.File {
		fileNameToFile[file.Name] = file
	}
	for _, file := range constants.RequiredFiles {
		if fileNameToFile[string(file)] == nil {
			return nil, fmt.Errorf("no %q file in GTFS static feed", file)
		}
	}
	for _, table := range []struct {
		file   constants.StaticFile
		action func(file *csv.File)
	}{
		{
			file: constants.AgencyFile,
			action: func(file *csv.File) {
				result.Agencies = parseAgencies(file, opts, result)
			},
		},
		{
			file: constants.RoutesFile,
			action: func(file *csv.File) {
				result.Routes = parseRoutes(file, result)
			},
		},
		{
			file: constants.StopsFile,
			action: func(file *csv.File) {
				result.Stops = parseStops(file, result)
			},
		},
		{
			file: constants.TripsFile,
			action: func(file *csv.File) {
				result.Trips = parseScheduledTrips(file, result)
			},
		},
	} {
		content, err := fileNameToFile[string(table.file)].Open()
		if err != nil {
			return nil, err
		}
		file, err := csv.New(table.file, content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", table.file, err)
		}
		table.action(file)
		if columns := file.MissingRequiredColumns(); columns != nil {
			result.Warnings = append(result.Warnings, warnings.MissingRequiredColumns{
				FileName: table.file,
				Columns:  columns,
			})
		}
		if err := file.Close(); err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", table.file, err)
		}
	}
	return result, nil
}

func skipRow(file *csv.File, result *Static) bool {
	if file.MissingRequiredColumns() != nil {
		// Reported once for the whole file.
		return true
	}
	missingKeys := file.MissingRowKeys()
	if len(missingKeys) == 0 {
		return false
	}
	result.Warnings = append(result.Warnings, warnings.MissingColumns{
		FileName:    file.Name(),
		RowNumber:   file.RowNumber(),
		MissingKeys: missingKeys,
	})
	return true
}

func parseAgencies(file *csv.File, opts ParseStaticOptions, result *Static) []Agency {
	var agencies []Agency
	idColumn := file.OptionalColumn("agency_id")
	nameColumn := file.RequiredColumn("agency_name")
	urlColumn := file.RequiredColumn("agency_url")
	timezoneColumn := file.RequiredColumn("agency_timezone")
	languageColumn := file.OptionalColumn("agency_lang")
	phoneColumn := file.OptionalColumn("agency_phone")
	for file.NextRow() {
		agency := Agency{
			Id:       idColumn.Read(),
			Name:     nameColumn.Read(),
			Url:      urlColumn.Read(),
			Timezone: timezoneColumn.Read(),
			Language: languageColumn.Read(),
			Phone:    phoneColumn.Read(),
		}
		if skipRow(file, result) {
			continue
		}
		if agency.Id == "" {
			if opts.DefaultAgencyID != "" {
				agency.Id = opts.DefaultAgencyID
			} else {
				agency.Id = fmt.Sprintf("%s_id", agency.Name)
			}
		}
		agencies = append(agencies, agency)
	}
	return agencies
}

func parseRoutes(file *csv.File, result *Static) []Route {
	var routes []Route
	idColumn := file.RequiredColumn("route_id")
	agencyIDColumn := file.OptionalColumn("agency_id")
	colorColumn := file.OptionalColumn("route_color")
	textColorColumn := file.OptionalColumn("route_text_color")
	shortNameColumn := file.OptionalColumn("route_short_name")
	longNameColumn := file.OptionalColumn("route_long_name")
	descriptionColumn := file.OptionalColumn("route_desc")
	typeColumn := file.RequiredColumn("route_type")
	sortOrderColumn := file.OptionalColumn("route_sort_order")
	for file.NextRow() {
		routeID := idColumn.Read()
		agencyID := agencyIDColumn.Read()
		route := Route{
			Id:          routeID,
			Color:       colorColumn.Read(),
			TextColor:   textColorColumn.Read(),
			ShortName:   shortNameColumn.Read(),
			LongName:    longNameColumn.Read(),
			Description: descriptionColumn.Read(),
			Type:        parseRouteType(typeColumn.Read()),
			SortOrder:   parseInt32(sortOrderColumn.Read()),
		}
		if skipRow(file, result) {
			continue
		}
		if agencyID != "" {
			for i := range result.Agencies {
				if result.Agencies[i].Id == agencyID {
					route.Agency = &result.Agencies[i]
					break
				}
			}
		} else if len(result.Agencies) == 1 {
			// In GTFS static if there is a single agency, a route's agency ID field can be omitted in
			// which case the route's agency is the unique agency in the feed.
			route.Agency = &result.Agencies[0]
		}
		if route.Agency == nil {
			result.Warnings = append(result.Warnings, warnings.RouteAgencyNotFound{
				RouteID:  routeID,
				AgencyID: agencyID,
			})
			continue
		}
		routes = append(routes, route)
	}
	return routes
}

func parseStops(file *csv.File, result *Static) []Stop {
	var stops []Stop
	stopIDToIndex := map[string]int{}
	stopIDToParent := map[string]string{}
	idColumn := file.RequiredColumn("stop_id")
	codeColumn := file.OptionalColumn("stop_code")
	nameColumn := file.OptionalColumn("stop_name")
	descriptionColumn := file.OptionalColumn("stop_desc")
	longitudeColumn := file.OptionalColumn("stop_lon")
	latitudeColumn := file.OptionalColumn("stop_lat")
	typeColumn := file.OptionalColumn("location_type")
	parentStationColumn := file.OptionalColumn("parent_station")
	platformCodeColumn := file.OptionalColumn("platform_code")
	for file.NextRow() {
		parentStopID := parentStationColumn.Read()
		stop := Stop{
			Id:           idColumn.Read(),
			Code:         codeColumn.Read(),
			Name:         nameColumn.Read(),
			Description:  descriptionColumn.Read(),
			Longitude:    parseFloat64(longitudeColumn.Read()),
			Latitude:     parseFloat64(latitudeColumn.Read()),
			Type:         parseStopType(typeColumn.Read(), parentStopID != ""),
			PlatformCode: platformCodeColumn.Read(),
		}
		if skipRow(file, result) {
			continue
		}
		stopIDToIndex[stop.Id] = len(stops)
		if parentStopID != "" {
			stopIDToParent[stop.Id] = parentStopID
		}
		stops = append(stops, stop)
	}
	for stopID, parentStopID := range stopIDToParent {
		parentStopIndex, ok := stopIDToIndex[parentStopID]
		if !ok {
			continue
		}
		stops[stopIDToIndex[stopID]].Parent = &stops[parentStopIndex]
	}
	return stops
}

func parseScheduledTrips(file *csv.File, result *Static) []ScheduledTrip {
	routeIDToRoute := map[string]*Route{}
	for i := range result.Routes {
		routeIDToRoute[result.Routes[i].Id] = &result.Routes[i]
	}
	var trips []ScheduledTrip
	routeIDColumn := file.RequiredColumn("route_id")
	serviceIDColumn := file.RequiredColumn("service_id")
	tripIDColumn := file.RequiredColumn("trip_id")
	headsignColumn := file.OptionalColumn("trip_headsign")
	shortNameColumn := file.OptionalColumn("trip_short_name")
	directionIDColumn := file.OptionalColumn("direction_id")
	blockIDColumn := file.OptionalColumn("block_id")
	for file.NextRow() {
		routeID := routeIDColumn.Read()
		trip := ScheduledTrip{
			ID:          tripIDColumn.Read(),
			ServiceID:   serviceIDColumn.Read(),
			Headsign:    headsignColumn.Read(),
			ShortName:   shortNameColumn.Read(),
			DirectionId: parseDirectionID(directionIDColumn.Read()),
			BlockID:     blockIDColumn.Read(),
		}
		if skipRow(file, result) {
			continue
		}
		route, ok := routeIDToRoute[routeID]
		if !ok {
			result.Warnings = append(result.Warnings, warnings.TripRouteNotFound{
				TripID:  trip.ID,
				RouteID: routeID,
			})
			continue
		}
		trip.Route = route
		trips = append(trips, trip)
	}
	return trips
}

func parseFloat64(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt32(raw string) *int32 {
	if raw == "" {
		return nil
	}
	i, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil
	}
	i32 := int32(i)
	return &i32
}
