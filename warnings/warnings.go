// Package warnings contains the non-fatal problems found while reading and importing a feed.
package warnings

import (
	"fmt"

	"github.com/sankeo-tools/gtfs/constants"
)

type StaticWarning interface {
	File() constants.StaticFile
	Error() string
}

type MissingColumns struct {
	FileName    constants.StaticFile
	RowNumber   int
	MissingKeys []string
}

func (w MissingColumns) File() constants.StaticFile {
	return w.FileName
}

func (w MissingColumns) Error() string {
	return fmt.Sprintf("skipping row %d because of missing columns %s", w.RowNumber, w.MissingKeys)
}

// MissingRequiredColumns is reported once for a file whose header lacks required columns.
// Every row of the file is skipped.
type MissingRequiredColumns struct {
	FileName constants.StaticFile
	Columns  []string
}

func (w MissingRequiredColumns) File() constants.StaticFile {
	return w.FileName
}

func (w MissingRequiredColumns) Error() string {
	return fmt.Sprintf("skipping all rows because of missing required columns %s", w.Columns)
}

type RouteAgencyNotFound struct {
	RouteID  string
	AgencyID string
}

func (w RouteAgencyNotFound) File() constants.StaticFile {
	return constants.RoutesFile
}

func (w RouteAgencyNotFound) Error() string {
	if w.AgencyID == "" {
		return fmt.Sprintf("skipping route %q: no agency ID provided but no unique agency", w.RouteID)
	}
	return fmt.Sprintf("skipping route %q: no match for agency ID %q", w.RouteID, w.AgencyID)
}

type TripRouteNotFound struct {
	TripID  string
	RouteID string
}

func (w TripRouteNotFound) File() constants.StaticFile {
	return constants.TripsFile
}

func (w TripRouteNotFound) Error() string {
	return fmt.Sprintf("skipping trip %q: no match for route ID %q", w.TripID, w.RouteID)
}

type RouteIDUnresolved struct {
	RouteID   string
	ShortName string
	Err       error
}

func (w RouteIDUnresolved) File() constants.StaticFile {
	return constants.RoutesFile
}

func (w RouteIDUnresolved) Error() string {
	return fmt.Sprintf("skipping route %q (short name %q): %s", w.RouteID, w.ShortName, w.Err)
}

func (w RouteIDUnresolved) Unwrap() error {
	return w.Err
}

type RouteIDCollision struct {
	ID                int64
	ShortName         string
	ExistingShortName string
}

func (w RouteIDCollision) File() constants.StaticFile {
	return constants.RoutesFile
}

func (w RouteIDCollision) Error() string {
	return fmt.Sprintf("skipping route %q: ID %d already used by route %q", w.ShortName, w.ID, w.ExistingShortName)
}

type StopIDUnresolved struct {
	StopID string
	Err    error
}

func (w StopIDUnresolved) File() constants.StaticFile {
	return constants.StopsFile
}

func (w StopIDUnresolved) Error() string {
	return fmt.Sprintf("skipping stop %q: %s", w.StopID, w.Err)
}

func (w StopIDUnresolved) Unwrap() error {
	return w.Err
}

type StopIDCollision struct {
	ID             int64
	StopID         string
	ExistingStopID string
}

func (w StopIDCollision) File() constants.StaticFile {
	return constants.StopsFile
}

func (w StopIDCollision) Error() string {
	return fmt.Sprintf("skipping stop %q: ID %d already used by stop %q", w.StopID, w.ID, w.ExistingStopID)
}

// NonDescriptiveHeadsign is reported for trips whose cleaned headsign does not tell riders where the trip goes.
type NonDescriptiveHeadsign struct {
	TripID   string
	Headsign string
}

func (w NonDescriptiveHeadsign) File() constants.StaticFile {
	return constants.TripsFile
}

func (w NonDescriptiveHeadsign) Error() string {
	return fmt.Sprintf("trip %q has a non-descriptive headsign %q", w.TripID, w.Headsign)
}
