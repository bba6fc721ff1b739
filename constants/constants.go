package constants

type StaticFile string

const (
	AgencyFile StaticFile = "agency.txt"
	RoutesFile StaticFile = "routes.txt"
	StopsFile  StaticFile = "stops.txt"
	TripsFile  StaticFile = "trips.txt"
)

// RequiredFiles lists the files the static reader needs, in parse order.
var RequiredFiles = []StaticFile{AgencyFile, RoutesFile, StopsFile, TripsFile}
