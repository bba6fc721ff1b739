// Package testutil builds in-memory GTFS static feeds for tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
)

type ZipBuilder struct {
	m map[string]string
}

// NewZipBuilder returns a builder with header-only versions of every file the static reader requires.
func NewZipBuilder() *ZipBuilder {
	return (&ZipBuilder{m: map[string]string{}}).Add(
		"agency.txt", "agency_id,agency_name,agency_url,agency_timezone",
	).Add(
		"routes.txt", "route_id,route_type",
	).Add(
		"stops.txt", "stop_id",
	).Add(
		"trips.txt", "route_id,service_id,trip_id",
	)
}

// Add sets the content of a file; each argument is one line.
func (z *ZipBuilder) Add(fileName string, lines ...string) *ZipBuilder {
	z.m[fileName] = strings.Join(lines, "\n")
	return z
}

// Remove drops a file from the archive.
func (z *ZipBuilder) Remove(fileName string) *ZipBuilder {
	delete(z.m, fileName)
	return z
}

func (z *ZipBuilder) Build() []byte {
	var b bytes.Buffer
	zipWriter := zip.NewWriter(&b)
	for fileName, fileContent := range z.m {
		fileWriter, err := zipWriter.Create(fileName)
		if err != nil {
			panic(err)
		}
		if _, err := io.Copy(fileWriter, bytes.NewBufferString(fileContent)); err != nil {
			panic(err)
		}
	}
	if err := zipWriter.Close(); err != nil {
		panic(err)
	}
	return b.Bytes()
}

// SankeoFeed returns a small feed shaped like the Sankéo export: lettered and numbered lines,
// named shuttles, a school route and non-numeric stop IDs.
func SankeoFeed() *ZipBuilder {
	return NewZipBuilder().Add(
		"agency.txt",
		"agency_id,agency_name,agency_url,agency_timezone,agency_lang",
		"SANKEO,SANKEO PERPIGNAN,https://www.sankeo.com,Europe/Paris,fr",
	).Add(
		"routes.txt",
		"route_id,agency_id,route_short_name,route_long_name,route_type,route_color,route_text_color",
		"R-A,SANKEO,A,MOULIN A VENT - ST ESTEVE,3,E2001A,FFFFFF",
		"R-2,SANKEO,2,GARE SNCF - CANET PLAGE,3,,",
		"R-2-EXP,SANKEO,2EXP,GARE SNCF - AV. DU LANGUEDOC,3,,",
		"R-NWIL,SANKEO,NWIL,NAVETTE WILSON,3,,",
		"R-21P4,SANKEO,21P4,LYCEE ARAGO,3,,",
		"R-CANET,SANKEO,CANET,CANET'ON,3,,",
	).Add(
		"stops.txt",
		"stop_id,stop_code,stop_name,stop_lat,stop_lon,location_type,parent_station",
		"4210,4210,GARE SNCF,42.6966,2.8795,0,",
		"CATALOGNE_1,,PL. DE CATALOGNE,42.7003,2.8924,0,",
		"STE,,ST ESTEVE,42.7128,2.8444,0,",
		"ENTRANCE_1,,Entrée Gare,42.6967,2.8796,2,4210",
	).Add(
		"trips.txt",
		"route_id,service_id,trip_id,trip_headsign,direction_id",
		"R-A,LAV,T1,aller Saint-Esteve via Centre,0",
		"R-A,LAV,T2,RETOUR MOULIN A VENT,1",
		"R-2,LAV,T3,Gare AM,0",
		"R-2-EXP,LAV,T4,Av. du Languedoc,0",
		"R-21P4,SCO,T5,21P4,0",
		"R-NWIL,LAV,T6,2,0",
	)
}
