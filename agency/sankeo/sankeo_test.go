package sankeo

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/sankeo-tools/gtfs"
	"github.com/sankeo-tools/gtfs/routeid"
	"github.com/sankeo-tools/gtfs/stopid"
)

func newTools(t *testing.T) (*bytes.Buffer, func(string) (int64, error)) {
	t.Helper()
	var logs bytes.Buffer
	tools, err := New(Profile(), ToolsOpts{Logger: log.New(&logs, "", 0)})
	if err != nil {
		t.Fatalf("New() failed: %s", err)
	}
	return &logs, func(shortName string) (int64, error) {
		return tools.RouteID(&gtfs.Route{Id: "R-" + shortName, ShortName: shortName})
	}
}

func TestRouteID(t *testing.T) {
	_, routeID := newTools(t)
	for _, tc := range []struct {
		shortName string
		want      int64
	}{
		{"A", 1000},
		{"B", 2000},
		{"D", 4000},
		{"CANET", 9000},
		{"CANET'ON D'ETE", 9001},
		{"NITB", 9005},
		{"NWIL", 9009},
		{"NAV AEROPORT", 9013},
		{"2", 2},
		{"12", 12},
		{"12B", 200_012},
		{"12EXP", 2_700_012},
		{"12exp", 2_700_012},
		{"12EX", 2_800_012},
		{"C12", 30_000_012},
		{"12P3", 12_003},
		{"1P1", 1_001},
		{"21p4", 21_004},
	} {
		t.Run(tc.shortName, func(t *testing.T) {
			got, err := routeID(tc.shortName)
			if err != nil {
				t.Fatalf("RouteID(%q) failed: %s", tc.shortName, err)
			}
			if got != tc.want {
				t.Errorf("RouteID(%q) = %d, want %d", tc.shortName, got, tc.want)
			}
		})
	}
}

func TestRouteID_Unsupported(t *testing.T) {
	_, routeID := newTools(t)
	for _, shortName := range []string{"a", "nwil", "12XYZ", "AB12", "NAV", "12-B"} {
		t.Run(shortName, func(t *testing.T) {
			_, err := routeID(shortName)
			if !errors.Is(err, routeid.ErrUnsupported) {
				t.Errorf("RouteID(%q) error = %v, want %v", shortName, err, routeid.ErrUnsupported)
			}
		})
	}
}

func TestRouteID_SchoolRouteTooLongFallsBack(t *testing.T) {
	logs, routeID := newTools(t)
	if _, err := routeID("1P1000"); err == nil {
		t.Errorf("RouteID(1P1000) succeeded, want error")
	}
	if logs.Len() == 0 {
		t.Errorf("expected the school route failure to be logged")
	}
}

func TestRouteID_NoShortName(t *testing.T) {
	tools, err := New(Profile(), ToolsOpts{})
	if err != nil {
		t.Fatalf("New() failed: %s", err)
	}
	got, err := tools.RouteID(&gtfs.Route{Id: "77"})
	if err != nil {
		t.Fatalf("RouteID() failed: %s", err)
	}
	if got != 77 {
		t.Errorf("RouteID() = %d, want 77", got)
	}
}

func TestStopID(t *testing.T) {
	tools, err := New(Profile(), ToolsOpts{})
	if err != nil {
		t.Fatalf("New() failed: %s", err)
	}
	for _, tc := range []struct {
		stopID string
		want   int64
	}{
		{"4210", 4210},
		{"0042", 42},
		{"CATALOGNE_1", stopid.Hash("CATALOGNE_1")},
		{"99999999999999999999", stopid.Hash("99999999999999999999")},
	} {
		got, err := tools.StopID(&gtfs.Stop{Id: tc.stopID})
		if err != nil {
			t.Errorf("StopID(%q) failed: %s", tc.stopID, err)
		}
		if got != tc.want {
			t.Errorf("StopID(%q) = %d, want %d", tc.stopID, got, tc.want)
		}
	}
}

func TestLabels(t *testing.T) {
	tools, err := New(Profile(), ToolsOpts{})
	if err != nil {
		t.Fatalf("New() failed: %s", err)
	}
	for _, tc := range []struct {
		desc  string
		clean func(string) string
		input string
		want  string
	}{
		{"headsign via", tools.CleanTripHeadsign, "aller Saint-Esteve via Centre", "Saint-Esteve"},
		{"headsign morning", tools.CleanTripHeadsign, "Gare AM", "Gare Matin"},
		{"headsign shouting", tools.CleanTripHeadsign, "RETOUR MOULIN A VENT", "Moulin A Vent"},
		{"headsign acronym", tools.CleanTripHeadsign, "aller upvd", "UPVD"},
		{"stop name", tools.CleanStopName, "PL. DE CATALOGNE", "Place de Catalogne"},
		{"stop name keeps via", tools.CleanStopName, "GARE VIA DOMITIA", "Gare Via Domitia"},
		{"route long name", tools.CleanRouteLongName, "GARE SNCF - AV. DU LANGUEDOC", "Gare SNCF - Avenue du Languedoc"},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			if got := tc.clean(tc.input); got != tc.want {
				t.Errorf("clean(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestAgency(t *testing.T) {
	tools, err := New(Profile(), ToolsOpts{})
	if err != nil {
		t.Fatalf("New() failed: %s", err)
	}
	if got := tools.AgencyName(); got != "Sankéo" {
		t.Errorf("AgencyName() = %q", got)
	}
	if got := tools.AgencyColor(); got != "00A9CE" {
		t.Errorf("AgencyColor() = %q", got)
	}
	if got := tools.AgencyRouteType(); got != gtfs.RouteType_Bus {
		t.Errorf("AgencyRouteType() = %s", got)
	}
	if !tools.IsSchoolRoute(21_004) || tools.IsSchoolRoute(9_009) {
		t.Errorf("IsSchoolRoute gave the wrong classification")
	}
}

func TestNew_InvalidProfile(t *testing.T) {
	p := Profile()
	p.RouteIDs["12P3"] = 42
	if _, err := New(p, ToolsOpts{}); err == nil {
		t.Errorf("New() succeeded with a school route in the route table")
	}

	p = Profile()
	p.Color = "blue"
	if _, err := New(p, ToolsOpts{}); err == nil {
		t.Errorf("New() succeeded with an invalid color")
	}
}

func TestProfile_IsACopy(t *testing.T) {
	p := Profile()
	p.RouteIDs["A"] = 1
	p.Acronyms[0] = "XXX"
	if got := Profile().RouteIDs["A"]; got != 1000 {
		t.Errorf("built-in profile was modified: A = %d", got)
	}
	if got := Profile().Acronyms[0]; got != "TGV" {
		t.Errorf("built-in profile was modified: acronym = %q", got)
	}
}
