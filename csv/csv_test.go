package csv

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sankeo-tools/gtfs/constants"
)

func TestFile(t *testing.T) {
	for _, tc := range []struct {
		desc            string
		content         string
		wantRows        [][]string
		wantMissingCols []string
		wantMissingKeys [][]string
	}{
		{
			desc:     "plain",
			content:  "stop_id,stop_name\n1,Gare\n2,Canet",
			wantRows: [][]string{{"1", "Gare"}, {"2", "Canet"}},
		},
		{
			desc:     "byte order mark",
			content:  "\ufeffstop_id,stop_name\n1,Gare",
			wantRows: [][]string{{"1", "Gare"}},
		},
		{
			desc:     "padded cells",
			content:  " stop_id , stop_name \n 1 ,  Gare ",
			wantRows: [][]string{{"1", "Gare"}},
		},
		{
			desc:            "short row",
			content:         "stop_id,stop_name\n1",
			wantRows:        [][]string{{"1", ""}},
			wantMissingKeys: [][]string{{"stop_name"}},
		},
		{
			desc:            "missing column",
			content:         "stop_id\n1",
			wantRows:        [][]string{{"1", ""}},
			wantMissingCols: []string{"stop_name"},
			wantMissingKeys: [][]string{{"stop_name"}},
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			f, err := New(constants.StopsFile, io.NopCloser(strings.NewReader(tc.content)))
			if err != nil {
				t.Fatalf("New() err = %v", err)
			}
			idCol := f.RequiredColumn("stop_id")
			nameCol := f.RequiredColumn("stop_name")
			var rows [][]string
			var missingKeys [][]string
			for f.NextRow() {
				rows = append(rows, []string{idCol.Read(), nameCol.Read()})
				if keys := f.MissingRowKeys(); keys != nil {
					missingKeys = append(missingKeys, keys)
				}
			}
			if err := f.Close(); err != nil {
				t.Fatalf("Close() err = %v", err)
			}
			if diff := cmp.Diff(tc.wantRows, rows); diff != "" {
				t.Errorf("rows (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantMissingCols, f.MissingRequiredColumns()); diff != "" {
				t.Errorf("missing columns (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.wantMissingKeys, missingKeys); diff != "" {
				t.Errorf("missing keys (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOptionalColumn(t *testing.T) {
	f, err := New(constants.RoutesFile, io.NopCloser(strings.NewReader("route_id,route_color\na,\nb,FF0000")))
	if err != nil {
		t.Fatalf("New() err = %v", err)
	}
	color := f.OptionalColumn("route_color")
	absent := f.OptionalColumn("route_text_color")
	var got []string
	for f.NextRow() {
		got = append(got, color.ReadOr("00A9CE"), absent.Read())
	}
	want := []string{"00A9CE", "", "FF0000", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEmptyFile(t *testing.T) {
	_, err := New(constants.AgencyFile, io.NopCloser(strings.NewReader("")))
	if err == nil {
		t.Errorf("New() on an empty file returned no error")
	}
}
