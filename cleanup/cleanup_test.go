package cleanup

import "testing"

var testAcronyms = []string{"TGV", "SNCF", "HLM", "IUT", "ZI", "UPVD"}

func TestSteps(t *testing.T) {
	n := NewNormalizer(testAcronyms)
	for _, tc := range []struct {
		desc  string
		step  Step
		input string
		want  string
	}{
		{"acronyms", n.FixAcronyms, "Gare sncf", "Gare SNCF"},
		{"acronyms whole words only", n.FixAcronyms, "Sncfx Tgvs", "Sncfx Tgvs"},
		{"acronyms keep dots", n.FixAcronyms, "Iut. Perpignan", "IUT. Perpignan"},
		{"acronyms with accents around", n.FixAcronyms, "Zone-hlm-Été", "Zone-HLM-Été"},

		{"aller", RemoveDirectionMarkers, "ALLER Canet", "Canet"},
		{"retour", RemoveDirectionMarkers, "retour - Gare", "Gare"},
		{"aller retour", RemoveDirectionMarkers, "Aller Retour Gare", "Gare"},
		{"marker only", RemoveDirectionMarkers, "Aller", ""},
		{"leading separator", RemoveDirectionMarkers, "- Aller Canet", "Canet"},
		{"anchored", RemoveDirectionMarkers, "Canet aller", "Canet aller"},
		{"whole word", RemoveDirectionMarkers, "Allers Canet", "Allers Canet"},

		{"am", ExpandTimeOfDay, "Gare AM", "Gare Matin"},
		{"pm", ExpandTimeOfDay, "Gare pm", "Gare Après-Midi"},
		{"am inside word", ExpandTimeOfDay, "Amélie-les-Bains", "Amélie-les-Bains"},

		{"via", RemoveVia, "Saint-Esteve via Centre", "Saint-Esteve"},
		{"via uppercase", RemoveVia, "CANET VIA GARE", "CANET"},
		{"via after separator", RemoveVia, "Canet - via Gare", "Canet -"},
		{"via first word", RemoveVia, "Via Domitia", "Via Domitia"},
		{"via inside word", RemoveVia, "Viaduc", "Viaduc"},
		{"trivia", RemoveVia, "Trivia", "Trivia"},

		{"st", Saint, "St Esteve", "Saint Esteve"},
		{"st with dot", Saint, "St.Esteve", "Saint Esteve"},
		{"st hyphen", Saint, "St-Laurent", "Saint-Laurent"},
		{"ste", Saint, "Ste Marie", "Sainte Marie"},
		{"uppercase saint", Saint, "SAINT ESTEVE", "Saint ESTEVE"},
		{"st inside word", Saint, "Stade", "Stade"},
		{"decomposed accent inside word", Saint, "Ste\u0301phane", "Ste\u0301phane"},

		{"compose", ComposeUnicode, "Ste\u0301phane", "St\u00e9phane"},
		{"already composed", ComposeUnicode, "St\u00e9phane", "St\u00e9phane"},

		{"avenue", StreetTypesFRCA, "Av. du Languedoc", "Avenue du Languedoc"},
		{"place glued", StreetTypesFRCA, "Pl.de Catalogne", "Place de Catalogne"},
		{"boulevard", StreetTypesFRCA, "BD Wilson", "Boulevard Wilson"},
		{"allée", StreetTypesFRCA, "All. des Pins", "Allée des Pins"},
		{"not a prefix", StreetTypesFRCA, "Allées Maillol", "Allées Maillol"},

		{"spaces", n.CleanLabelFR, "  Gare   de  Perpignan ", "Gare de Perpignan"},
		{"punctuation", n.CleanLabelFR, "Gare , ( Centre )", "Gare, (Centre)"},
		{"dangling separator", n.CleanLabelFR, "Canet -", "Canet"},
		{"shouting", n.CleanLabelFR, "GARE DE PERPIGNAN", "Gare de Perpignan"},
		{"acronym kept", n.CleanLabelFR, "GARE SNCF", "Gare SNCF"},
		{"elision", n.CleanLabelFR, "RUE D'ALSACE", "Rue d'Alsace"},
		{"line letter kept", n.CleanLabelFR, "Ligne D", "Ligne D"},
		{"roman numeral", n.CleanLabelFR, "LYCEE JEAN XXIII", "Lycee Jean XXIII"},
		{"first letter", n.CleanLabelFR, "à la Gare", "À la Gare"},
		{"accents", n.CleanLabelFR, "ÉCOLE DU MAS", "École du Mas"},
		{"nfc", n.CleanLabelFR, "Estéve", "Estéve"},
		{"mixed case untouched", n.CleanLabelFR, "Moulin à Vent", "Moulin à Vent"},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			if got := tc.step(tc.input); got != tc.want {
				t.Errorf("step(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestTripHeadsign(t *testing.T) {
	n := NewNormalizer(testAcronyms)
	for _, tc := range []struct {
		input string
		want  string
	}{
		{"ALLER Canet", "Canet"},
		{"Gare AM", "Gare Matin"},
		{"aller Saint-Esteve via Centre", "Saint-Esteve"},
		{"aller St-Esteve via Centre", "Saint-Esteve"},
		{"RETOUR MOULIN A VENT", "Moulin A Vent"},
		{"retour gare sncf pm", "Gare SNCF Après-Midi"},
		{"Av. du Languedoc", "Avenue du Languedoc"},
		{"Aller via Centre", "Via Centre"},
		{"CANET - VIA GARE", "Canet"},
		{"IUT via UPVD", "IUT"},
		{"aller Ste\u0301phane", "St\u00e9phane"},
		{"", ""},
	} {
		t.Run(tc.input, func(t *testing.T) {
			if got := n.TripHeadsign().Apply(tc.input); got != tc.want {
				t.Errorf("TripHeadsign(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestStopName(t *testing.T) {
	n := NewNormalizer(testAcronyms)
	for _, tc := range []struct {
		input string
		want  string
	}{
		{"GARE SNCF", "Gare SNCF"},
		{"PL. DE CATALOGNE", "Place de Catalogne"},
		{"ST ESTEVE", "Saint Esteve"},
		{"Via Domitia", "Via Domitia"},
		{"Ste\u0301phane", "St\u00e9phane"},
		{"ST E\u0301TIENNE", "Saint \u00c9tienne"},
	} {
		t.Run(tc.input, func(t *testing.T) {
			if got := n.StopName().Apply(tc.input); got != tc.want {
				t.Errorf("StopName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestRouteLongName(t *testing.T) {
	n := NewNormalizer(testAcronyms)
	for _, tc := range []struct {
		input string
		want  string
	}{
		{"MOULIN A VENT - ST ESTEVE", "Moulin A Vent - Saint Esteve"},
		{"GARE SNCF - AV. DU LANGUEDOC", "Gare SNCF - Avenue du Languedoc"},
	} {
		t.Run(tc.input, func(t *testing.T) {
			if got := n.RouteLongName().Apply(tc.input); got != tc.want {
				t.Errorf("RouteLongName(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestPipelinesAreIdempotent(t *testing.T) {
	n := NewNormalizer(testAcronyms)
	inputs := []string{
		"ALLER Canet",
		"Gare AM",
		"aller Saint-Esteve via Centre",
		"- Aller Retour ST ESTEVE",
		"Aller via Centre",
		"retour gare sncf pm",
		"PL.DE CATALOGNE",
		"RUE D'ALSACE , ZI NORD ( SUD )",
		"  canet  -  via  ",
		"DE GAULLE",
		"St.Ste.Av.Bd",
		"Via Domitia via Centre",
		"à la GARE",
		"Ste\u0301phane",
		"ST E\u0301TIENNE via Centre",
	}
	for name, pipeline := range map[string]Pipeline{
		"headsign":        n.TripHeadsign(),
		"stop name":       n.StopName(),
		"route long name": n.RouteLongName(),
	} {
		for _, input := range inputs {
			once := pipeline.Apply(input)
			twice := pipeline.Apply(once)
			if once != twice {
				t.Errorf("%s pipeline not idempotent for %q: %q then %q", name, input, once, twice)
			}
		}
	}
}

func TestCleanLabel(t *testing.T) {
	for _, tc := range []struct {
		input string
		want  string
	}{
		{" a  b ", "a b"},
		{"GARE", "GARE"},
		{"a ,b", "a,b"},
		{"/ a /", "a"},
	} {
		if got := CleanLabel(tc.input); got != tc.want {
			t.Errorf("CleanLabel(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
