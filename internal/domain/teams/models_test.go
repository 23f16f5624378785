package teams

import (
	"reflect"
	"testing"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Location", "location"},
		{"Name", "name"},
		{"DisplayName", "display_name"},
		{"Abbreviation", "abbreviation"},
		{"PrimaryColor", "primary_color"},
		{"SecondaryColor", "secondary_color"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"Wildcats":             "Wildcats",
		"Ohio State":           "Ohio State",
		"Michigan State":       "Michigan St",
		"North Carolina":       "N Carolina",
		"South Dakota State":   "S Dakota St",
		"Central Michigan":     "C Michigan",
		"East Carolina":        "E Carolina",
		"West Virginia":        "W Virginia",
		"North Texas":          "North Texas",
		"Northwestern":         "Northwestern",
		"Mississippi Valley":   "Mississippi Valley",
		"Stateside University": "Stateside University",
	}
	for raw, want := range cases {
		if got := DisplayName(raw); got != want {
			t.Fatalf("DisplayName(%q): expected %q, got %q", raw, want, got)
		}
	}
}
