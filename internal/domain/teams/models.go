package teams

import "strings"

// displayNameLimit is the longest raw name kept verbatim as a display name.
const displayNameLimit = 11

// Team represents the normalized team shape embedded in games.
// Ids are scoped to the provider and sport; they are not unique across sports.
type Team struct {
	ID             uint64 `json:"id" yaml:"id"`
	Location       string `json:"location" yaml:"location"`
	Name           string `json:"name" yaml:"name"`
	DisplayName    string `json:"display_name" yaml:"display_name"`
	Abbreviation   string `json:"abbreviation" yaml:"abbreviation"`
	PrimaryColor   string `json:"primary_color" yaml:"primary_color"`
	SecondaryColor string `json:"secondary_color" yaml:"secondary_color"`
}

var directionPrefixes = map[string]string{
	"North":   "N",
	"South":   "S",
	"West":    "W",
	"East":    "E",
	"Central": "C",
}

// DisplayName shortens long team names. Names longer than 11 characters have a
// trailing "State" shortened to "St" and a leading compass word reduced to its initial.
func DisplayName(raw string) string {
	if len(raw) <= displayNameLimit {
		return raw
	}
	words := strings.Split(raw, " ")
	if last := len(words) - 1; words[last] == "State" {
		words[last] = "St"
	}
	if prefix, ok := directionPrefixes[words[0]]; ok {
		words[0] = prefix
	}
	return strings.Join(words, " ")
}
