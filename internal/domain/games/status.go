package games

import "fmt"

// Status is the canonical lifecycle state of a game.
type Status int

const (
	Pregame Status = iota
	Active
	Intermission
	End
	// Invalid marks events that must be dropped; it never appears on a published game.
	Invalid
)

var statusNames = map[Status]string{
	Pregame:      "PREGAME",
	Active:       "ACTIVE",
	Intermission: "INTERMISSION",
	End:          "END",
	Invalid:      "INVALID",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText encodes published statuses. Invalid is rejected.
func (s Status) MarshalText() ([]byte, error) {
	if s == Invalid {
		return nil, fmt.Errorf("invalid status cannot be encoded")
	}
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("unknown status %d", int(s))
	}
	return []byte(name), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if status != Invalid && name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", string(text))
}
