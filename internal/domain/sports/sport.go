package sports

import (
	"fmt"
	"strings"
)

// SportType identifies a sport family.
type SportType int

const (
	Hockey SportType = iota + 1
	Baseball
	Golf
	Basketball
	Football
)

// Level identifies the competition level of a sport.
type Level int

const (
	Professional Level = iota + 1
	Collegiate
)

// Sport is a sport family crossed with a competition level. It is comparable and used
// directly as a map key.
type Sport struct {
	Type  SportType
	Level Level
}

var (
	HockeyPro            = Sport{Type: Hockey, Level: Professional}
	BaseballPro          = Sport{Type: Baseball, Level: Professional}
	GolfPro              = Sport{Type: Golf, Level: Professional}
	BasketballPro        = Sport{Type: Basketball, Level: Professional}
	BasketballCollegiate = Sport{Type: Basketball, Level: Collegiate}
	FootballPro          = Sport{Type: Football, Level: Professional}
	FootballCollegiate   = Sport{Type: Football, Level: Collegiate}
)

var tokens = map[Sport]string{
	HockeyPro:            "hockey",
	BaseballPro:          "baseball",
	GolfPro:              "golf",
	BasketballPro:        "basketball",
	BasketballCollegiate: "college-basketball",
	FootballPro:          "football",
	FootballCollegiate:   "college-football",
}

// All returns every supported sport in a stable order.
func All() []Sport {
	return []Sport{
		HockeyPro,
		BaseballPro,
		GolfPro,
		BasketballPro,
		BasketballCollegiate,
		FootballPro,
		FootballCollegiate,
	}
}

// InvalidSportTypeError is returned when a token does not name a supported sport.
type InvalidSportTypeError struct {
	Token string
}

func (e *InvalidSportTypeError) Error() string {
	return fmt.Sprintf("invalid sport type %q", e.Token)
}

// Parse converts a canonical token (e.g. "college-football") into a Sport.
func Parse(token string) (Sport, error) {
	for sport, tok := range tokens {
		if tok == token {
			return sport, nil
		}
	}
	return Sport{}, &InvalidSportTypeError{Token: token}
}

// ParseList parses every token, failing on the first unknown one. Duplicates are dropped.
func ParseList(raw []string) ([]Sport, error) {
	out := make([]Sport, 0, len(raw))
	seen := make(map[Sport]bool, len(raw))
	for _, token := range raw {
		sport, err := Parse(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}
		if seen[sport] {
			continue
		}
		seen[sport] = true
		out = append(out, sport)
	}
	return out, nil
}

// String returns the canonical token, or an empty string for unsupported combinations.
func (s Sport) String() string {
	return tokens[s]
}

// Valid reports whether the sport is one of the supported combinations.
func (s Sport) Valid() bool {
	_, ok := tokens[s]
	return ok
}

// IsCollegiate reports whether the sport is played at the collegiate level.
func (s Sport) IsCollegiate() bool {
	return s.Level == Collegiate
}

// MarshalText encodes the sport as its canonical token so it can key JSON objects.
func (s Sport) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot encode unsupported sport %d/%d", s.Type, s.Level)
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a canonical token.
func (s *Sport) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (t SportType) String() string {
	switch t {
	case Hockey:
		return "hockey"
	case Baseball:
		return "baseball"
	case Golf:
		return "golf"
	case Basketball:
		return "basketball"
	case Football:
		return "football"
	default:
		return "unknown"
	}
}
