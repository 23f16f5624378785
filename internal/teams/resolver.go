package teams

import (
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/live-sports-service/internal/color"
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	domainteams "github.com/preston-bernstein/live-sports-service/internal/domain/teams"
	"github.com/preston-bernstein/live-sports-service/internal/logging"
	"github.com/preston-bernstein/live-sports-service/internal/rawjson"
)

// UnknownTeamError is returned by strict lookups when an id is not in the table.
type UnknownTeamError struct {
	Sport sports.Sport
	ID    uint64
}

func (e *UnknownTeamError) Error() string {
	return fmt.Sprintf("%s team %d not present in static table", e.Sport, e.ID)
}

// Resolver maps provider team ids to team records.
type Resolver struct {
	tables *Tables
	logger *slog.Logger
}

func NewResolver(tables *Tables, logger *slog.Logger) *Resolver {
	return &Resolver{tables: tables, logger: logger}
}

// Lookup returns the static record for id without synthesizing.
func (r *Resolver) Lookup(sport sports.Sport, id uint64) (domainteams.Team, error) {
	if r.tables != nil {
		if table, ok := r.tables.ForSport(sport); ok {
			if team, ok := table[id]; ok {
				return team, nil
			}
		}
	}
	return domainteams.Team{}, &UnknownTeamError{Sport: sport, ID: id}
}

// LookupOrCreate returns the static record for id, or synthesizes one from the
// upstream team object. Synthesized teams are not added to the table.
func (r *Resolver) LookupOrCreate(sport sports.Sport, id uint64, raw rawjson.Object) (domainteams.Team, error) {
	if team, err := r.Lookup(sport, id); err == nil {
		return team, nil
	}
	team, err := Synthesize(raw)
	if err != nil {
		return domainteams.Team{}, fmt.Errorf("synthesize %s team %d: %w", sport, id, err)
	}
	logging.Info(r.logger, "creating unknown team",
		logging.FieldSport, sport.String(),
		logging.FieldTeamID, team.ID,
		"abbreviation", team.Abbreviation,
	)
	return team, nil
}

// Synthesize builds a team from an upstream team object. The id may be a number
// or a numeric string.
func Synthesize(raw rawjson.Object) (domainteams.Team, error) {
	id, err := raw.UintOrString("id")
	if err != nil {
		return domainteams.Team{}, err
	}
	location, err := raw.String("location")
	if err != nil {
		return domainteams.Team{}, err
	}
	name, err := raw.String("name")
	if err != nil {
		return domainteams.Team{}, err
	}
	abbreviation, err := raw.String("abbreviation")
	if err != nil {
		return domainteams.Team{}, err
	}
	primary, err := raw.String("color")
	if err != nil {
		return domainteams.Team{}, err
	}
	secondary, err := color.ResolveSecondary(primary, primary)
	if err != nil {
		return domainteams.Team{}, err
	}
	return domainteams.Team{
		ID:             id,
		Location:       location,
		Name:           name,
		DisplayName:    domainteams.DisplayName(name),
		Abbreviation:   abbreviation,
		PrimaryColor:   primary,
		SecondaryColor: secondary.Hex(),
	}, nil
}
