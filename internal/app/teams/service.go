package teams

import (
	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	domainteams "github.com/preston-bernstein/live-sports-service/internal/domain/teams"
	"github.com/preston-bernstein/live-sports-service/internal/teams"
)

// Source defines the contract for reading static team tables.
type Source interface {
	ForSport(sport sports.Sport) (teams.Table, bool)
}

// Service exposes the static team tables.
type Service struct {
	source Source
}

// NewService constructs a Service with the provided Source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Teams returns the teams for sport ordered by id. The bool is false for sports
// without a table (golf).
func (s *Service) Teams(sport sports.Sport) ([]domainteams.Team, bool) {
	if s == nil || s.source == nil {
		return nil, false
	}
	table, ok := s.source.ForSport(sport)
	if !ok {
		return nil, false
	}
	return table.Sorted(), true
}

// All returns every sport's table keyed by sport token. Sports sharing a table
// (college basketball and college football) each get their own entry.
func (s *Service) All() map[string][]domainteams.Team {
	out := make(map[string][]domainteams.Team)
	for _, sport := range sports.All() {
		if list, ok := s.Teams(sport); ok {
			out[sport.String()] = list
		}
	}
	return out
}
