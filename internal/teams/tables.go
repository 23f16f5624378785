// Package teams loads the static per-sport team tables and resolves upstream
// team references against them.
package teams

import (
	"embed"
	"fmt"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	domainteams "github.com/preston-bernstein/live-sports-service/internal/domain/teams"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Table maps a provider team id to its team record.
type Table map[uint64]domainteams.Team

// Sorted returns the table's teams ordered by id.
func (t Table) Sorted() []domainteams.Team {
	out := make([]domainteams.Team, 0, len(t))
	for _, team := range t {
		out = append(out, team)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

const (
	tableBaseball   = "baseball"
	tableHockey     = "hockey"
	tableFootball   = "football"
	tableBasketball = "basketball"
	tableCollegiate = "collegiate"
)

// Tables holds every static table. It is read-only after Load.
type Tables struct {
	byName map[string]Table
}

// Load parses the embedded team tables.
func Load() (*Tables, error) {
	names := []string{tableBaseball, tableHockey, tableFootball, tableBasketball, tableCollegiate}
	tables := &Tables{byName: make(map[string]Table, len(names))}
	for _, name := range names {
		table, err := loadTable(path.Join("data", name+".yaml"))
		if err != nil {
			return nil, fmt.Errorf("load %s teams: %w", name, err)
		}
		tables.byName[name] = table
	}
	return tables, nil
}

func loadTable(file string) (Table, error) {
	raw, err := dataFS.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var rows []domainteams.Team
	if err := yaml.Unmarshal(raw, &rows); err != nil {
		return nil, err
	}
	table := make(Table, len(rows))
	for _, row := range rows {
		if _, dup := table[row.ID]; dup {
			return nil, fmt.Errorf("duplicate team id %d", row.ID)
		}
		table[row.ID] = row
	}
	return table, nil
}

func tableName(sport sports.Sport) (string, bool) {
	switch {
	case sport.Type == sports.Golf:
		return "", false
	case sport.Type == sports.Hockey:
		return tableHockey, true
	case sport.Type == sports.Baseball:
		return tableBaseball, true
	case sport.IsCollegiate():
		return tableCollegiate, true
	case sport.Type == sports.Football:
		return tableFootball, true
	case sport.Type == sports.Basketball:
		return tableBasketball, true
	default:
		return "", false
	}
}

// ForSport returns the table used for sport. Golf has no table.
func (t *Tables) ForSport(sport sports.Sport) (Table, bool) {
	name, ok := tableName(sport)
	if !ok {
		return nil, false
	}
	table, ok := t.byName[name]
	return table, ok
}
