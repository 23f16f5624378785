package games

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/live-sports-service/internal/domain/sports"
	"github.com/preston-bernstein/live-sports-service/internal/domain/teams"
)

// MaxGolfPlayers caps the leaderboard carried on a golf game.
const MaxGolfPlayers = 5

// Game is the canonical game snapshot exposed by the service.
// HomeTeam and AwayTeam are both set or both nil; golf events carry neither.
type Game struct {
	GameID    uint64       `json:"game_id"`
	Sport     sports.Sport `json:"sport"`
	HomeTeam  *teams.Team  `json:"home_team"`
	AwayTeam  *teams.Team  `json:"away_team"`
	HomeScore uint64       `json:"home_score"`
	AwayScore uint64       `json:"away_score"`
	Status    Status       `json:"status"`
	Period    uint64       `json:"period"`
	Ordinal   string       `json:"ordinal"`
	StartTime time.Time    `json:"start_time"`
	Extra     *ExtraData   `json:"extra"`
}

// Validate checks the structural invariants every normalized game must hold.
func (g Game) Validate() error {
	if !g.Sport.Valid() {
		return fmt.Errorf("game %d: unsupported sport", g.GameID)
	}
	if g.Status == Invalid {
		return fmt.Errorf("game %d: invalid status cannot be published", g.GameID)
	}
	if (g.HomeTeam == nil) != (g.AwayTeam == nil) {
		return fmt.Errorf("game %d: home and away teams must both be set or both be empty", g.GameID)
	}
	if g.Sport.Type == sports.Golf && g.HomeTeam != nil {
		return fmt.Errorf("game %d: golf events have no teams", g.GameID)
	}
	if g.Extra != nil {
		family, ok := g.Extra.Family()
		if !ok {
			return fmt.Errorf("game %d: extra data must carry exactly one variant", g.GameID)
		}
		if family != g.Sport.Type {
			return fmt.Errorf("game %d: %s extra data on a %s game", g.GameID, family, g.Sport.Type)
		}
	}
	return nil
}

// Possession identifies which side holds the ball in a football game.
type Possession string

const (
	PossessionNone Possession = "NONE"
	PossessionHome Possession = "HOME"
	PossessionAway Possession = "AWAY"
)

// ExtraData is a tagged union of sport-specific payloads. Exactly one field is set,
// so the JSON form is externally tagged: {"hockey": {...}}.
type ExtraData struct {
	Hockey     *HockeyData     `json:"hockey,omitempty"`
	Baseball   *BaseballData   `json:"baseball,omitempty"`
	Basketball *BasketballData `json:"basketball,omitempty"`
	Football   *FootballData   `json:"football,omitempty"`
	Golf       *GolfData       `json:"golf,omitempty"`
}

// Family returns the sport family of the populated variant. It reports false when
// zero or several variants are set.
func (e ExtraData) Family() (sports.SportType, bool) {
	var (
		family sports.SportType
		count  int
	)
	if e.Hockey != nil {
		family, count = sports.Hockey, count+1
	}
	if e.Baseball != nil {
		family, count = sports.Baseball, count+1
	}
	if e.Basketball != nil {
		family, count = sports.Basketball, count+1
	}
	if e.Football != nil {
		family, count = sports.Football, count+1
	}
	if e.Golf != nil {
		family, count = sports.Golf, count+1
	}
	return family, count == 1
}

type HockeyData struct {
	AwayPowerplay bool   `json:"away_powerplay"`
	HomePowerplay bool   `json:"home_powerplay"`
	AwayPlayers   uint64 `json:"away_players"`
	HomePlayers   uint64 `json:"home_players"`
}

type BaseballData struct {
	Balls       uint64 `json:"balls"`
	Outs        uint64 `json:"outs"`
	Strikes     uint64 `json:"strikes"`
	IsInningTop bool   `json:"is_inning_top"`
	OnFirst     bool   `json:"on_first"`
	OnSecond    bool   `json:"on_second"`
	OnThird     bool   `json:"on_third"`
}

type BasketballData struct{}

type FootballData struct {
	TimeRemaining string     `json:"time_remaining"`
	BallPosition  string     `json:"ball_position"`
	DownString    string     `json:"down_string"`
	Possession    Possession `json:"possession"`
}

// GolfData holds the shortened event name and the top of the leaderboard,
// ordered by position.
type GolfData struct {
	EventName string       `json:"event_name"`
	Players   []GolfPlayer `json:"players"`
}

type GolfPlayer struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Score       string `json:"score"`
	Position    uint64 `json:"position"`
}

func NewHockeyExtra(data HockeyData) *ExtraData { return &ExtraData{Hockey: &data} }

func NewBaseballExtra(data BaseballData) *ExtraData { return &ExtraData{Baseball: &data} }

func NewBasketballExtra() *ExtraData { return &ExtraData{Basketball: &BasketballData{}} }

func NewFootballExtra(data FootballData) *ExtraData { return &ExtraData{Football: &data} }

func NewGolfExtra(data GolfData) *ExtraData { return &ExtraData{Golf: &data} }
