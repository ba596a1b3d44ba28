package storage

import (
	"encoding/json"
	"strings"

	"github.com/jimmy058910/replitballgame-sub010/internal/game"
	"gorm.io/gorm"
)

// MatchRecord is the persisted summary of one completed simulation.
type MatchRecord struct {
	gorm.Model
	MatchID   string `json:"match_id" gorm:"uniqueIndex"`
	HomeTeam  string `json:"home_team"`
	AwayTeam  string `json:"away_team"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Duration  int    `json:"duration"`
	Ticks     int    `json:"ticks"`
}

func (MatchRecord) TableName() string { return "matches" }

// MatchEventRecord is one event of the stream, stored in emission
// order. The structured stats payload is kept verbatim as JSON so a
// stored stream replays byte-identically.
type MatchEventRecord struct {
	gorm.Model
	MatchID     string `json:"match_id" gorm:"index"`
	Seq         uint64 `json:"seq"`
	Tick        int    `json:"tick"`
	GameTime    int    `json:"game_time"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Side        string `json:"side"`
	PlayerIDs   string `json:"player_ids"` // comma-joined
	Description string `json:"description"`
	Turnover    bool   `json:"turnover"`
	Yards       int    `json:"yards"`
	Payload     []byte `json:"-" gorm:"column:payload;type:blob"`
}

func (MatchEventRecord) TableName() string { return "match_events" }

// PlayerStatRecord is one player's final line. The most queried columns
// are explicit; the complete line is stored as JSON alongside.
type PlayerStatRecord struct {
	gorm.Model
	MatchID      string `json:"match_id" gorm:"index"`
	PlayerID     string `json:"player_id" gorm:"index"`
	Name         string `json:"name"`
	TeamID       string `json:"team_id"`
	Side         string `json:"side"`
	RushingYards int    `json:"rushing_yards"`
	PassingYards int    `json:"passing_yards"`
	Scores       int    `json:"scores"`
	Tackles      int    `json:"tackles"`
	Turnovers    int    `json:"turnovers"`
	Line         []byte `json:"-" gorm:"column:line;type:blob"`
}

func (PlayerStatRecord) TableName() string { return "match_player_stats" }

func eventToRecord(matchID string, ev game.MatchEvent) (MatchEventRecord, error) {
	payload, err := json.Marshal(ev.Stats)
	if err != nil {
		return MatchEventRecord{}, err
	}
	return MatchEventRecord{
		MatchID:     matchID,
		Seq:         ev.ID,
		Tick:        ev.Tick,
		GameTime:    ev.GameTime,
		Type:        string(ev.Type),
		Priority:    string(ev.Priority),
		Side:        string(ev.Side),
		PlayerIDs:   strings.Join(ev.PlayerIDs, ","),
		Description: ev.Description,
		Turnover:    ev.Stats.Turnover,
		Yards:       ev.Stats.Yards,
		Payload:     payload,
	}, nil
}

func playerLineToRecord(matchID string, line game.PlayerLine) (PlayerStatRecord, error) {
	full, err := json.Marshal(line.Stats)
	if err != nil {
		return PlayerStatRecord{}, err
	}
	return PlayerStatRecord{
		MatchID:      matchID,
		PlayerID:     line.PlayerID,
		Name:         line.Name,
		TeamID:       line.TeamID,
		Side:         string(line.Side),
		RushingYards: line.Stats.RushingYards,
		PassingYards: line.Stats.PassingYards,
		Scores:       line.Stats.Scores,
		Tackles:      line.Stats.Tackles,
		Turnovers:    line.Stats.Turnovers,
		Line:         full,
	}, nil
}
