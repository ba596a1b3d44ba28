package game

// PlayerLine pairs a player's identity with their final accumulated
// match statistics.
type PlayerLine struct {
	PlayerID string           `json:"player_id"`
	Name     string           `json:"name"`
	TeamID   string           `json:"team_id"`
	Side     Side             `json:"side"`
	Stats    PlayerMatchStats `json:"stats"`
}

// MatchResult is the self-contained output of a completed simulation:
// the full event stream plus final per-team and per-player statistics.
// Callers own what happens to it (persistence, delivery to viewers).
type MatchResult struct {
	MatchID   string         `json:"match_id"`
	HomeTeam  string         `json:"home_team"`
	AwayTeam  string         `json:"away_team"`
	HomeScore int            `json:"home_score"`
	AwayScore int            `json:"away_score"`
	Duration  int            `json:"duration"`
	Ticks     int            `json:"ticks"`
	HomeStats TeamMatchStats `json:"home_stats"`
	AwayStats TeamMatchStats `json:"away_stats"`
	Events    []MatchEvent   `json:"events"`
	Players   []PlayerLine   `json:"players"`
}
