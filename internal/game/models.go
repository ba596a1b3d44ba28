package game

import "fmt"

// FieldSize is the number of players each team fields for the whole
// match. Substitutions are handled by callers between matches, never by
// the engine mid-match.
const FieldSize = 6

// Role classifies a player's on-field specialty.
// Using a dedicated type instead of plain string makes code safer and
// self-documenting. Unknown roles are tolerated (they receive no
// role-specific treatment).
type Role string

const (
	RolePasser  Role = "passer"
	RoleRunner  Role = "runner"
	RoleBlocker Role = "blocker"
)

// Race is the closed set of playable races. Unknown race tags are
// tolerated at the ingestion boundary and simply receive no modifiers;
// callers are expected to log them.
type Race string

const (
	RaceHuman  Race = "human"
	RaceSylvan Race = "sylvan"
	RaceGryll  Race = "gryll"
	RaceLumina Race = "lumina"
	RaceUmbra  Race = "umbra"
)

// Side identifies one of the two teams in a match.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideHome {
		return SideAway
	}
	return SideHome
}

// Phase describes how deep into the match the clock currently is. It is
// derived from elapsed time every tick.
type Phase string

const (
	PhaseEarly  Phase = "early"
	PhaseMiddle Phase = "middle"
	PhaseLate   Phase = "late"
	PhaseFinal  Phase = "final"
)

// RosterPlayer is one player's snapshot as supplied by the caller. The
// engine never mutates rosters; it copies them into PlayerStates at
// construction time.
type RosterPlayer struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Role            Role    `json:"role"`
	Race            Race    `json:"race"`
	Attributes      Stats   `json:"attributes"`
	StaminaCapacity float64 `json:"stamina_capacity"`
	// Bonuses are named additive modifiers from tactics and items. The
	// names are resolved against the fixed stat schema at ingestion;
	// unknown names are a no-op.
	Bonuses map[string]float64 `json:"bonuses,omitempty"`
	// Skills are opaque tags consumed by extension points.
	Skills []string `json:"skills,omitempty"`
}

// Roster is one team's snapshot: identity plus the ordered player list.
type Roster struct {
	TeamID   string         `json:"team_id"`
	TeamName string         `json:"team_name"`
	Players  []RosterPlayer `json:"players"`
}

// PlayerState is one player's live state during a match.
type PlayerState struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
	Race Race   `json:"race"`

	// Base attributes never change during a match.
	Base            Stats    `json:"base"`
	StaminaCapacity float64  `json:"stamina_capacity"`
	Skills          []string `json:"skills,omitempty"`

	// Bonuses holds the sum of the recognized named modifiers, already
	// folded onto the stat schema at construction time.
	Bonuses Stats `json:"bonuses"`

	OnField  bool `json:"on_field"`
	Position int  `json:"position"` // field slot index, 0..FieldSize-1

	// CurrentStamina only decreases during play unless a race grants
	// regeneration. FatiguePenalty is recomputed from CurrentStamina
	// every tick and is never adjusted incrementally.
	CurrentStamina float64 `json:"current_stamina"`
	FatiguePenalty float64 `json:"fatigue_penalty"`

	MatchStats PlayerMatchStats `json:"match_stats"`
}

// TeamState is one side's live state: the full roster keyed by player
// id plus the ordered on-field set.
type TeamState struct {
	ID      string                  `json:"id"`
	Name    string                  `json:"name"`
	Players map[string]*PlayerState `json:"players"`
	OnField []string                `json:"on_field"`
	Score   int                     `json:"score"`
}

// FieldPlayers returns the on-field players in field-slot order.
func (t *TeamState) FieldPlayers() []*PlayerState {
	out := make([]*PlayerState, 0, len(t.OnField))
	for _, id := range t.OnField {
		if p, ok := t.Players[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// MatchStats sums the accumulated per-player lines into team totals.
func (t *TeamState) MatchStats() TeamMatchStats {
	var ts TeamMatchStats
	for _, p := range t.Players {
		ts.TotalYards += p.MatchStats.RushingYards + p.MatchStats.ReceivingYards
		ts.RushingYards += p.MatchStats.RushingYards
		ts.PassingYards += p.MatchStats.PassingYards
		ts.Scores += p.MatchStats.Scores
		ts.Turnovers += p.MatchStats.Turnovers
		ts.Tackles += p.MatchStats.Tackles
	}
	ts.Points = t.Score
	return ts
}

// MatchState is the complete mutable state of one running match. It is
// created once from two roster snapshots, mutated every tick, and
// discarded after the caller reads the final statistics.
type MatchState struct {
	MatchID    string     `json:"match_id"`
	Home       *TeamState `json:"home"`
	Away       *TeamState `json:"away"`
	GameTime   int        `json:"game_time"` // elapsed simulated seconds
	MaxTime    int        `json:"max_time"`
	Possession Side       `json:"possession"`
	Phase      Phase      `json:"phase"`
	Tick       int        `json:"tick"`
}

// Team returns the TeamState for a side.
func (m *MatchState) Team(s Side) *TeamState {
	if s == SideHome {
		return m.Home
	}
	return m.Away
}

// Done reports whether the simulated clock has run out.
func (m *MatchState) Done() bool { return m.GameTime >= m.MaxTime }

// FindPlayer looks a player up on either side.
func (m *MatchState) FindPlayer(id string) (*PlayerState, Side, error) {
	if p, ok := m.Home.Players[id]; ok {
		return p, SideHome, nil
	}
	if p, ok := m.Away.Players[id]; ok {
		return p, SideAway, nil
	}
	return nil, "", fmt.Errorf("player %s not found in match %s", id, m.MatchID)
}
