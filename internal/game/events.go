package game

// EventType is the closed set of event variants the engine emits.
type EventType string

const (
	EventRun      EventType = "run"
	EventPass     EventType = "pass"
	EventKick     EventType = "kick"
	EventTackle   EventType = "tackle"
	EventTurnover EventType = "turnover"
	EventScore    EventType = "score"
)

// Priority tiers drive both commentary verbosity and how much game
// clock an event consumes.
type Priority string

const (
	PriorityCritical  Priority = "critical"
	PriorityImportant Priority = "important"
	PriorityStandard  Priority = "standard"
	PriorityDowntime  Priority = "downtime"
)

// EventStats is the structured payload describing exactly what a play
// changed: per-player stat deltas plus the headline outcome flags.
type EventStats struct {
	Yards     int                         `json:"yards"`
	Breakaway bool                        `json:"breakaway,omitempty"`
	Score     bool                        `json:"score,omitempty"`
	Turnover  bool                        `json:"turnover,omitempty"`
	Deltas    map[string]PlayerMatchStats `json:"deltas,omitempty"`
}

// MatchEvent is the immutable record emitted once per tick. Events are
// value types: the engine hands them to the caller and never references
// them again, so they are independently serializable (streaming,
// storage, replay).
type MatchEvent struct {
	ID          uint64     `json:"id"`
	Tick        int        `json:"tick"`
	GameTime    int        `json:"game_time"`
	Type        EventType  `json:"type"`
	Priority    Priority   `json:"priority"`
	Side        Side       `json:"side"`
	PlayerIDs   []string   `json:"player_ids"`
	Description string     `json:"description"`
	Stats       EventStats `json:"stats"`
}
