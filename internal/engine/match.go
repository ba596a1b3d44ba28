package engine

import (
	"errors"
	"fmt"

	"github.com/jimmy058910/replitballgame-sub010/internal/commentary"
	"github.com/jimmy058910/replitballgame-sub010/internal/game"
)

var (
	ErrRosterTooSmall  = errors.New("roster has fewer players than the field size")
	ErrInvalidDuration = errors.New("match duration must be positive")
	ErrMatchOver       = errors.New("match clock has expired")
)

const defaultStaminaCapacity = 100

// Match is one running simulation: the match state, its private RNG and
// the tuning values it was constructed with. A Match is single-threaded
// by design — tick N is fully applied before tick N+1 — but independent
// matches share no state and may run fully in parallel.
type Match struct {
	state       *game.MatchState
	rng         *RNG
	tuning      Tuning
	commentator *commentary.Generator
	eventSeq    uint64

	homeOrder []string
	awayOrder []string

	// unknownTags collects race and bonus names the engine did not
	// recognize at construction. They degrade to "no modifier"; the
	// caller decides whether to log them.
	unknownTags []string
}

// New validates the two roster snapshots and builds a match keyed by
// matchID, which doubles as the RNG seed. Construction-time invariant
// violations are fatal: no tick runs against a malformed roster.
func New(matchID string, home, away game.Roster, duration int, tuning Tuning, commentator *commentary.Generator) (*Match, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	if commentator == nil {
		commentator = commentary.NewGenerator(nil)
	}
	m := &Match{
		rng:         NewRNG(matchID),
		tuning:      tuning,
		commentator: commentator,
	}

	homeState, homeOrder, err := m.buildTeam(home)
	if err != nil {
		return nil, fmt.Errorf("home roster: %w", err)
	}
	awayState, awayOrder, err := m.buildTeam(away)
	if err != nil {
		return nil, fmt.Errorf("away roster: %w", err)
	}
	m.homeOrder = homeOrder
	m.awayOrder = awayOrder

	m.state = &game.MatchState{
		MatchID:    matchID,
		Home:       homeState,
		Away:       awayState,
		MaxTime:    duration,
		Possession: game.SideHome,
		Phase:      game.PhaseEarly,
	}
	return m, nil
}

func (m *Match) buildTeam(r game.Roster) (*game.TeamState, []string, error) {
	if len(r.Players) < game.FieldSize {
		return nil, nil, fmt.Errorf("%w: got %d, need %d", ErrRosterTooSmall, len(r.Players), game.FieldSize)
	}

	team := &game.TeamState{
		ID:      r.TeamID,
		Name:    r.TeamName,
		Players: make(map[string]*game.PlayerState, len(r.Players)),
	}
	order := make([]string, 0, len(r.Players))
	for i, rp := range r.Players {
		if rp.ID == "" {
			return nil, nil, fmt.Errorf("player at index %d has no id", i)
		}
		if _, dup := team.Players[rp.ID]; dup {
			return nil, nil, fmt.Errorf("duplicate player id %s", rp.ID)
		}
		capacity := rp.StaminaCapacity
		if capacity <= 0 {
			capacity = defaultStaminaCapacity
		}
		bonuses, unknown := game.FoldBonuses(rp.Bonuses)
		for _, name := range unknown {
			m.unknownTags = append(m.unknownTags, "bonus:"+name)
		}
		if _, known := m.tuning.Races[rp.Race]; !known {
			m.unknownTags = append(m.unknownTags, "race:"+string(rp.Race))
		}

		p := &game.PlayerState{
			ID:              rp.ID,
			Name:            rp.Name,
			Role:            rp.Role,
			Race:            rp.Race,
			Base:            rp.Attributes,
			StaminaCapacity: capacity,
			Skills:          rp.Skills,
			Bonuses:         bonuses,
			CurrentStamina:  capacity,
		}
		// First FieldSize roster entries start (and stay) on the field.
		if i < game.FieldSize {
			p.OnField = true
			p.Position = i
			team.OnField = append(team.OnField, p.ID)
		}
		team.Players[p.ID] = p
		order = append(order, p.ID)
	}
	return team, order, nil
}

// State exposes the live match state for inspection. Callers must treat
// it as read-only; mutating it mid-match voids the replay guarantee.
func (m *Match) State() *game.MatchState { return m.state }

// Done reports whether the clock has run out.
func (m *Match) Done() bool { return m.state.Done() }

// UnknownTags returns the race and bonus names that were not recognized
// at construction, for caller-side logging. The engine already applied
// its documented fallback (no modifier).
func (m *Match) UnknownTags() []string { return m.unknownTags }

// Advance resolves exactly one tick: phase update, action selection and
// resolution, stat accumulation, stamina drain, clock advance and
// commentary. It returns the emitted event. Calling Advance after the
// clock expired returns ErrMatchOver; partial state stays valid if the
// caller simply stops early.
func (m *Match) Advance() (game.MatchEvent, error) {
	if m.state.Done() {
		return game.MatchEvent{}, ErrMatchOver
	}
	m.state.Tick++
	m.updatePhase()

	res := m.resolveAction()
	m.applyResolution(&res)
	m.applyStaminaDrain()
	m.advanceClock(res.priority)

	m.eventSeq++
	ev := game.MatchEvent{
		ID:        m.eventSeq,
		Tick:      m.state.Tick,
		GameTime:  m.state.GameTime,
		Type:      res.evType,
		Priority:  res.priority,
		Side:      res.side,
		PlayerIDs: res.playerIDs,
		Stats:     res.stats,
	}
	ev.Description = m.commentator.Describe(ev.Type, res.narration, m.rng)
	return ev, nil
}

// resolution is the resolver output for one tick, before the event is
// packaged and narrated.
type resolution struct {
	evType    game.EventType
	priority  game.Priority
	side      game.Side
	playerIDs []string
	stats     game.EventStats
	narration commentary.Context

	// possessionTo switches possession when non-empty.
	possessionTo game.Side
	// points are credited to scoringSide when positive.
	scoringSide game.Side
	points      int
}

func (r *resolution) addDelta(playerID string, d game.PlayerMatchStats) {
	if r.stats.Deltas == nil {
		r.stats.Deltas = make(map[string]game.PlayerMatchStats)
	}
	line := r.stats.Deltas[playerID]
	line.Merge(d)
	r.stats.Deltas[playerID] = line
}

// resolveAction picks the action category for this tick and dispatches
// to the matching resolver.
func (m *Match) resolveAction() resolution {
	t := &m.tuning
	total := t.RunWeight + t.PassWeight + t.KickWeight + t.DefenseWeight
	draw := m.rng.Next() * total
	switch {
	case draw < t.RunWeight:
		return m.resolveRun()
	case draw < t.RunWeight+t.PassWeight:
		return m.resolvePass()
	case draw < t.RunWeight+t.PassWeight+t.KickWeight:
		return m.resolveKick()
	default:
		return m.resolveTackle()
	}
}

// applyResolution folds the event's effects back into match state:
// stat accumulation, scoreboard and possession.
func (m *Match) applyResolution(res *resolution) {
	for id, delta := range res.stats.Deltas {
		if p, _, err := m.state.FindPlayer(id); err == nil {
			p.MatchStats.Merge(delta)
		}
	}
	if res.points > 0 {
		m.state.Team(res.scoringSide).Score += res.points
	}
	if res.possessionTo != "" {
		m.state.Possession = res.possessionTo
	}
}

// updatePhase derives the game phase from elapsed time.
func (m *Match) updatePhase() {
	frac := float64(m.state.GameTime) / float64(m.state.MaxTime)
	switch {
	case frac < 0.25:
		m.state.Phase = game.PhaseEarly
	case frac < 0.60:
		m.state.Phase = game.PhaseMiddle
	case frac < 0.90:
		m.state.Phase = game.PhaseLate
	default:
		m.state.Phase = game.PhaseFinal
	}
}

// advanceClock consumes game time based on event importance. Every tier
// is strictly positive, so the simulation always terminates.
func (m *Match) advanceClock(p game.Priority) {
	base := m.tuning.ClockStandard
	switch p {
	case game.PriorityCritical:
		base = m.tuning.ClockCritical
	case game.PriorityImportant:
		base = m.tuning.ClockImportant
	case game.PriorityDowntime:
		base = m.tuning.ClockDowntime
	}
	m.state.GameTime += base + m.rng.Pick(6)
}

// Result reads the final statistics out of match state. It is normally
// called after the tick loop ends, but a partially simulated match
// yields a valid partial result too.
func (m *Match) Result() *game.MatchResult {
	res := &game.MatchResult{
		MatchID:   m.state.MatchID,
		HomeTeam:  m.state.Home.Name,
		AwayTeam:  m.state.Away.Name,
		HomeScore: m.state.Home.Score,
		AwayScore: m.state.Away.Score,
		Duration:  m.state.MaxTime,
		Ticks:     m.state.Tick,
		HomeStats: m.state.Home.MatchStats(),
		AwayStats: m.state.Away.MatchStats(),
	}
	appendLines := func(team *game.TeamState, side game.Side, order []string) {
		for _, id := range order {
			p := team.Players[id]
			res.Players = append(res.Players, game.PlayerLine{
				PlayerID: p.ID,
				Name:     p.Name,
				TeamID:   team.ID,
				Side:     side,
				Stats:    p.MatchStats,
			})
		}
	}
	appendLines(m.state.Home, game.SideHome, m.homeOrder)
	appendLines(m.state.Away, game.SideAway, m.awayOrder)
	return res
}
