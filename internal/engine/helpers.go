package engine

import "github.com/jimmy058910/replitballgame-sub010/internal/game"

// pickByRole selects an on-field player of the preferred role via the
// match RNG. When no player of that role is fielded it falls back to
// any on-field player — the engine never fails to produce an action for
// lack of an ideal actor.
func (m *Match) pickByRole(team *game.TeamState, role game.Role) *game.PlayerState {
	candidates := make([]*game.PlayerState, 0, game.FieldSize)
	for _, p := range team.FieldPlayers() {
		if p.Role == role {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		candidates = team.FieldPlayers()
	}
	return candidates[m.rng.Pick(len(candidates))]
}

// pickExcluding selects an on-field player other than excl, preferring
// the given role. With only one fielded player it returns that player.
func (m *Match) pickExcluding(team *game.TeamState, role game.Role, excl *game.PlayerState) *game.PlayerState {
	preferred := make([]*game.PlayerState, 0, game.FieldSize)
	others := make([]*game.PlayerState, 0, game.FieldSize)
	for _, p := range team.FieldPlayers() {
		if p == excl {
			continue
		}
		if p.Role == role {
			preferred = append(preferred, p)
		} else {
			others = append(others, p)
		}
	}
	pool := preferred
	if len(pool) == 0 {
		pool = others
	}
	if len(pool) == 0 {
		return excl
	}
	return pool[m.rng.Pick(len(pool))]
}

// pickBestKicker returns the fielded player with the highest effective
// kicking stat, ties resolved by field-slot order.
func (m *Match) pickBestKicker(team *game.TeamState) *game.PlayerState {
	var best *game.PlayerState
	bestKick := -1.0
	for _, p := range team.FieldPlayers() {
		if k := m.tuning.effectiveStats(p).Kicking; k > bestKick {
			best = p
			bestKick = k
		}
	}
	return best
}

// possessing and defending return the two sides' team states for the
// current possession.
func (m *Match) possessing() (*game.TeamState, game.Side) {
	return m.state.Team(m.state.Possession), m.state.Possession
}

func (m *Match) defending() (*game.TeamState, game.Side) {
	side := m.state.Possession.Opponent()
	return m.state.Team(side), side
}
