package engine

import "github.com/jimmy058910/replitballgame-sub010/internal/game"

// applyStaminaDrain runs once per tick after event resolution, over
// every on-field player of both teams. Demanding roles (Runner, Passer)
// tire faster; races may drain slower or regain a little stamina on a
// chance-gated roll. Draw order is fixed (home field slots, then away)
// so replays stay deterministic.
func (m *Match) applyStaminaDrain() {
	for _, team := range []*game.TeamState{m.state.Home, m.state.Away} {
		for _, p := range team.FieldPlayers() {
			m.drainPlayer(p)
		}
	}
}

func (m *Match) drainPlayer(p *game.PlayerState) {
	race := m.tuning.raceFor(p.Race)

	drain := m.tuning.StaminaDrainPerTick
	if p.Role == game.RoleRunner || p.Role == game.RolePasser {
		drain *= m.tuning.DemandingRoleMult
	}
	drain *= race.drainMult()

	p.CurrentStamina -= drain
	if race.RegenChance > 0 && m.rng.Chance(race.RegenChance) {
		p.CurrentStamina += race.RegenAmount
	}
	if p.CurrentStamina < 0 {
		p.CurrentStamina = 0
	}
	if p.CurrentStamina > p.StaminaCapacity {
		p.CurrentStamina = p.StaminaCapacity
	}

	// Recompute from scratch every tick; incremental adjustment drifts.
	p.FatiguePenalty = m.tuning.fatiguePenalty(p.CurrentStamina)
}

// fatiguePenalty derives the performance penalty from current stamina:
// zero above the threshold, scaling linearly up to the configured
// maximum as stamina approaches 0.
func (t *Tuning) fatiguePenalty(stamina float64) float64 {
	if stamina >= t.FatigueThreshold {
		return 0
	}
	if stamina <= 0 {
		return t.MaxFatiguePenalty
	}
	return t.MaxFatiguePenalty * (1 - stamina/t.FatigueThreshold)
}
