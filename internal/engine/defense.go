package engine

import (
	"github.com/jimmy058910/replitballgame-sub010/internal/commentary"
	"github.com/jimmy058910/replitballgame-sub010/internal/game"
)

// resolveTackle plays one defense-focused tick: a tackler squares up
// against the ball carrier, with a chance-gated forced fumble on a big
// hit. Fumbles go to a loose-ball scramble (resolveScramble).
func (m *Match) resolveTackle() resolution {
	off, offSide := m.possessing()
	def, defSide := m.defending()

	carrier := m.pickByRole(off, game.RoleRunner)
	tackler := m.pickByRole(def, game.RoleBlocker)
	carrierEff := m.tuning.effectiveStats(carrier)
	tacklerEff := m.tuning.effectiveStats(tackler)

	powerGap := tacklerEff.Power - carrierEff.Power
	bigHit := powerGap >= m.tuning.BigHitPowerGap

	res := resolution{
		evType:    game.EventTackle,
		priority:  game.PriorityStandard,
		side:      defSide,
		playerIDs: []string{tackler.ID, carrier.ID},
		narration: commentary.Context{
			Carrier:     carrier.Name,
			CarrierRace: carrier.Race,
			Defender:    tackler.Name,
			Team:        def.Name,
			Opponent:    off.Name,
			BigHit:      bigHit,
		},
	}
	res.addDelta(tackler.ID, game.PlayerMatchStats{Tackles: 1})

	if bigHit {
		res.priority = game.PriorityImportant
		if m.rng.Chance(m.tuning.FumbleChance) {
			return m.resolveScramble(res, carrier, tackler, off, def, offSide, defSide)
		}
	}
	return res
}

// resolveScramble settles a loose ball: each side's claim is weighted
// by its average effective agility, and the RNG decides who comes out
// of the pile with it. Shares the same effective-stats and RNG
// infrastructure as the primary resolutions.
func (m *Match) resolveScramble(res resolution, carrier, tackler *game.PlayerState, off, def *game.TeamState, offSide, defSide game.Side) resolution {
	offAgility := m.tuning.averageDefense(off).Agility
	defAgility := m.tuning.averageDefense(def).Agility
	total := offAgility + defAgility

	defClaim := 0.5
	if total > 0 {
		defClaim = defAgility / total
	}

	res.narration.Fumble = true
	res.addDelta(tackler.ID, game.PlayerMatchStats{FumblesForced: 1})

	if m.rng.Next() < defClaim {
		recoverer := def.FieldPlayers()[m.rng.Pick(len(def.OnField))]
		res.evType = game.EventTurnover
		res.priority = game.PriorityCritical
		res.possessionTo = defSide
		res.stats.Turnover = true
		res.playerIDs = append(res.playerIDs, recoverer.ID)
		res.narration.Recovered = recoverer.Name
		res.narration.RecoveredByDefense = true
		res.addDelta(carrier.ID, game.PlayerMatchStats{Turnovers: 1})
		res.addDelta(recoverer.ID, game.PlayerMatchStats{Recoveries: 1})
		return res
	}

	// Offense falls on its own ball; possession holds.
	recoverer := off.FieldPlayers()[m.rng.Pick(len(off.OnField))]
	res.priority = game.PriorityImportant
	res.playerIDs = append(res.playerIDs, recoverer.ID)
	res.narration.Recovered = recoverer.Name
	res.addDelta(recoverer.ID, game.PlayerMatchStats{Recoveries: 1})
	return res
}
