package engine

import (
	"github.com/jimmy058910/replitballgame-sub010/internal/commentary"
	"github.com/jimmy058910/replitballgame-sub010/internal/game"
)

// resolveKick plays one field-goal attempt. The best fielded leg takes
// the kick against a distance drawn from the RNG; possession flips
// either way (kickoff on a make, turnover on downs on a miss).
func (m *Match) resolveKick() resolution {
	off, side := m.possessing()
	def, defSide := m.defending()

	kicker := m.pickBestKicker(off)
	eff := m.tuning.effectiveStats(kicker)

	distance := 20 + m.rng.Pick(31) // 20..50 yard attempt
	contest := eff.Kicking - float64(distance)/1.5
	good := m.rng.Next() < m.tuning.KickBaseSuccess+contest/100

	res := resolution{
		evType:    game.EventKick,
		side:      side,
		playerIDs: []string{kicker.ID},
		narration: commentary.Context{
			Kicker:      kicker.Name,
			Carrier:     kicker.Name,
			CarrierRace: kicker.Race,
			Team:        off.Name,
			Opponent:    def.Name,
			Yards:       distance,
			KickGood:    good,
		},
		possessionTo: defSide,
	}

	delta := game.PlayerMatchStats{KickAttempts: 1}
	if good {
		delta.KicksGood = 1
		res.priority = game.PriorityCritical
		res.scoringSide = side
		res.points = m.tuning.KickPoints
		res.stats.Score = true
	} else {
		res.priority = game.PriorityStandard
		res.stats.Turnover = true
	}
	res.stats.Yards = distance
	res.addDelta(kicker.ID, delta)
	return res
}
