package engine

import (
	"math"

	"github.com/jimmy058910/replitballgame-sub010/internal/commentary"
	"github.com/jimmy058910/replitballgame-sub010/internal/game"
)

// resolveRun plays one rushing attempt for the possessing team.
//
// The contests are zero-sum differentials, deliberately unclamped:
// extreme stat mismatches are balanced by the outcome distribution, not
// by capping the differential. Yardage is floored at zero — a run never
// loses ground through this path; losses come from tackle resolutions.
func (m *Match) resolveRun() resolution {
	off, side := m.possessing()
	def, _ := m.defending()

	carrier := m.pickByRole(off, game.RoleRunner)
	eff := m.tuning.effectiveStats(carrier)
	defAvg := m.tuning.averageDefense(def)

	powerContest := eff.Power - defAvg.Power
	speedContest := eff.Speed - defAvg.Power/2

	var yards int
	success := m.rng.Next() < m.tuning.RunBaseSuccess+powerContest/100
	if success {
		yards = int(math.Floor(2 + speedContest/5 + m.rng.Next()*5))
		if yards < 0 {
			yards = 0
		}
	} else {
		// stuffed at the line
		yards = int(math.Floor(m.rng.Next() * 3))
	}

	breakaway := yards >= m.tuning.BreakawayYards && eff.Speed > m.tuning.BreakawaySpeed

	scoreChance := m.tuning.ScoreChance
	if breakaway {
		scoreChance = m.tuning.BreakawayScoreChance
	}
	scored := m.rng.Chance(scoreChance)

	res := resolution{
		evType:    game.EventRun,
		priority:  game.PriorityDowntime,
		side:      side,
		playerIDs: []string{carrier.ID},
		stats: game.EventStats{
			Yards:     yards,
			Breakaway: breakaway,
			Score:     scored,
			Turnover:  false,
		},
		narration: commentary.Context{
			Carrier:     carrier.Name,
			CarrierRace: carrier.Race,
			Team:        off.Name,
			Opponent:    def.Name,
			Yards:       yards,
			Breakaway:   breakaway,
			Score:       scored,
		},
	}
	if yards > 0 {
		res.priority = game.PriorityStandard
	}
	if breakaway {
		res.priority = game.PriorityImportant
	}

	delta := game.PlayerMatchStats{RushingAttempts: 1, RushingYards: yards}
	if breakaway {
		delta.Breakaways = 1
	}
	if scored {
		delta.Scores = 1
		res.evType = game.EventScore
		res.priority = game.PriorityCritical
		res.scoringSide = side
		res.points = m.tuning.ScorePoints
		// kickoff after the score
		res.possessionTo = side.Opponent()
	}
	res.addDelta(carrier.ID, delta)
	return res
}
