package engine

import (
	"math"

	"github.com/jimmy058910/replitballgame-sub010/internal/commentary"
	"github.com/jimmy058910/replitballgame-sub010/internal/game"
)

// resolvePass plays one passing attempt: structurally the same shape as
// the run resolution, with throwing contested against the defense's
// average agility and an interception sub-roll on a failed attempt.
func (m *Match) resolvePass() resolution {
	off, side := m.possessing()
	def, defSide := m.defending()

	passer := m.pickByRole(off, game.RolePasser)
	receiver := m.pickExcluding(off, game.RoleRunner, passer)
	passerEff := m.tuning.effectiveStats(passer)
	receiverEff := m.tuning.effectiveStats(receiver)
	defAvg := m.tuning.averageDefense(def)

	accuracyContest := passerEff.Throwing + receiverEff.Catching/2 - defAvg.Agility

	res := resolution{
		evType:    game.EventPass,
		side:      side,
		playerIDs: []string{passer.ID, receiver.ID},
		narration: commentary.Context{
			Carrier:     passer.Name,
			CarrierRace: passer.Race,
			Receiver:    receiver.Name,
			Team:        off.Name,
			Opponent:    def.Name,
		},
	}

	completed := m.rng.Next() < m.tuning.PassBaseSuccess+accuracyContest/100
	if !completed {
		res.priority = game.PriorityDowntime
		res.addDelta(passer.ID, game.PlayerMatchStats{PassAttempts: 1})
		if m.rng.Chance(m.tuning.InterceptChance) {
			interceptor := def.FieldPlayers()[m.rng.Pick(len(def.OnField))]
			res.evType = game.EventTurnover
			res.priority = game.PriorityImportant
			res.possessionTo = defSide
			res.stats.Turnover = true
			res.playerIDs = append(res.playerIDs, interceptor.ID)
			res.narration.Defender = interceptor.Name
			res.addDelta(passer.ID, game.PlayerMatchStats{Turnovers: 1})
			res.addDelta(interceptor.ID, game.PlayerMatchStats{Recoveries: 1})
		}
		return res
	}

	yards := int(math.Floor(3 + accuracyContest/4 + m.rng.Next()*8))
	if yards < 0 {
		yards = 0
	}
	deep := yards >= m.tuning.DeepPassYards && receiverEff.Speed > m.tuning.BreakawaySpeed

	scoreChance := m.tuning.ScoreChance
	if deep {
		scoreChance = m.tuning.BreakawayScoreChance
	}
	scored := m.rng.Chance(scoreChance)

	res.priority = game.PriorityStandard
	if deep {
		res.priority = game.PriorityImportant
	}
	res.stats.Yards = yards
	res.stats.Breakaway = deep
	res.stats.Score = scored
	res.narration.Yards = yards
	res.narration.Breakaway = deep
	res.narration.Score = scored
	res.narration.Completed = true

	res.addDelta(passer.ID, game.PlayerMatchStats{PassAttempts: 1, Completions: 1, PassingYards: yards})
	recvDelta := game.PlayerMatchStats{Catches: 1, ReceivingYards: yards}
	if scored {
		recvDelta.Scores = 1
		res.evType = game.EventScore
		res.priority = game.PriorityCritical
		res.scoringSide = side
		res.points = m.tuning.ScorePoints
		res.possessionTo = side.Opponent()
	}
	res.addDelta(receiver.ID, recvDelta)
	return res
}
