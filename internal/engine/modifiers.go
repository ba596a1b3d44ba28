package engine

import "github.com/jimmy058910/replitballgame-sub010/internal/game"

// --- Effective stat helpers --------------------------------------------

// effectiveStats computes a player's attributes after folded bonuses,
// race deltas and the fatigue multiplier. It is a pure function of the
// PlayerState and may be called any number of times per tick.
//
// Order matters: base, then bonuses, then race, then fatigue scaling.
// Speed and agility scale by (1 - penalty); power degrades half as fast.
func (t *Tuning) effectiveStats(p *game.PlayerState) game.Stats {
	s := p.Base.Add(p.Bonuses).Add(t.raceFor(p.Race).StatDeltas)

	quick := 1.0 - p.FatiguePenalty
	heavy := quick*0.5 + 0.5
	s.Speed *= quick
	s.Agility *= quick
	s.Power *= heavy
	return s
}

// averageDefense averages the defending unit's effective stats over its
// on-field players.
func (t *Tuning) averageDefense(def *game.TeamState) game.Stats {
	players := def.FieldPlayers()
	if len(players) == 0 {
		return game.Stats{}
	}
	var sum game.Stats
	for _, p := range players {
		sum = sum.Add(t.effectiveStats(p))
	}
	n := float64(len(players))
	return game.Stats{
		Speed:      sum.Speed / n,
		Power:      sum.Power / n,
		Throwing:   sum.Throwing / n,
		Catching:   sum.Catching / n,
		Kicking:    sum.Kicking / n,
		Agility:    sum.Agility / n,
		Leadership: sum.Leadership / n,
	}
}
