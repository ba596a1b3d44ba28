package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimmy058910/replitballgame-sub010/internal/game"
)

func freshPlayer(race game.Race) *game.PlayerState {
	return &game.PlayerState{
		ID:   "p1",
		Race: race,
		Base: game.Stats{Speed: 30, Power: 20, Throwing: 10, Catching: 10, Kicking: 10, Agility: 20, Leadership: 10},
	}
}

func TestEffectiveStats_BaseOnly(t *testing.T) {
	tun := DefaultTuning()
	p := freshPlayer("unknown-race")

	eff := tun.effectiveStats(p)
	assert.Equal(t, p.Base, eff, "unknown race with no bonuses and no fatigue must yield base stats")
}

func TestEffectiveStats_BonusesFolded(t *testing.T) {
	tun := DefaultTuning()
	p := freshPlayer("unknown-race")
	p.Bonuses = game.Stats{Speed: 5, Throwing: -2}

	eff := tun.effectiveStats(p)
	assert.Equal(t, 35.0, eff.Speed)
	assert.Equal(t, 8.0, eff.Throwing)
}

func TestEffectiveStats_RaceDeltas(t *testing.T) {
	tun := DefaultTuning()
	p := freshPlayer(game.RaceGryll)

	eff := tun.effectiveStats(p)
	assert.Equal(t, 27.0, eff.Speed, "gryll trade speed")
	assert.Equal(t, 25.0, eff.Power, "gryll gain power")
	assert.Equal(t, 18.0, eff.Agility)
}

func TestEffectiveStats_FatigueScaling(t *testing.T) {
	tun := DefaultTuning()
	p := freshPlayer("unknown-race")
	p.FatiguePenalty = 0.5

	eff := tun.effectiveStats(p)
	assert.InDelta(t, 15.0, eff.Speed, 1e-9, "speed scales by (1-penalty)")
	assert.InDelta(t, 10.0, eff.Agility, 1e-9, "agility scales by (1-penalty)")
	// Power degrades half as fast: (1-0.5)*0.5 + 0.5 = 0.75.
	assert.InDelta(t, 15.0, eff.Power, 1e-9)
	assert.Equal(t, 10.0, eff.Throwing, "throwing is untouched by fatigue")
}

func TestEffectiveStats_Pure(t *testing.T) {
	tun := DefaultTuning()
	p := freshPlayer(game.RaceSylvan)
	p.Bonuses = game.Stats{Power: 3}
	p.FatiguePenalty = 0.25
	before := *p

	first := tun.effectiveStats(p)
	second := tun.effectiveStats(p)
	require.Equal(t, first, second, "repeated calls must agree")
	assert.Equal(t, before, *p, "effectiveStats must not mutate the player")
}

func TestFoldBonuses_UnknownNamesNoOp(t *testing.T) {
	folded, unknown := game.FoldBonuses(map[string]float64{
		"speed":        4,
		"Power":        2,
		"chutzpah":     9,
		"ball_control": 1,
	})
	assert.Equal(t, 4.0, folded.Speed)
	assert.Equal(t, 2.0, folded.Power, "bonus names are case-insensitive")
	assert.ElementsMatch(t, []string{"chutzpah", "ball_control"}, unknown)
}
