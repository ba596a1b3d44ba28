package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_AddNamed(t *testing.T) {
	var s Stats
	assert.True(t, s.AddNamed("speed", 4))
	assert.True(t, s.AddNamed(" Power ", 2), "names are trimmed and case-insensitive")
	assert.False(t, s.AddNamed("charisma", 9))

	assert.Equal(t, 4.0, s.Speed)
	assert.Equal(t, 2.0, s.Power)
}

func TestFoldBonuses(t *testing.T) {
	folded, unknown := FoldBonuses(map[string]float64{
		"agility":  3,
		"Kicking":  -1,
		"mystique": 5,
	})
	assert.Equal(t, 3.0, folded.Agility)
	assert.Equal(t, -1.0, folded.Kicking)
	assert.Equal(t, []string{"mystique"}, unknown)
}

func TestFoldBonuses_StableAcrossMapOrder(t *testing.T) {
	// "speed", "Speed" and "SPEED" all alias the speed stat, and float
	// addition is order-sensitive, so the fold must not depend on map
	// iteration order. Re-fold fresh copies of the same bag repeatedly
	// and require bit-identical results.
	bag := map[string]float64{
		"speed":    0.1,
		"Speed":    0.2,
		"SPEED":    0.3,
		"glamour":  1,
		"charisma": 2,
	}
	first, firstUnknown := FoldBonuses(bag)
	for i := 0; i < 200; i++ {
		copied := make(map[string]float64, len(bag))
		for k, v := range bag {
			copied[k] = v
		}
		folded, unknown := FoldBonuses(copied)
		require.Equal(t, first, folded, "fold %d diverged from the first fold", i)
		require.Equal(t, firstUnknown, unknown, "unknown-name order changed on fold %d", i)
	}
	// Sorted fold order: "SPEED" + "Speed" + "speed".
	assert.Equal(t, 0.3+0.2+0.1, first.Speed)
	assert.Equal(t, []string{"charisma", "glamour"}, firstUnknown)
}

func TestPlayerMatchStats_MergeAndPlays(t *testing.T) {
	var line PlayerMatchStats
	line.Merge(PlayerMatchStats{RushingAttempts: 1, RushingYards: 7})
	line.Merge(PlayerMatchStats{RushingAttempts: 1, RushingYards: 3, Breakaways: 1})
	line.Merge(PlayerMatchStats{PassAttempts: 1, Completions: 1, PassingYards: 12})
	line.Merge(PlayerMatchStats{Tackles: 2})

	assert.Equal(t, 2, line.RushingAttempts)
	assert.Equal(t, 10, line.RushingYards)
	assert.Equal(t, 1, line.Breakaways)
	assert.Equal(t, 12, line.PassingYards)
	assert.Equal(t, 5, line.Plays(), "plays = rushing + pass + kick attempts + tackles")
}

func TestSide_Opponent(t *testing.T) {
	assert.Equal(t, SideAway, SideHome.Opponent())
	assert.Equal(t, SideHome, SideAway.Opponent())
}
