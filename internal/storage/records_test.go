package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimmy058910/replitballgame-sub010/internal/game"
)

func TestEventToRecord(t *testing.T) {
	ev := game.MatchEvent{
		ID:          7,
		Tick:        3,
		GameTime:    65,
		Type:        game.EventTurnover,
		Priority:    game.PriorityCritical,
		Side:        game.SideAway,
		PlayerIDs:   []string{"a1", "h2", "a4"},
		Description: "the ball is loose",
		Stats: game.EventStats{
			Yards:    0,
			Turnover: true,
			Deltas: map[string]game.PlayerMatchStats{
				"h2": {Turnovers: 1},
				"a4": {Recoveries: 1},
			},
		},
	}

	rec, err := eventToRecord("m-1", ev)
	require.NoError(t, err)

	assert.Equal(t, "m-1", rec.MatchID)
	assert.Equal(t, uint64(7), rec.Seq)
	assert.Equal(t, "turnover", rec.Type)
	assert.Equal(t, "critical", rec.Priority)
	assert.Equal(t, "away", rec.Side)
	assert.Equal(t, "a1,h2,a4", rec.PlayerIDs, "player ids keep emission order")
	assert.True(t, rec.Turnover)

	// The payload must round-trip the full structured stats.
	var stats game.EventStats
	require.NoError(t, json.Unmarshal(rec.Payload, &stats))
	assert.Equal(t, ev.Stats, stats)
}

func TestPlayerLineToRecord(t *testing.T) {
	line := game.PlayerLine{
		PlayerID: "h2",
		Name:     "Home 2",
		TeamID:   "home",
		Side:     game.SideHome,
		Stats: game.PlayerMatchStats{
			RushingAttempts: 9,
			RushingYards:    41,
			PassingYards:    12,
			Scores:          1,
			Tackles:         2,
			Turnovers:       1,
			Catches:         3,
		},
	}

	rec, err := playerLineToRecord("m-1", line)
	require.NoError(t, err)

	assert.Equal(t, 41, rec.RushingYards)
	assert.Equal(t, 12, rec.PassingYards)
	assert.Equal(t, 1, rec.Scores)
	assert.Equal(t, 2, rec.Tackles)
	assert.Equal(t, 1, rec.Turnovers)

	// Columns not promoted to the record still live in the JSON line.
	var full game.PlayerMatchStats
	require.NoError(t, json.Unmarshal(rec.Line, &full))
	assert.Equal(t, line.Stats, full)
}
