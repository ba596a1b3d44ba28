package service

import (
	"errors"

	"github.com/jimmy058910/replitballgame-sub010/internal/commentary"
	"github.com/jimmy058910/replitballgame-sub010/internal/constants"
	"github.com/jimmy058910/replitballgame-sub010/internal/engine"
	"github.com/jimmy058910/replitballgame-sub010/internal/game"
	"github.com/jimmy058910/replitballgame-sub010/internal/logging"
)

var ErrMatchIDRequired = errors.New("match id is required")

// MatchRepo is the slice of the storage layer RunMatch needs. A nil
// repo skips persistence (useful for ad-hoc simulations and tests).
type MatchRepo interface {
	SaveMatchResult(res *game.MatchResult) error
}

// RunMatch simulates one full match to completion and persists the
// result. The engine is pull-based; this is the canonical caller that
// drives the tick loop until the clock runs out.
func RunMatch(repo MatchRepo, matchID string, home, away game.Roster, duration int, tuning engine.Tuning, commentator *commentary.Generator) (*game.MatchResult, error) {
	if matchID == "" {
		return nil, ErrMatchIDRequired
	}
	m, err := engine.New(matchID, home, away, duration, tuning, commentator)
	if err != nil {
		return nil, err
	}
	// The engine degrades unknown tags to "no modifier"; surfacing them
	// is the caller's job, per the engine contract.
	for _, tag := range m.UnknownTags() {
		logging.Warn("unknown roster tag ignored", logging.Fields{
			constants.LogFieldMatchID: matchID,
			constants.LogFieldTag:     tag,
		})
	}

	var events []game.MatchEvent
	for !m.Done() {
		ev, err := m.Advance()
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	res := m.Result()
	res.Events = events

	if repo != nil {
		if err := repo.SaveMatchResult(res); err != nil {
			return nil, err
		}
	}
	logging.Info("match simulated", logging.Fields{
		constants.LogFieldMatchID:  matchID,
		constants.LogFieldHomeTeam: res.HomeTeam,
		constants.LogFieldAwayTeam: res.AwayTeam,
		constants.LogFieldTicks:    res.Ticks,
	})
	return res, nil
}
