package storage

import "github.com/jimmy058910/replitballgame-sub010/internal/game"

// Repository is the persistence surface for match results. The engine
// never touches it; the service writes through it and the API reads.
type Repository interface {
	// SaveMatchResult stores the match summary, its full event stream
	// and every player's final line in one transaction.
	SaveMatchResult(res *game.MatchResult) error

	GetMatch(matchID string) (*MatchRecord, error)
	ListMatches(limit int) ([]MatchRecord, error)
	GetEvents(matchID string) ([]MatchEventRecord, error)
	GetPlayerStats(matchID string) ([]PlayerStatRecord, error)
}
