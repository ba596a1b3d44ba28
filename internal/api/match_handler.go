package api

import (
	"github.com/jimmy058910/replitballgame-sub010/internal/commentary"
	"github.com/jimmy058910/replitballgame-sub010/internal/engine"
	"github.com/jimmy058910/replitballgame-sub010/internal/storage"
)

// MatchHandler bundles the dependencies the match endpoints need.
type MatchHandler struct {
	repo        storage.Repository
	tuning      engine.Tuning
	commentator *commentary.Generator
	// duration is the simulated match length used when a request does
	// not override it.
	duration int
}

func NewMatchHandler(repo storage.Repository, tuning engine.Tuning, commentator *commentary.Generator, duration int) *MatchHandler {
	return &MatchHandler{repo: repo, tuning: tuning, commentator: commentator, duration: duration}
}
