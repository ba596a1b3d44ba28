package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jimmy058910/replitballgame-sub010/internal/engine"
	"github.com/jimmy058910/replitballgame-sub010/internal/game"
)

type mockMatchRepo struct {
	saved   []*game.MatchResult
	saveErr error
}

func (m *mockMatchRepo) SaveMatchResult(res *game.MatchResult) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, res)
	return nil
}

func testRosterPair() (game.Roster, game.Roster) {
	attrs := game.Stats{Speed: 25, Power: 25, Throwing: 25, Catching: 25, Kicking: 25, Agility: 25, Leadership: 25}
	roles := []game.Role{game.RolePasser, game.RoleRunner, game.RoleRunner, game.RoleBlocker, game.RoleBlocker, game.RoleBlocker}
	home := game.Roster{TeamID: "home", TeamName: "Home XI"}
	away := game.Roster{TeamID: "away", TeamName: "Away XI"}
	for i, role := range roles {
		home.Players = append(home.Players, game.RosterPlayer{
			ID: fmt.Sprintf("h%d", i), Name: fmt.Sprintf("Home %d", i),
			Role: role, Race: game.RaceHuman, Attributes: attrs, StaminaCapacity: 100,
		})
		away.Players = append(away.Players, game.RosterPlayer{
			ID: fmt.Sprintf("a%d", i), Name: fmt.Sprintf("Away %d", i),
			Role: role, Race: game.RaceHuman, Attributes: attrs, StaminaCapacity: 100,
		})
	}
	return home, away
}

func TestRunMatch_SimulatesAndPersists(t *testing.T) {
	repo := &mockMatchRepo{}
	home, away := testRosterPair()

	res, err := RunMatch(repo, "svc-match-1", home, away, 1200, engine.DefaultTuning(), nil)
	if err != nil {
		t.Fatalf("RunMatch failed: %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected one saved result, got %d", len(repo.saved))
	}
	if repo.saved[0] != res {
		t.Error("saved result is not the returned result")
	}
	if res.Ticks == 0 {
		t.Error("match produced no ticks")
	}
	if len(res.Events) != res.Ticks {
		t.Errorf("expected one event per tick, got %d events for %d ticks", len(res.Events), res.Ticks)
	}
	if len(res.Players) != 12 {
		t.Errorf("expected 12 player lines, got %d", len(res.Players))
	}
}

func TestRunMatch_RequiresMatchID(t *testing.T) {
	home, away := testRosterPair()

	_, err := RunMatch(&mockMatchRepo{}, "", home, away, 1200, engine.DefaultTuning(), nil)
	if !errors.Is(err, ErrMatchIDRequired) {
		t.Fatalf("expected ErrMatchIDRequired, got %v", err)
	}
}

func TestRunMatch_PropagatesEngineErrors(t *testing.T) {
	home, away := testRosterPair()
	home.Players = home.Players[:3]

	_, err := RunMatch(&mockMatchRepo{}, "svc-match-2", home, away, 1200, engine.DefaultTuning(), nil)
	if !errors.Is(err, engine.ErrRosterTooSmall) {
		t.Fatalf("expected ErrRosterTooSmall, got %v", err)
	}
}

func TestRunMatch_PropagatesRepoErrors(t *testing.T) {
	repo := &mockMatchRepo{saveErr: errors.New("disk full")}
	home, away := testRosterPair()

	_, err := RunMatch(repo, "svc-match-3", home, away, 1200, engine.DefaultTuning(), nil)
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("expected repo error to propagate, got %v", err)
	}
}

func TestRunMatch_NilRepoSkipsPersistence(t *testing.T) {
	home, away := testRosterPair()

	res, err := RunMatch(nil, "svc-match-4", home, away, 1200, engine.DefaultTuning(), nil)
	if err != nil {
		t.Fatalf("RunMatch with nil repo failed: %v", err)
	}
	if res == nil || res.Ticks == 0 {
		t.Fatal("expected a complete result without persistence")
	}
}

func TestRunMatch_DeterministicForSameID(t *testing.T) {
	home, away := testRosterPair()

	res1, err := RunMatch(nil, "svc-replay", home, away, 1200, engine.DefaultTuning(), nil)
	if err != nil {
		t.Fatal(err)
	}
	home2, away2 := testRosterPair()
	res2, err := RunMatch(nil, "svc-replay", home2, away2, 1200, engine.DefaultTuning(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res1.HomeScore != res2.HomeScore || res1.AwayScore != res2.AwayScore {
		t.Errorf("same match id produced different scores: %d-%d vs %d-%d",
			res1.HomeScore, res1.AwayScore, res2.HomeScore, res2.AwayScore)
	}
	if res1.Ticks != res2.Ticks {
		t.Errorf("same match id produced different tick counts: %d vs %d", res1.Ticks, res2.Ticks)
	}
}
