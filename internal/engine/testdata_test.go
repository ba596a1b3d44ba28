package engine

import (
	"fmt"

	"github.com/jimmy058910/replitballgame-sub010/internal/game"
)

// testRoster builds a roster of n identical players for one role/race.
func testRoster(teamID string, n int, role game.Role, race game.Race, attrs game.Stats) game.Roster {
	r := game.Roster{TeamID: teamID, TeamName: teamID}
	for i := 0; i < n; i++ {
		r.Players = append(r.Players, game.RosterPlayer{
			ID:              fmt.Sprintf("%s-p%d", teamID, i),
			Name:            fmt.Sprintf("%s Player %d", teamID, i),
			Role:            role,
			Race:            race,
			Attributes:      attrs,
			StaminaCapacity: 100,
		})
	}
	return r
}

// balancedRosters returns a plain home/away pair used by most tests.
func balancedRosters() (game.Roster, game.Roster) {
	attrs := game.Stats{Speed: 25, Power: 25, Throwing: 25, Catching: 25, Kicking: 25, Agility: 25, Leadership: 25}
	home := game.Roster{TeamID: "home", TeamName: "Home XI"}
	away := game.Roster{TeamID: "away", TeamName: "Away XI"}
	roles := []game.Role{game.RolePasser, game.RoleRunner, game.RoleRunner, game.RoleBlocker, game.RoleBlocker, game.RoleBlocker}
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
