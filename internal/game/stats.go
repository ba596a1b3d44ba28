package game

import (
	"sort"
	"strings"
)

// Stats is the fixed attribute schema shared by base stats, folded
// bonuses and effective stats. Keeping the schema closed (instead of an
// open string-keyed map) keeps resolution code type safe; name lookup
// happens only at the ingestion boundary via AddNamed.
type Stats struct {
	Speed      float64 `json:"speed"`
	Power      float64 `json:"power"`
	Throwing   float64 `json:"throwing"`
	Catching   float64 `json:"catching"`
	Kicking    float64 `json:"kicking"`
	Agility    float64 `json:"agility"`
	Leadership float64 `json:"leadership"`
}

// Add returns s with o added field-wise.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Speed:      s.Speed + o.Speed,
		Power:      s.Power + o.Power,
		Throwing:   s.Throwing + o.Throwing,
		Catching:   s.Catching + o.Catching,
		Kicking:    s.Kicking + o.Kicking,
		Agility:    s.Agility + o.Agility,
		Leadership: s.Leadership + o.Leadership,
	}
}

// AddNamed adds amount to the stat matching name (case-insensitive).
// It reports whether the name was recognized; unknown names leave the
// schema untouched so external tactics data can carry modifiers this
// engine version does not know about.
func (s *Stats) AddNamed(name string, amount float64) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "speed":
		s.Speed += amount
	case "power":
		s.Power += amount
	case "throwing":
		s.Throwing += amount
	case "catching":
		s.Catching += amount
	case "kicking":
		s.Kicking += amount
	case "agility":
		s.Agility += amount
	case "leadership":
		s.Leadership += amount
	default:
		return false
	}
	return true
}

// FoldBonuses resolves a named bonus bag onto the stat schema and
// returns the recognized subset plus the list of unknown names (for
// caller-side logging). Names are folded in sorted order: distinct keys
// may alias the same stat (AddNamed trims and lowercases), and float
// addition is not associative, so map iteration order must not leak
// into the result.
func FoldBonuses(bonuses map[string]float64) (Stats, []string) {
	names := make([]string, 0, len(bonuses))
	for name := range bonuses {
		names = append(names, name)
	}
	sort.Strings(names)

	var folded Stats
	var unknown []string
	for _, name := range names {
		if !folded.AddNamed(name, bonuses[name]) {
			unknown = append(unknown, name)
		}
	}
	return folded, unknown
}

// PlayerMatchStats is the accumulating per-player line. The same type
// doubles as the per-event delta payload (zero fields mean "no change").
type PlayerMatchStats struct {
	RushingAttempts int `json:"rushing_attempts,omitempty"`
	RushingYards    int `json:"rushing_yards,omitempty"`
	Breakaways      int `json:"breakaways,omitempty"`
	PassAttempts    int `json:"pass_attempts,omitempty"`
	Completions     int `json:"completions,omitempty"`
	PassingYards    int `json:"passing_yards,omitempty"`
	Catches         int `json:"catches,omitempty"`
	ReceivingYards  int `json:"receiving_yards,omitempty"`
	KickAttempts    int `json:"kick_attempts,omitempty"`
	KicksGood       int `json:"kicks_good,omitempty"`
	Scores          int `json:"scores,omitempty"`
	Tackles         int `json:"tackles,omitempty"`
	FumblesForced   int `json:"fumbles_forced,omitempty"`
	Turnovers       int `json:"turnovers,omitempty"`
	Recoveries      int `json:"recoveries,omitempty"`
}

// Merge adds a delta line onto the accumulated line.
func (p *PlayerMatchStats) Merge(d PlayerMatchStats) {
	p.RushingAttempts += d.RushingAttempts
	p.RushingYards += d.RushingYards
	p.Breakaways += d.Breakaways
	p.PassAttempts += d.PassAttempts
	p.Completions += d.Completions
	p.PassingYards += d.PassingYards
	p.Catches += d.Catches
	p.ReceivingYards += d.ReceivingYards
	p.KickAttempts += d.KickAttempts
	p.KicksGood += d.KicksGood
	p.Scores += d.Scores
	p.Tackles += d.Tackles
	p.FumblesForced += d.FumblesForced
	p.Turnovers += d.Turnovers
	p.Recoveries += d.Recoveries
}

// Plays counts how many resolved actions this player initiated. One
// action is resolved per tick, so summing Plays across both rosters
// must equal the tick count.
func (p PlayerMatchStats) Plays() int {
	return p.RushingAttempts + p.PassAttempts + p.KickAttempts + p.Tackles
}

// TeamMatchStats is derived from the accumulated player lines plus the
// team score; it is never stored independently.
type TeamMatchStats struct {
	Points       int `json:"points"`
	TotalYards   int `json:"total_yards"`
	RushingYards int `json:"rushing_yards"`
	PassingYards int `json:"passing_yards"`
	Scores       int `json:"scores"`
	Turnovers    int `json:"turnovers"`
	Tackles      int `json:"tackles"`
}
