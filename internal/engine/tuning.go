package engine

import "github.com/jimmy058910/replitballgame-sub010/internal/game"

// RaceModifier is one row of the race table: fixed additive stat
// deltas plus the stamina behavior for that race. Adding a race is a
// data change (config override), not a code change.
type RaceModifier struct {
	StatDeltas game.Stats `json:"stat_deltas"`
	// StaminaDrainMult scales the per-tick stamina drain (1.0 = normal,
	// lower = more durable). Zero means "unset" and is treated as 1.0.
	StaminaDrainMult float64 `json:"stamina_drain_mult,omitempty"`
	// RegenChance gates a small passive recovery of RegenAmount stamina
	// each tick.
	RegenChance float64 `json:"regen_chance,omitempty"`
	RegenAmount float64 `json:"regen_amount,omitempty"`
}

// Tuning collects every balance constant the engine consumes. The
// engine does not define game balance; these values are configuration
// inputs, overridable from matchsim_config.json.
type Tuning struct {
	// Action type weights; normalized at selection time.
	RunWeight     float64 `json:"run_weight"`
	PassWeight    float64 `json:"pass_weight"`
	KickWeight    float64 `json:"kick_weight"`
	DefenseWeight float64 `json:"defense_weight"`

	// Run resolution.
	RunBaseSuccess       float64 `json:"run_base_success"`
	BreakawayYards       int     `json:"breakaway_yards"`
	BreakawaySpeed       float64 `json:"breakaway_speed"`
	ScoreChance          float64 `json:"score_chance"`
	BreakawayScoreChance float64 `json:"breakaway_score_chance"`

	// Pass resolution.
	PassBaseSuccess float64 `json:"pass_base_success"`
	DeepPassYards   int     `json:"deep_pass_yards"`
	InterceptChance float64 `json:"intercept_chance"`

	// Kick resolution.
	KickBaseSuccess float64 `json:"kick_base_success"`
	KickPoints      int     `json:"kick_points"`

	// Scoring.
	ScorePoints int `json:"score_points"`

	// Tackle / turnover resolution.
	FumbleChance   float64 `json:"fumble_chance"`
	BigHitPowerGap float64 `json:"big_hit_power_gap"`

	// Stamina and fatigue.
	StaminaDrainPerTick float64 `json:"stamina_drain_per_tick"`
	DemandingRoleMult   float64 `json:"demanding_role_mult"`
	FatigueThreshold    float64 `json:"fatigue_threshold"`
	MaxFatiguePenalty   float64 `json:"max_fatigue_penalty"`

	// Clock seconds consumed per priority tier; every tier must stay
	// positive so the simulation always terminates.
	ClockCritical  int `json:"clock_critical"`
	ClockImportant int `json:"clock_important"`
	ClockStandard  int `json:"clock_standard"`
	ClockDowntime  int `json:"clock_downtime"`

	// Race table, keyed by the closed race enum. Unknown races simply
	// have no row and receive no modifier.
	Races map[game.Race]RaceModifier `json:"races"`
}

// DefaultTuning returns the built-in balance values. League deployments
// override individual fields via the config file.
func DefaultTuning() Tuning {
	return Tuning{
		RunWeight:     0.45,
		PassWeight:    0.30,
		KickWeight:    0.10,
		DefenseWeight: 0.15,

		RunBaseSuccess:       0.50,
		BreakawayYards:       12,
		BreakawaySpeed:       28,
		ScoreChance:          0.04,
		BreakawayScoreChance: 0.25,

		PassBaseSuccess: 0.50,
		DeepPassYards:   15,
		InterceptChance: 0.12,

		KickBaseSuccess: 0.55,
		KickPoints:      3,

		ScorePoints: 6,

		FumbleChance:   0.18,
		BigHitPowerGap: 8,

		StaminaDrainPerTick: 0.4,
		DemandingRoleMult:   1.5,
		FatigueThreshold:    20,
		MaxFatiguePenalty:   0.5,

		ClockCritical:  10,
		ClockImportant: 15,
		ClockStandard:  20,
		ClockDowntime:  30,

		Races: DefaultRaces(),
	}
}

// DefaultRaces returns the built-in race table.
func DefaultRaces() map[game.Race]RaceModifier {
	return map[game.Race]RaceModifier{
		// Humans are the balanced baseline: a small leadership edge and
		// nothing else.
		game.RaceHuman: {
			StatDeltas: game.Stats{Leadership: 1},
		},
		// Sylvans are quick and recover in bursts.
		game.RaceSylvan: {
			StatDeltas:  game.Stats{Speed: 3, Agility: 4, Power: -2},
			RegenChance: 0.10,
			RegenAmount: 1.5,
		},
		// Gryll trade quickness for bulk and tire slowly.
		game.RaceGryll: {
			StatDeltas:       game.Stats{Power: 5, Speed: -3, Agility: -2},
			StaminaDrainMult: 0.7,
		},
		// Lumina excel at the passing game.
		game.RaceLumina: {
			StatDeltas: game.Stats{Throwing: 4, Leadership: 3, Speed: -1},
		},
		// Umbra strike from the shadows: fast, slippery, aloof.
		game.RaceUmbra: {
			StatDeltas: game.Stats{Speed: 2, Agility: 3, Leadership: -3},
		},
	}
}

// raceFor looks up the modifier row for a race. A missing row (unknown
// race tag) yields the zero modifier: graceful degradation, never an
// error.
func (t *Tuning) raceFor(r game.Race) RaceModifier {
	if mod, ok := t.Races[r]; ok {
		return mod
	}
	return RaceModifier{}
}

// drainMult returns the effective race drain multiplier, treating the
// zero value as 1.0.
func (m RaceModifier) drainMult() float64 {
	if m.StaminaDrainMult == 0 {
		return 1.0
	}
	return m.StaminaDrainMult
}
