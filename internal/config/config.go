package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jimmy058910/replitballgame-sub010/internal/commentary"
	"github.com/jimmy058910/replitballgame-sub010/internal/engine"
	"github.com/jimmy058910/replitballgame-sub010/internal/game"
)

// LeagueMatchDuration is the fixed simulated length (seconds) of a
// league match when the caller does not override it.
const LeagueMatchDuration = 1200

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
	} `json:"database"`
	// MatchDuration overrides the league default (seconds).
	MatchDuration int `json:"match_duration"`
	// Tuning overrides individual engine balance values. Omitted fields
	// keep their defaults.
	Tuning *json.RawMessage `json:"tuning"`
	// Races replaces the race modifier table wholesale when present.
	Races map[game.Race]engine.RaceModifier `json:"races"`
	// PhraseBank points at an external commentary asset (JSON overlay).
	PhraseBank string `json:"phrase_bank"`
}

// LoadedConfig is the fully resolved runtime configuration: engine
// tuning, commentary bank and server wiring.
type LoadedConfig struct {
	Tuning        engine.Tuning
	Bank          commentary.Bank
	MatchDuration int
	ServerAddress string
	DatabasePath  string
}

// Defaults returns the configuration used when no config file exists:
// built-in tuning, built-in phrase bank, league duration.
func Defaults() *LoadedConfig {
	return &LoadedConfig{
		Tuning:        engine.DefaultTuning(),
		Bank:          commentary.DefaultBank(),
		MatchDuration: LeagueMatchDuration,
		ServerAddress: ":8080",
		DatabasePath:  "./data/matchsim.db",
	}
}

// LoadConfig reads the configuration file at path and resolves it over
// the defaults. The config file is the source of truth for anything it
// sets; validation failures are returned, never papered over.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := Defaults()

	if rc.Tuning != nil {
		// Unmarshal over the defaults so omitted fields keep their values.
		if err := json.Unmarshal(*rc.Tuning, &out.Tuning); err != nil {
			return nil, fmt.Errorf("config file %s: invalid tuning block: %w", path, err)
		}
	}
	if rc.Races != nil {
		out.Tuning.Races = rc.Races
	}
	if err := validateTuning(path, &out.Tuning); err != nil {
		return nil, err
	}

	if rc.MatchDuration != 0 {
		if rc.MatchDuration < 0 {
			return nil, fmt.Errorf("config file %s: match_duration must be positive", path)
		}
		out.MatchDuration = rc.MatchDuration
	}
	if rc.PhraseBank != "" {
		bank, err := commentary.LoadBank(rc.PhraseBank)
		if err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		out.Bank = bank
	}
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Database != nil && rc.Database.Path != "" {
		out.DatabasePath = rc.Database.Path
	}
	return out, nil
}

// validateTuning enforces the invariants the engine relies on:
// positive clock consumption for every tier (termination), a positive
// action weight total, and fatigue bounds.
func validateTuning(path string, t *engine.Tuning) error {
	if t.ClockCritical <= 0 || t.ClockImportant <= 0 || t.ClockStandard <= 0 || t.ClockDowntime <= 0 {
		return fmt.Errorf("config file %s: every clock_* value must be positive", path)
	}
	if t.RunWeight+t.PassWeight+t.KickWeight+t.DefenseWeight <= 0 {
		return fmt.Errorf("config file %s: action weights must sum to a positive value", path)
	}
	if t.MaxFatiguePenalty < 0 || t.MaxFatiguePenalty >= 1 {
		return fmt.Errorf("config file %s: max_fatigue_penalty must be in [0, 1)", path)
	}
	if t.FatigueThreshold <= 0 {
		return fmt.Errorf("config file %s: fatigue_threshold must be positive", path)
	}
	return nil
}
