// Package config provides YAML-based configuration loading for the 1024
// puzzle: undo budget, spawn tables, goals and storage locations.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-1024/internal/games/t1024"
)

// T1024Config contains all configuration for the 1024 game.
type T1024Config struct {
	Undo    UndoConfig    `yaml:"undo"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Goals   GoalsConfig   `yaml:"goals"`
	Storage StorageConfig `yaml:"storage"`
}

// UndoConfig defines the undo budget.
type UndoConfig struct {
	MaxPerGame int `yaml:"max_per_game"`
}

// SpawnConfig defines the spawn weight tables.
type SpawnConfig struct {
	Threshold int           `yaml:"threshold"` // max tile at which Full replaces Small
	Small     []SpawnWeight `yaml:"small"`
	Full      []SpawnWeight `yaml:"full"`
}

// SpawnWeight is one row of a spawn table.
type SpawnWeight struct {
	Value  int `yaml:"value"`
	Weight int `yaml:"weight"`
}

// GoalsConfig defines the two goal stages.
type GoalsConfig struct {
	Milestone int `yaml:"milestone"`
	Final     int `yaml:"final"`
}

// StorageConfig defines where scores are persisted. A leading ~ is expanded
// by the storage package.
type StorageConfig struct {
	BestFile string `yaml:"best_file"`
	ScoresDB string `yaml:"scores_db"`
}

// Validate checks that the configuration describes a playable game.
func (c T1024Config) Validate() error {
	var errs []error

	if c.Undo.MaxPerGame < 0 {
		errs = append(errs, fmt.Errorf("undo.max_per_game must be >= 0, got %d", c.Undo.MaxPerGame))
	}
	if c.Spawn.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("spawn.threshold must be > 0, got %d", c.Spawn.Threshold))
	}
	errs = append(errs, validateTable("spawn.small", c.Spawn.Small)...)
	errs = append(errs, validateTable("spawn.full", c.Spawn.Full)...)

	if c.Goals.Milestone != t1024.GoalMilestone || c.Goals.Final != t1024.GoalFinal {
		errs = append(errs, fmt.Errorf("goals must be %d then %d, got %d then %d",
			t1024.GoalMilestone, t1024.GoalFinal, c.Goals.Milestone, c.Goals.Final))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid 1024 config: %w", errors.Join(errs...))
	}
	return nil
}

func validateTable(name string, table []SpawnWeight) []error {
	if len(table) == 0 {
		return []error{fmt.Errorf("%s must not be empty", name)}
	}

	var errs []error
	for i, w := range table {
		if !isTileValue(w.Value) {
			errs = append(errs, fmt.Errorf("%s[%d].value %d is not a power of two >= 2", name, i, w.Value))
		}
		if w.Weight <= 0 {
			errs = append(errs, fmt.Errorf("%s[%d].weight must be > 0, got %d", name, i, w.Weight))
		}
	}
	return errs
}

func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

// Rules converts the configuration into engine rules.
func (c T1024Config) Rules() t1024.Rules {
	return t1024.Rules{
		Spawn: t1024.SpawnRules{
			Threshold: c.Spawn.Threshold,
			Small:     toTable(c.Spawn.Small),
			Full:      toTable(c.Spawn.Full),
		},
		MaxUndos: c.Undo.MaxPerGame,
	}
}

func toTable(weights []SpawnWeight) t1024.WeightTable {
	table := make(t1024.WeightTable, 0, len(weights))
	for _, w := range weights {
		table = append(table, t1024.Weighted{Value: w.Value, Weight: w.Weight})
	}
	return table
}
