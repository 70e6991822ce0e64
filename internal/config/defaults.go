package config

import (
	_ "embed"
)

//go:embed defaults/1024.yaml
var default1024YAML []byte

// DefaultT1024Config returns the default 1024 configuration.
func DefaultT1024Config() T1024Config {
	return T1024Config{
		Undo: UndoConfig{
			MaxPerGame: 3,
		},
		Spawn: SpawnConfig{
			Threshold: 64,
			Small: []SpawnWeight{
				{Value: 2, Weight: 800},
				{Value: 4, Weight: 160},
				{Value: 8, Weight: 40},
			},
			Full: []SpawnWeight{
				{Value: 2, Weight: 600},
				{Value: 4, Weight: 250},
				{Value: 8, Weight: 90},
				{Value: 16, Weight: 40},
				{Value: 32, Weight: 15},
				{Value: 64, Weight: 5},
			},
		},
		Goals: GoalsConfig{
			Milestone: 1024,
			Final:     2048,
		},
		Storage: StorageConfig{
			BestFile: "~/.arcade/1024_best.json",
			ScoresDB: "~/.arcade/scores.db",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case t1024ID:
		return default1024YAML
	default:
		return nil
	}
}
