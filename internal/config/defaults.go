package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file is unreadable.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:   0.6,
			JumpForce: -12,
			GroundY:   250,
		},
		Field: FieldConfig{
			Width:       600,
			Height:      400,
			ScrollSpeed: 5,
			SpawnGate:   400, // width - 200
			SpawnChance: 0.02,
		},
		Obstacle: ObstacleConfig{
			Width:  30,
			Height: 50,
		},
		Player: PlayerConfig{
			LaneX: 100,
			Size:  40,
		},
		Scoring: ScoringConfig{
			PerTick: 1,
			Divisor: 10,
		},
		View: ViewConfig{
			GroundLine: 320,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
