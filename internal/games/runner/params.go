// Package runner implements a single-screen endless runner: the player
// auto-runs in a fixed lane and jumps over obstacles scrolling in from the
// right until one of them hits.
//
// World coordinates are pixels on the field with Y growing downwards; the
// player's Y is the top edge of its box and rests at Physics.GroundY.
package runner

import "github.com/vovakirdan/tui-runner/internal/config"

// Params collects every tunable of a session.
type Params struct {
	Physics      Physics
	Field        FieldParams
	Hitbox       Hitbox
	View         View
	ScorePerTick int
	ScoreDivisor int
}

// View holds the field dimensions renderers scale from. It never affects
// the simulation.
type View struct {
	Width      float64
	Height     float64
	GroundLine float64 // Y of the grass strip
}

// DefaultParams returns the parameters of the default configuration.
func DefaultParams() Params {
	return ParamsFromConfig(config.DefaultRunnerConfig())
}

// ParamsFromConfig converts a loaded configuration into session parameters.
func ParamsFromConfig(cfg config.RunnerConfig) Params {
	return Params{
		Physics: Physics{
			Gravity:   cfg.Physics.Gravity,
			JumpForce: cfg.Physics.JumpForce,
			GroundY:   cfg.Physics.GroundY,
		},
		Field: FieldParams{
			Width:          cfg.Field.Width,
			GroundY:        cfg.Physics.GroundY,
			ScrollSpeed:    cfg.Field.ScrollSpeed,
			SpawnGate:      cfg.Field.SpawnGate,
			SpawnChance:    cfg.Field.SpawnChance,
			ObstacleWidth:  cfg.Obstacle.Width,
			ObstacleHeight: cfg.Obstacle.Height,
		},
		Hitbox: Hitbox{
			LaneX:          cfg.Player.LaneX,
			PlayerSize:     cfg.Player.Size,
			ObstacleWidth:  cfg.Obstacle.Width,
			ObstacleHeight: cfg.Obstacle.Height,
		},
		View: View{
			Width:      cfg.Field.Width,
			Height:     cfg.Field.Height,
			GroundLine: cfg.View.GroundLine,
		},
		ScorePerTick: cfg.Scoring.PerTick,
		ScoreDivisor: cfg.Scoring.Divisor,
	}
}
