// Package config provides YAML-based configuration loading for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tunables of the runner game.
// Distances are world pixels, speeds are pixels per tick.
type RunnerConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Field    FieldConfig    `yaml:"field"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Player   PlayerConfig   `yaml:"player"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	View     ViewConfig     `yaml:"view"`
}

// PhysicsConfig defines the player's vertical motion.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"` // Negative = upwards
	GroundY   float64 `yaml:"ground_y"`   // Resting top edge of the player
}

// FieldConfig defines the playfield and obstacle stream.
type FieldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	ScrollSpeed float64 `yaml:"scroll_speed"`
	SpawnGate   float64 `yaml:"spawn_gate"`   // Rightmost obstacle must be left of this to spawn
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick probability once the gate is open
}

// ObstacleConfig defines the fixed obstacle shape.
type ObstacleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's lane and size.
type PlayerConfig struct {
	LaneX float64 `yaml:"lane_x"`
	Size  float64 `yaml:"size"`
}

// ScoringConfig defines how ticks turn into points.
type ScoringConfig struct {
	PerTick int `yaml:"per_tick"`
	Divisor int `yaml:"divisor"` // Displayed score = raw / divisor
}

// ViewConfig holds purely presentational values.
type ViewConfig struct {
	GroundLine float64 `yaml:"ground_line"` // Y of the grass strip
}

// Validate reports every value that would make the simulation meaningless.
func (c RunnerConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("physics.gravity", c.Physics.Gravity)
	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("field.scroll_speed", c.Field.ScrollSpeed)
	positive("obstacle.width", c.Obstacle.Width)
	positive("obstacle.height", c.Obstacle.Height)
	positive("player.size", c.Player.Size)

	if c.Physics.JumpForce >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_force must be negative (upwards), got %v", c.Physics.JumpForce))
	}
	if c.Field.SpawnChance < 0 || c.Field.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("field.spawn_chance must be within [0, 1], got %v", c.Field.SpawnChance))
	}
	if c.Field.SpawnGate > c.Field.Width {
		errs = append(errs, fmt.Errorf("field.spawn_gate (%v) must not exceed field.width (%v)", c.Field.SpawnGate, c.Field.Width))
	}
	if c.Scoring.PerTick < 0 {
		errs = append(errs, fmt.Errorf("scoring.per_tick must not be negative, got %d", c.Scoring.PerTick))
	}
	if c.Scoring.Divisor <= 0 {
		errs = append(errs, fmt.Errorf("scoring.divisor must be positive, got %d", c.Scoring.Divisor))
	}

	return errors.Join(errs...)
}
