// Package config provides YAML-based game configuration loading, difficulty
// profiles and player settings for the arcade hub.
package config

import (
	"errors"
	"fmt"
)

// CellConfig maps world pixels onto terminal cells.
type CellConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RulesConfig holds the shared lives, scoring and collision rules.
type RulesConfig struct {
	StartLives        int     `yaml:"start_lives"`
	MaxLives          int     `yaml:"max_lives"`
	Countdown         int     `yaml:"countdown"`          // Seconds before the run starts
	Tolerance         float64 `yaml:"tolerance"`          // Pixels shaved off every side of both hitboxes
	DistanceDivisor   float64 `yaml:"distance_divisor"`   // Pixels scrolled per score point
	KnockbackVelocity float64 `yaml:"knockback_velocity"` // Impulse applied after a non-fatal hit
}

// PickupConfig defines the beneficial entity spawner.
type PickupConfig struct {
	IntervalMin   float64 `yaml:"interval_min"`   // Seconds
	IntervalMax   float64 `yaml:"interval_max"`   // Seconds
	MinSeparation float64 `yaml:"min_separation"` // Pixels from the previous pickup
	RetryAfter    float64 `yaml:"retry_after"`    // Seconds to wait when too close
	Size          float64 `yaml:"size"`
	ShieldSeconds float64 `yaml:"shield_seconds"`
}

func (p PickupConfig) validate() error {
	if p.IntervalMin <= 0 || p.IntervalMax < p.IntervalMin {
		return fmt.Errorf("pickup interval [%v, %v] is not a valid range", p.IntervalMin, p.IntervalMax)
	}
	if p.RetryAfter <= 0 {
		return errors.New("pickup retry_after must be positive")
	}
	if p.Size <= 0 {
		return errors.New("pickup size must be positive")
	}
	return nil
}

func (r RulesConfig) validate() error {
	if r.StartLives <= 0 || r.MaxLives < r.StartLives {
		return fmt.Errorf("lives: start %d, max %d", r.StartLives, r.MaxLives)
	}
	if r.Countdown < 0 {
		return fmt.Errorf("countdown must not be negative, got %d", r.Countdown)
	}
	if r.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %v", r.Tolerance)
	}
	if r.DistanceDivisor <= 0 {
		return fmt.Errorf("distance_divisor must be positive, got %v", r.DistanceDivisor)
	}
	return nil
}

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Profiles ProfileSet    `yaml:"profiles"`
	Player   RunnerPlayer  `yaml:"player"`
	Hazards  RunnerHazards `yaml:"hazards"`
	Pickups  PickupConfig  `yaml:"pickups"`
	Rules    RulesConfig   `yaml:"rules"`
	Cell     CellConfig    `yaml:"cell"`
}

// RunnerPlayer defines the runner's hitbox in pixels.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerHazards defines the obstacle size range in pixels.
type RunnerHazards struct {
	MinWidth          float64 `yaml:"min_width"`
	MaxWidth          float64 `yaml:"max_width"`
	MinHeight         float64 `yaml:"min_height"`
	MaxHeight         float64 `yaml:"max_height"`
	WidthCompensation float64 `yaml:"width_compensation"`
	AirPickupHeight   float64 `yaml:"air_pickup_height"` // Height of airborne pickups above ground
}

// Validate rejects configurations that would make a run unplayable.
func (c RunnerConfig) Validate() error {
	if err := c.Profiles.validate(true); err != nil {
		return fmt.Errorf("config: runner: %w", err)
	}
	h := c.Hazards
	if h.MinWidth <= 0 || h.MaxWidth < h.MinWidth || h.MinHeight <= 0 || h.MaxHeight < h.MinHeight {
		return fmt.Errorf("config: runner: hazard size range %vx%v..%vx%v is invalid", h.MinWidth, h.MinHeight, h.MaxWidth, h.MaxHeight)
	}
	if h.WidthCompensation < 0 {
		return fmt.Errorf("config: runner: width_compensation must not be negative")
	}
	for _, d := range Difficulties {
		if apex := c.Profiles.For(d).JumpApex(); apex <= h.MaxHeight {
			return fmt.Errorf("config: runner: profile %s jumps %.0fpx, hazards reach %.0fpx", d, apex, h.MaxHeight)
		}
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return errors.New("config: runner: player size must be positive")
	}
	if err := c.Pickups.validate(); err != nil {
		return fmt.Errorf("config: runner: %w", err)
	}
	if err := c.Rules.validate(); err != nil {
		return fmt.Errorf("config: runner: %w", err)
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return errors.New("config: runner: cell size must be positive")
	}
	return nil
}

// RacerConfig contains all configuration for the lane racer.
type RacerConfig struct {
	Profiles  ProfileSet    `yaml:"profiles"`
	Lanes     LanesConfig   `yaml:"lanes"`
	Player    RacerPlayer   `yaml:"player"`
	Obstacles RacerObstacle `yaml:"obstacles"`
	Pickups   RacerPickups  `yaml:"pickups"`
	Ramp      RampConfig    `yaml:"ramp"`
	Rules     RulesConfig   `yaml:"rules"`
	Cell      CellConfig    `yaml:"cell"`
}

// LanesConfig defines the road layout.
type LanesConfig struct {
	Easy    int           `yaml:"easy"`
	Normal  int           `yaml:"normal"`
	Hard    int           `yaml:"hard"`
	Width   float64       `yaml:"width"`  // Pixels per lane
	Jitter  float64       `yaml:"jitter"` // Max horizontal offset inside a lane
	Weights map[int][]int `yaml:"weights"`
}

// For returns the lane count for a difficulty level.
func (l LanesConfig) For(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return l.Easy
	case DifficultyNormal:
		return l.Normal
	case DifficultyHard:
		return l.Hard
	default:
		panic(fmt.Sprintf("config: no lane count for invalid %v", d))
	}
}

// RacerPlayer defines the player car.
type RacerPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Horizontal px/s while a key is held
	BottomMargin float64 `yaml:"bottom_margin"` // Gap between the car and the bottom edge
}

// RacerObstacle defines oncoming traffic.
type RacerObstacle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RacerPickups extends the shared pickup settings with the slow-down effect.
type RacerPickups struct {
	PickupConfig `yaml:",inline"`
	SlowSeconds  float64 `yaml:"slow_seconds"`
	SlowFactor   float64 `yaml:"slow_factor"` // Speed multiplier while slowed
}

// Validate rejects configurations that would make a run unplayable.
func (c RacerConfig) Validate() error {
	if err := c.Profiles.validate(false); err != nil {
		return fmt.Errorf("config: racer: %w", err)
	}
	for _, d := range Difficulties {
		n := c.Lanes.For(d)
		if n < 3 || n > 6 {
			return fmt.Errorf("config: racer: %s lane count %d outside 3..6", d, n)
		}
		weights, ok := c.Lanes.Weights[n]
		if !ok || len(weights) != n {
			return fmt.Errorf("config: racer: no weights for %d lanes", n)
		}
		total := 0
		for _, w := range weights {
			if w < 0 {
				return fmt.Errorf("config: racer: negative weight for %d lanes", n)
			}
			total += w
		}
		if total == 0 {
			return fmt.Errorf("config: racer: weights for %d lanes sum to zero", n)
		}
	}
	if c.Lanes.Width <= 0 || c.Lanes.Jitter < 0 {
		return errors.New("config: racer: lane width must be positive and jitter non-negative")
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Width > c.Lanes.Width {
		return fmt.Errorf("config: racer: obstacle width %v must fit lane width %v", c.Obstacles.Width, c.Lanes.Width)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Speed <= 0 {
		return errors.New("config: racer: player size and speed must be positive")
	}
	if err := c.Pickups.validate(); err != nil {
		return fmt.Errorf("config: racer: %w", err)
	}
	if c.Pickups.SlowFactor <= 0 || c.Pickups.SlowFactor > 1 {
		return fmt.Errorf("config: racer: slow_factor %v outside (0, 1]", c.Pickups.SlowFactor)
	}
	if err := c.Rules.validate(); err != nil {
		return fmt.Errorf("config: racer: %w", err)
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return errors.New("config: racer: cell size must be positive")
	}
	return nil
}

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board     SnakeBoard   `yaml:"board"`
	Speeds    SnakeSpeeds  `yaml:"speeds"`
	Modern    SnakeSpeedUp `yaml:"modern"`
	Food      SnakeFood    `yaml:"food"`
	Countdown int          `yaml:"countdown"`
}

// SnakeBoard defines the grid size.
type SnakeBoard struct {
	Cols          int `yaml:"cols"`
	Rows          int `yaml:"rows"`
	InitialLength int `yaml:"initial_length"`
}

// SnakeSpeeds are move intervals in milliseconds.
type SnakeSpeeds struct {
	Slow   int `yaml:"slow"`
	Normal int `yaml:"normal"`
	Fast   int `yaml:"fast"`
}

// For maps a difficulty to a move interval: easy is slow, hard is fast.
func (s SnakeSpeeds) For(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return s.Slow
	case DifficultyNormal:
		return s.Normal
	case DifficultyHard:
		return s.Fast
	default:
		panic(fmt.Sprintf("config: no snake speed for invalid %v", d))
	}
}

// SnakeSpeedUp defines the speed-up in modern mode.
type SnakeSpeedUp struct {
	SpeedUpEvery int `yaml:"speed_up_every"` // Points between speed-ups
	SpeedUpStep  int `yaml:"speed_up_step"`  // Milliseconds removed per speed-up
	MinInterval  int `yaml:"min_interval"`   // Fastest move interval in milliseconds
}

// SnakeFood defines food and bonus food.
type SnakeFood struct {
	Points        int `yaml:"points"`
	RewardEvery   int `yaml:"reward_every"`    // Bonus appears after every Nth food
	RewardPoints  int `yaml:"reward_points"`
	RewardSeconds int `yaml:"reward_seconds"` // Bonus lifetime
}

// Validate rejects configurations that would make a run unplayable.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if b.Cols < 5 || b.Rows < 5 {
		return fmt.Errorf("config: snake: board %dx%d is too small", b.Cols, b.Rows)
	}
	if b.InitialLength < 1 || b.InitialLength > b.Cols/2 {
		return fmt.Errorf("config: snake: initial_length %d does not fit the board", b.InitialLength)
	}
	for _, d := range Difficulties {
		if c.Speeds.For(d) <= 0 {
			return fmt.Errorf("config: snake: %s speed must be positive", d)
		}
	}
	if c.Modern.SpeedUpEvery <= 0 || c.Modern.SpeedUpStep < 0 || c.Modern.MinInterval <= 0 {
		return errors.New("config: snake: modern speed-up values are invalid")
	}
	if c.Food.Points <= 0 || c.Food.RewardEvery <= 0 || c.Food.RewardSeconds <= 0 {
		return errors.New("config: snake: food values must be positive")
	}
	if c.Countdown < 0 {
		return fmt.Errorf("config: snake: countdown must not be negative, got %d", c.Countdown)
	}
	return nil
}

// TicTacToeConfig contains all configuration for tic-tac-toe.
type TicTacToeConfig struct {
	CPU        TicTacToeCPU `yaml:"cpu"`
	RoundPause int          `yaml:"round_pause"` // Milliseconds a finished board stays up
}

// TicTacToeCPU defines the computer opponent.
type TicTacToeCPU struct {
	Think        int     `yaml:"think"`         // Milliseconds before the reply
	NormalRandom float64 `yaml:"normal_random"` // Chance of a random move on normal
}

// Validate rejects configurations that would make a round unplayable.
func (c TicTacToeConfig) Validate() error {
	if c.CPU.Think < 0 || c.RoundPause < 0 {
		return errors.New("config: tictactoe: delays must not be negative")
	}
	if c.CPU.NormalRandom < 0 || c.CPU.NormalRandom > 1 {
		return fmt.Errorf("config: tictactoe: normal_random %.2f is outside 0..1", c.CPU.NormalRandom)
	}
	return nil
}
