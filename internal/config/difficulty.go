package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/arcade-hub/internal/core"
)

// ErrUnknownDifficulty is returned when a difficulty selector is not one of
// the supported levels.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// Difficulty is the ordered difficulty selector chosen on the settings screen.
// The zero value is deliberately invalid.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyNormal
	DifficultyHard
)

// Difficulties lists the supported levels in order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty converts a selector name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "normal", "medium":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return 0, fmt.Errorf("%w %q (want easy, normal or hard)", ErrUnknownDifficulty, s)
	}
}

// Valid reports whether d is one of the supported levels.
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

// String returns the selector name.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// UnmarshalText lets Difficulty be decoded from YAML and flags.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText encodes the selector name.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w %d", ErrUnknownDifficulty, int(d))
	}
	return []byte(d.String()), nil
}

// GapFactor is the fraction of a full jump's airtime required between two
// hazards. Harder levels demand less slack.
func (d Difficulty) GapFactor() float64 {
	switch d {
	case DifficultyEasy:
		return 0.70
	case DifficultyNormal:
		return 0.60
	case DifficultyHard:
		return 0.50
	default:
		panic(fmt.Sprintf("config: gap factor for invalid %v", d))
	}
}

// DifficultyProfile holds the numeric parameters for one difficulty level.
// Speeds are px/s, intervals seconds, gravity px/s².
type DifficultyProfile struct {
	ScrollSpeed      float64 `yaml:"scroll_speed"`
	SpawnIntervalMin float64 `yaml:"spawn_interval_min"`
	SpawnIntervalMax float64 `yaml:"spawn_interval_max"`
	Gravity          float64 `yaml:"gravity"`
	JumpVelocity     float64 `yaml:"jump_velocity"`
}

// FlightTime is the airtime of a full jump, 2*v/g.
func (p DifficultyProfile) FlightTime() float64 {
	if p.Gravity <= 0 {
		return 0
	}
	return 2 * p.JumpVelocity / p.Gravity
}

// JumpApex is the peak height of a full jump, v²/(2g).
func (p DifficultyProfile) JumpApex() float64 {
	if p.Gravity <= 0 {
		return 0
	}
	return p.JumpVelocity * p.JumpVelocity / (2 * p.Gravity)
}

// validate checks the profile. needsJump is false for games without gravity.
func (p DifficultyProfile) validate(needsJump bool) error {
	if p.ScrollSpeed <= 0 {
		return fmt.Errorf("scroll_speed must be positive, got %v", p.ScrollSpeed)
	}
	if p.SpawnIntervalMin <= 0 || p.SpawnIntervalMax < p.SpawnIntervalMin {
		return fmt.Errorf("spawn interval [%v, %v] is not a valid range", p.SpawnIntervalMin, p.SpawnIntervalMax)
	}
	if needsJump && (p.Gravity <= 0 || p.JumpVelocity <= 0) {
		return fmt.Errorf("gravity and jump_velocity must be positive, got %v and %v", p.Gravity, p.JumpVelocity)
	}
	return nil
}

// ProfileSet maps every difficulty level to its profile.
type ProfileSet struct {
	Easy   DifficultyProfile `yaml:"easy"`
	Normal DifficultyProfile `yaml:"normal"`
	Hard   DifficultyProfile `yaml:"hard"`
}

// For returns the profile for d. An invalid selector is a programming error.
func (s ProfileSet) For(d Difficulty) DifficultyProfile {
	switch d {
	case DifficultyEasy:
		return s.Easy
	case DifficultyNormal:
		return s.Normal
	case DifficultyHard:
		return s.Hard
	default:
		panic(fmt.Sprintf("config: no profile for invalid %v", d))
	}
}

func (s ProfileSet) validate(needsJump bool) error {
	for _, d := range Difficulties {
		if err := s.For(d).validate(needsJump); err != nil {
			return fmt.Errorf("profile %s: %w", d, err)
		}
	}
	return nil
}

// RampConfig defines how scroll speed grows with elapsed world time.
type RampConfig struct {
	Enabled         bool    `yaml:"enabled"`
	MaxAt           float64 `yaml:"max_at"`           // Seconds at which the ramp reaches its cap
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to 1.0 at the cap
}

// SpeedRamp computes a ramped speed from elapsed world time.
type SpeedRamp struct {
	cfg RampConfig
}

// NewSpeedRamp creates a speed ramp.
func NewSpeedRamp(cfg RampConfig) *SpeedRamp {
	return &SpeedRamp{cfg: cfg}
}

// Level returns the ramp progress in [0, 1] after elapsed seconds.
func (r *SpeedRamp) Level(elapsed float64) float64 {
	if !r.cfg.Enabled {
		return 0
	}
	maxAt := r.cfg.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	return core.ClampF(elapsed/maxAt, 0.0, 1.0)
}

// Speed returns base scaled by the ramp; it never exceeds base*(1+multiplier).
func (r *SpeedRamp) Speed(base, elapsed float64) float64 {
	return base * (1.0 + r.Level(elapsed)*r.cfg.SpeedMultiplier)
}

