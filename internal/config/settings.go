package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned for an unsupported snake mode.
var ErrUnknownMode = errors.New("config: unknown snake mode")

// SnakeMode selects the snake wall rules.
type SnakeMode string

const (
	SnakeClassic SnakeMode = "classic" // Walls kill
	SnakeModern  SnakeMode = "modern"  // Walls wrap, speed ramps with score
)

// ParseSnakeMode converts a mode name into a SnakeMode.
func ParseSnakeMode(s string) (SnakeMode, error) {
	switch m := SnakeMode(strings.ToLower(strings.TrimSpace(s))); m {
	case SnakeClassic, SnakeModern:
		return m, nil
	default:
		return "", fmt.Errorf("%w %q (want classic or modern)", ErrUnknownMode, s)
	}
}

// MaxPlayerNameLen bounds the display name.
const MaxPlayerNameLen = 16

// DefaultPlayerName is used when the name field is left empty.
const DefaultPlayerName = "player"

// Settings is the immutable value a game is constructed with.
type Settings struct {
	Difficulty Difficulty
	PlayerName string
	SnakeMode  SnakeMode
	ConfigPath string // Optional per-game YAML override
}

// DefaultSettings returns the settings preselected on the settings screen.
func DefaultSettings() Settings {
	return Settings{
		Difficulty: DifficultyNormal,
		PlayerName: DefaultPlayerName,
		SnakeMode:  SnakeClassic,
	}
}

// Normalize trims the player name and fills empty fields with defaults.
func (s Settings) Normalize() Settings {
	name := strings.TrimSpace(s.PlayerName)
	if name == "" {
		name = DefaultPlayerName
	}
	if r := []rune(name); len(r) > MaxPlayerNameLen {
		name = string(r[:MaxPlayerNameLen])
	}
	s.PlayerName = name
	if s.SnakeMode == "" {
		s.SnakeMode = SnakeClassic
	}
	return s
}

// Validate checks the enumerated fields.
func (s Settings) Validate() error {
	if !s.Difficulty.Valid() {
		return fmt.Errorf("%w %d", ErrUnknownDifficulty, int(s.Difficulty))
	}
	if _, err := ParseSnakeMode(string(s.SnakeMode)); err != nil {
		return err
	}
	return nil
}
