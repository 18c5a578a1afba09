package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every per-game config.
type validator interface {
	Validate() error
}

// LoadRunner loads the endless runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	return load("runner.yaml", customPath, defaultRunnerYAML, DefaultRunnerConfig)
}

// LoadRacer loads the lane racer configuration.
// Search order: customPath -> ~/.arcade/configs/racer.yaml -> ./configs/racer.yaml -> embedded default
func LoadRacer(customPath string) (RacerConfig, error) {
	return load("racer.yaml", customPath, defaultRacerYAML, DefaultRacerConfig)
}

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake.yaml", customPath, defaultSnakeYAML, DefaultSnakeConfig)
}

// LoadTicTacToe loads the tic-tac-toe configuration.
// Search order: customPath -> ~/.arcade/configs/tictactoe.yaml -> ./configs/tictactoe.yaml -> embedded default
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	return load("tictactoe.yaml", customPath, defaultTicTacToeYAML, DefaultTicTacToeConfig)
}

// load resolves a config file through the search order. Files are decoded over
// the hardcoded defaults, so a partial file only overrides the keys it names.
// A config that is found but fails validation is an error, never skipped.
func load[T validator](filename, customPath string, embedded []byte, fallback func() T) (T, error) {
	cfg := fallback()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := fallback()
		if err := yaml.Unmarshal(data, &candidate); err != nil {
			continue
		}
		return validated(candidate, path)
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return validated(fallback(), "defaults") // Fallback to hardcoded if embed fails
	}
	return validated(cfg, "embedded "+filename)
}

func validated[T validator](cfg T, source string) (T, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w (from %s)", err, source)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
