package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/racer.yaml
var defaultRacerYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

func defaultRules(divisor float64) RulesConfig {
	return RulesConfig{
		StartLives:        3,
		MaxLives:          5,
		Countdown:         3,
		Tolerance:         4,
		DistanceDivisor:   divisor,
		KnockbackVelocity: 260,
	}
}

// DefaultRunnerConfig returns the default endless runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Profiles: ProfileSet{
			Easy:   DifficultyProfile{ScrollSpeed: 320, SpawnIntervalMin: 1.10, SpawnIntervalMax: 2.00, Gravity: 1550, JumpVelocity: 620},
			Normal: DifficultyProfile{ScrollSpeed: 400, SpawnIntervalMin: 0.90, SpawnIntervalMax: 1.70, Gravity: 1700, JumpVelocity: 650},
			Hard:   DifficultyProfile{ScrollSpeed: 480, SpawnIntervalMin: 0.70, SpawnIntervalMax: 1.40, Gravity: 1850, JumpVelocity: 680},
		},
		Player: RunnerPlayer{
			X:      60,
			Width:  24,
			Height: 32,
		},
		Hazards: RunnerHazards{
			MinWidth:          16,
			MaxWidth:          40,
			MinHeight:         24,
			MaxHeight:         56,
			WidthCompensation: 1.15,
			AirPickupHeight:   80,
		},
		Pickups: PickupConfig{
			IntervalMin:   5,
			IntervalMax:   17,
			MinSeparation: 240,
			RetryAfter:    0.5,
			Size:          16,
			ShieldSeconds: 5,
		},
		Rules: defaultRules(10),
		Cell:  CellConfig{Width: 12, Height: 16},
	}
}

// DefaultRacerConfig returns the default lane racer configuration.
func DefaultRacerConfig() RacerConfig {
	return RacerConfig{
		Profiles: ProfileSet{
			Easy:   DifficultyProfile{ScrollSpeed: 220, SpawnIntervalMin: 0.90, SpawnIntervalMax: 1.60},
			Normal: DifficultyProfile{ScrollSpeed: 280, SpawnIntervalMin: 0.70, SpawnIntervalMax: 1.30},
			Hard:   DifficultyProfile{ScrollSpeed: 340, SpawnIntervalMin: 0.50, SpawnIntervalMax: 1.00},
		},
		Lanes: LanesConfig{
			Easy:   3,
			Normal: 4,
			Hard:   5,
			Width:  72,
			Jitter: 7,
			Weights: map[int][]int{
				3: {40, 30, 30},
				4: {30, 20, 20, 30},
				5: {25, 20, 10, 20, 25},
				6: {20, 15, 15, 15, 15, 20},
			},
		},
		Player: RacerPlayer{
			Width:        36,
			Height:       48,
			Speed:        260,
			BottomMargin: 16,
		},
		Obstacles: RacerObstacle{
			Width:  36,
			Height: 48,
		},
		Pickups: RacerPickups{
			PickupConfig: PickupConfig{
				IntervalMin:   5,
				IntervalMax:   17,
				MinSeparation: 160,
				RetryAfter:    0.5,
				Size:          24,
				ShieldSeconds: 5,
			},
			SlowSeconds: 4,
			SlowFactor:  0.7,
		},
		Ramp: RampConfig{
			Enabled:         true,
			MaxAt:           90,
			SpeedMultiplier: 0.6,
		},
		Rules: defaultRules(12),
		Cell:  CellConfig{Width: 12, Height: 16},
	}
}

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Cols:          20,
			Rows:          20,
			InitialLength: 3,
		},
		Speeds: SnakeSpeeds{
			Slow:   220,
			Normal: 140,
			Fast:   90,
		},
		Modern: SnakeSpeedUp{
			SpeedUpEvery: 50,
			SpeedUpStep:  5,
			MinInterval:  60,
		},
		Food: SnakeFood{
			Points:        10,
			RewardEvery:   5,
			RewardPoints:  50,
			RewardSeconds: 8,
		},
		Countdown: 3,
	}
}

// DefaultTicTacToeConfig returns the default tic-tac-toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		CPU: TicTacToeCPU{
			Think:        350,
			NormalRandom: 0.5,
		},
		RoundPause: 1200,
	}
}
