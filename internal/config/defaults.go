package config

import (
	_ "embed"
)

//go:embed defaults/barber.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/barber.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		MaxLives:     3,
		PointsPerHit: 10,
		Align: AlignConfig{
			Axis:              Range{Min: 30, Max: 550},
			MoverStart:        100,
			BaseSpeed:         2,
			SpeedPerLevel:     1,
			TargetBand:        Range{Min: 200, Max: 380},
			Tolerance:         15,
			CuttingDelayTicks: 18, // ~300ms at 60 ticks/s
		},
		Rush: RushConfig{
			Axis:             Range{Min: 20, Max: 580},
			MoverStart:       50,
			BaseSpeed:        3,
			SweepStartX:      50,
			SweepEndX:        800,
			SweepSpeed:       8,
			SpawnProbability: 0.02,
			SpawnX:           Range{Min: 100, Max: 800},
			SpawnY:           -20,
			FallSpeed:        Range{Min: 1, Max: 3},
			BottomY:          600,
			HitRadius:        25,
			ParticleCount:    5,
			ParticleLife:     30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
