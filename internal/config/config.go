// Package config provides YAML/TOML-based game configuration loading,
// validation and difficulty presets for the barber engine.
package config

// Range is a closed numeric interval [Min, Max].
type Range struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// Size returns the length of the interval.
func (r Range) Size() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Config contains all tunables for both game modes.
type Config struct {
	MaxLives     int         `yaml:"max_lives" toml:"max_lives"`
	PointsPerHit int         `yaml:"points_per_hit" toml:"points_per_hit"`
	Align        AlignConfig `yaml:"align" toml:"align"`
	Rush         RushConfig  `yaml:"rush" toml:"rush"`
}

// AlignConfig defines the align-and-cut mode.
type AlignConfig struct {
	Axis              Range   `yaml:"axis" toml:"axis"`
	MoverStart        float64 `yaml:"mover_start" toml:"mover_start"`
	BaseSpeed         float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedPerLevel     float64 `yaml:"speed_per_level" toml:"speed_per_level"`
	TargetBand        Range   `yaml:"target_band" toml:"target_band"`
	Tolerance         float64 `yaml:"tolerance" toml:"tolerance"`
	CuttingDelayTicks int     `yaml:"cutting_delay_ticks" toml:"cutting_delay_ticks"`
}

// RushConfig defines the falling-hair mode.
type RushConfig struct {
	Axis       Range   `yaml:"axis" toml:"axis"` // vertical oscillation while idle
	MoverStart float64 `yaml:"mover_start" toml:"mover_start"`
	BaseSpeed  float64 `yaml:"base_speed" toml:"base_speed"`

	SweepStartX float64 `yaml:"sweep_start_x" toml:"sweep_start_x"`
	SweepEndX   float64 `yaml:"sweep_end_x" toml:"sweep_end_x"`
	SweepSpeed  float64 `yaml:"sweep_speed" toml:"sweep_speed"`

	SpawnProbability float64 `yaml:"spawn_probability" toml:"spawn_probability"` // per tick
	SpawnX           Range   `yaml:"spawn_x" toml:"spawn_x"`
	SpawnY           float64 `yaml:"spawn_y" toml:"spawn_y"`
	FallSpeed        Range   `yaml:"fall_speed" toml:"fall_speed"`
	BottomY          float64 `yaml:"bottom_y" toml:"bottom_y"`
	HitRadius        float64 `yaml:"hit_radius" toml:"hit_radius"`

	ParticleCount int `yaml:"particle_count" toml:"particle_count"`
	ParticleLife  int `yaml:"particle_life" toml:"particle_life"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
