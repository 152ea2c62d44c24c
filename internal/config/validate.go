package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the configuration invariants the engine relies on.
// All violations are reported together.
func (c Config) Validate() error {
	var errs []error
	add := func(msg string) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, msg))
	}

	// NaN and infinities slip past every ordered comparison below.
	for _, f := range c.floatFields() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			add(fmt.Sprintf("%s must be a finite number, got %g", f.name, f.value))
		}
	}

	if c.MaxLives <= 0 {
		add(fmt.Sprintf("max_lives must be > 0, got %d", c.MaxLives))
	}
	if c.PointsPerHit <= 0 {
		add(fmt.Sprintf("points_per_hit must be > 0, got %d", c.PointsPerHit))
	}

	a := c.Align
	if !(a.Axis.Min < a.Axis.Max) {
		add(fmt.Sprintf("align.axis min (%g) must be below max (%g)", a.Axis.Min, a.Axis.Max))
	}
	if !(a.BaseSpeed > 0) {
		add(fmt.Sprintf("align.base_speed must be > 0, got %g", a.BaseSpeed))
	}
	if !(a.SpeedPerLevel >= 0) {
		add(fmt.Sprintf("align.speed_per_level must be >= 0, got %g", a.SpeedPerLevel))
	}
	if !(a.Tolerance > 0) {
		add(fmt.Sprintf("align.tolerance must be > 0, got %g", a.Tolerance))
	}
	if a.CuttingDelayTicks < 0 {
		add(fmt.Sprintf("align.cutting_delay_ticks must be >= 0, got %d", a.CuttingDelayTicks))
	}
	if !(a.TargetBand.Min < a.TargetBand.Max) {
		add(fmt.Sprintf("align.target_band min (%g) must be below max (%g)", a.TargetBand.Min, a.TargetBand.Max))
	} else if !a.Axis.Contains(a.TargetBand.Min) || !a.Axis.Contains(a.TargetBand.Max) {
		add(fmt.Sprintf("align.target_band [%g, %g] must lie inside the axis", a.TargetBand.Min, a.TargetBand.Max))
	}
	if !a.Axis.Contains(a.MoverStart) {
		add(fmt.Sprintf("align.mover_start %g is outside the axis", a.MoverStart))
	}

	r := c.Rush
	if !(r.Axis.Min < r.Axis.Max) {
		add(fmt.Sprintf("rush.axis min (%g) must be below max (%g)", r.Axis.Min, r.Axis.Max))
	}
	if !(r.BaseSpeed > 0) {
		add(fmt.Sprintf("rush.base_speed must be > 0, got %g", r.BaseSpeed))
	}
	if !r.Axis.Contains(r.MoverStart) {
		add(fmt.Sprintf("rush.mover_start %g is outside the axis", r.MoverStart))
	}
	if !(r.SweepSpeed > 0) {
		add(fmt.Sprintf("rush.sweep_speed must be > 0, got %g", r.SweepSpeed))
	}
	if !(r.SweepStartX < r.SweepEndX) {
		add(fmt.Sprintf("rush.sweep_start_x (%g) must be below sweep_end_x (%g)", r.SweepStartX, r.SweepEndX))
	}
	if !(r.SpawnProbability >= 0 && r.SpawnProbability <= 1) {
		add(fmt.Sprintf("rush.spawn_probability must be within [0, 1], got %g", r.SpawnProbability))
	}
	if !(r.SpawnX.Min <= r.SpawnX.Max) {
		add(fmt.Sprintf("rush.spawn_x min (%g) must not exceed max (%g)", r.SpawnX.Min, r.SpawnX.Max))
	}
	if !(r.FallSpeed.Min > 0 && r.FallSpeed.Min <= r.FallSpeed.Max) {
		add(fmt.Sprintf("rush.fall_speed must satisfy 0 < min <= max, got [%g, %g]", r.FallSpeed.Min, r.FallSpeed.Max))
	}
	if !(r.BottomY > r.SpawnY) {
		add(fmt.Sprintf("rush.bottom_y (%g) must be below the spawn line (%g)", r.BottomY, r.SpawnY))
	}
	if !(r.HitRadius > 0) {
		add(fmt.Sprintf("rush.hit_radius must be > 0, got %g", r.HitRadius))
	}
	if r.ParticleCount < 0 || r.ParticleLife < 0 {
		add("rush particle settings must be >= 0")
	}

	return errors.Join(errs...)
}

type namedFloat struct {
	name  string
	value float64
}

func (c Config) floatFields() []namedFloat {
	a, r := c.Align, c.Rush
	return []namedFloat{
		{"align.axis.min", a.Axis.Min},
		{"align.axis.max", a.Axis.Max},
		{"align.mover_start", a.MoverStart},
		{"align.base_speed", a.BaseSpeed},
		{"align.speed_per_level", a.SpeedPerLevel},
		{"align.target_band.min", a.TargetBand.Min},
		{"align.target_band.max", a.TargetBand.Max},
		{"align.tolerance", a.Tolerance},
		{"rush.axis.min", r.Axis.Min},
		{"rush.axis.max", r.Axis.Max},
		{"rush.mover_start", r.MoverStart},
		{"rush.base_speed", r.BaseSpeed},
		{"rush.sweep_start_x", r.SweepStartX},
		{"rush.sweep_end_x", r.SweepEndX},
		{"rush.sweep_speed", r.SweepSpeed},
		{"rush.spawn_probability", r.SpawnProbability},
		{"rush.spawn_x.min", r.SpawnX.Min},
		{"rush.spawn_x.max", r.SpawnX.Max},
		{"rush.spawn_y", r.SpawnY},
		{"rush.fall_speed.min", r.FallSpeed.Min},
		{"rush.fall_speed.max", r.FallSpeed.Max},
		{"rush.bottom_y", r.BottomY},
		{"rush.hit_radius", r.HitRadius},
	}
}
