package engine

import "github.com/vovakirdan/new-barber/internal/config"

// Target is the align-mode goal line.
type Target struct {
	Position  float64
	Tolerance float64
}

// SpawnTarget draws a new target uniformly from band.
func SpawnTarget(rng RNG, band config.Range, tolerance float64) Target {
	return Target{
		Position:  band.Min + rng.Float64()*band.Size(),
		Tolerance: tolerance,
	}
}
