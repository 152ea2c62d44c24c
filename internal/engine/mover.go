package engine

import "github.com/vovakirdan/new-barber/internal/config"

// Mover is the oscillating scissors. Direction is +1 or -1.
type Mover struct {
	Position  float64
	Direction int
	Speed     float64
}

// NewMover places a mover at start heading towards the upper bound.
func NewMover(start, speed float64) Mover {
	return Mover{Position: start, Direction: 1, Speed: speed}
}

// SpeedForLevel returns the mover speed for a level (level 1 is base speed).
func SpeedForLevel(base, perLevel float64, level int) float64 {
	if level < 1 {
		level = 1
	}
	return base + perLevel*float64(level-1)
}

// Advance moves the mover one tick and bounces it off the bounds.
// The position is clamped to the bound on the tick the direction flips.
func (m Mover) Advance(bounds config.Range) Mover {
	m.Position += float64(m.Direction) * m.Speed
	if m.Position <= bounds.Min {
		m.Position = bounds.Min
		m.Direction = 1
	} else if m.Position >= bounds.Max {
		m.Position = bounds.Max
		m.Direction = -1
	}
	return m
}
