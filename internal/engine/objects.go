package engine

import (
	"github.com/vovakirdan/new-barber/internal/config"
	"github.com/vovakirdan/new-barber/internal/core"
)

// FallingObject is a hair strand in rush mode. Color and Size are cosmetic.
type FallingObject struct {
	ID    uint64
	Pos   core.Vec2
	Vel   core.Vec2
	Color core.Color
	Size  float64
}

// Particle is a cosmetic fragment left behind by a cut strand.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  int
	Color core.Color
}

var hairColors = []core.Color{
	core.ColorBrown,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorRed,
	core.ColorWhite,
}

const (
	minStrandSize = 20
	maxStrandSize = 60
)

// SpawnResult is the outcome of one ObjectSpawner tick.
type SpawnResult struct {
	Objects []FallingObject // survivors plus the spawned object, creation order
	Leaked  int
	Spawned *FallingObject
	NextID  uint64
}

// ObjectSpawner advances falling strands and spawns new ones.
type ObjectSpawner struct {
	cfg config.RushConfig
}

// NewObjectSpawner creates a spawner for the given rush settings.
func NewObjectSpawner(cfg config.RushConfig) ObjectSpawner {
	return ObjectSpawner{cfg: cfg}
}

// Tick moves every object by its velocity, drops those past the bottom line
// and maybe spawns one new object. The input slice is not modified.
func (sp ObjectSpawner) Tick(rng RNG, objects []FallingObject, nextID uint64) SpawnResult {
	res := SpawnResult{
		Objects: make([]FallingObject, 0, len(objects)+1),
		NextID:  nextID,
	}
	for _, o := range objects {
		o.Pos = o.Pos.Add(o.Vel)
		if o.Pos.Y > sp.cfg.BottomY {
			res.Leaked++
			continue
		}
		res.Objects = append(res.Objects, o)
	}

	if rng.Float64() < sp.cfg.SpawnProbability {
		o := FallingObject{
			ID:  res.NextID,
			Pos: core.Vec2{X: between(rng, sp.cfg.SpawnX.Min, sp.cfg.SpawnX.Max), Y: sp.cfg.SpawnY},
			Vel: core.Vec2{Y: between(rng, sp.cfg.FallSpeed.Min, sp.cfg.FallSpeed.Max)},
		}
		o.Color = hairColors[pick(rng, len(hairColors))]
		o.Size = between(rng, minStrandSize, maxStrandSize)
		res.NextID++
		res.Objects = append(res.Objects, o)
		res.Spawned = &o
	}
	return res
}

// burst creates the particles for one cut strand.
func burst(rng RNG, o FallingObject, count, life int) []Particle {
	out := make([]Particle, 0, count)
	for range count {
		out = append(out, Particle{
			Pos:   o.Pos,
			Vel:   core.Vec2{X: (rng.Float64() - 0.5) * 4, Y: (rng.Float64() - 0.5) * 4},
			Life:  life,
			Color: o.Color,
		})
	}
	return out
}

// decay moves particles and drops the expired ones.
func decay(particles []Particle) []Particle {
	if len(particles) == 0 {
		return nil
	}
	out := make([]Particle, 0, len(particles))
	for _, p := range particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life > 0 {
			out = append(out, p)
		}
	}
	return out
}
