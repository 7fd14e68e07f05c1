package firework

import "math"

const (
	ParticleMinSpeed = 2.0
	MinGravity       = 0.05
	MaxGravity       = 0.1

	// FadeStep is subtracted from every color channel each tick.
	FadeStep = 2

	particleRadius = 4
)

// Sparkles are the brightening steps a particle core may flash with.
var Sparkles = []uint8{0, 50, 100}

// Particle is a single explosion fragment.
type Particle struct {
	X, Y     float64
	Angle    float64
	Speed    float64
	Gravity  float64
	Lifespan int
	Color    RGB

	trail Trail
}

// NewParticle creates a fragment at (x, y) flying in a random direction with
// a speed up to maxSpeed.
func NewParticle(r Rand, x, y float64, c RGB, maxSpeed float64, lifespan int) *Particle {
	return &Particle{
		X:        x,
		Y:        y,
		Angle:    uniform(r, 0, 2*math.Pi),
		Speed:    uniform(r, ParticleMinSpeed, maxSpeed),
		Gravity:  uniform(r, MinGravity, MaxGravity),
		Lifespan: lifespan,
		Color:    c,
	}
}

// Update records the current position in the trail, moves the particle,
// pulls it down by its gravity, and ages and darkens it by one tick.
func (p *Particle) Update() {
	p.trail.Push(Point{p.X, p.Y})

	p.X += math.Cos(p.Angle) * p.Speed
	p.Y += math.Sin(p.Angle)*p.Speed + p.Gravity

	p.Lifespan--
	p.Color = p.Color.Darken(FadeStep)
}

// Expired reports whether the particle should be removed.
func (p *Particle) Expired() bool { return p.Lifespan <= 0 }

func (p *Particle) Trail() []Point { return p.trail.Points() }

// Draw renders the trail in the current color and, while alive, the core
// with a random sparkle. The sparkle is not stored.
func (p *Particle) Draw(s Surface, r Rand) {
	c := p.Color.Opaque()
	for _, pt := range p.trail.Points() {
		s.Circle(math.Trunc(pt.X), math.Trunc(pt.Y), trailRadius, c)
	}
	if p.Lifespan > 0 {
		spark := p.Color.Brighten(Sparkles[r.Intn(len(Sparkles))])
		s.Circle(math.Trunc(p.X), math.Trunc(p.Y), particleRadius, spark.Opaque())
	}
}

// Burst spawns count particles at (x, y) sharing one color picked from Palette.
func Burst(r Rand, x, y float64, count int, maxSpeed float64, lifespan int) []*Particle {
	c := PickColor(r)
	out := make([]*Particle, count)
	for i := range out {
		out[i] = NewParticle(r, x, y, c, maxSpeed, lifespan)
	}
	return out
}
