package show

import "fmt"

const (
	DefaultParticles = 50
	DefaultSpeed     = 5
	DefaultLifespan  = 100

	MinParticles = 10
	MinSpeed     = 2
	MinLifespan  = 10

	particleStep = 10
	speedStep    = 1
	lifespanStep = 10
)

// Params are the live-tunable explosion parameters. They only affect
// entities spawned after a change.
type Params struct {
	Particles int
	Speed     int
	Lifespan  int
}

func DefaultParams() Params {
	return Params{
		Particles: DefaultParticles,
		Speed:     DefaultSpeed,
		Lifespan:  DefaultLifespan,
	}
}

// Apply returns p adjusted by ev. Decrements are clamped at the minimums;
// events that are not adjustments leave p unchanged.
func (p Params) Apply(ev Event) Params {
	switch ev {
	case EventMoreParticles:
		p.Particles += particleStep
	case EventFewerParticles:
		p.Particles = max(MinParticles, p.Particles-particleStep)
	case EventFaster:
		p.Speed += speedStep
	case EventSlower:
		p.Speed = max(MinSpeed, p.Speed-speedStep)
	case EventLonger:
		p.Lifespan += lifespanStep
	case EventShorter:
		p.Lifespan = max(MinLifespan, p.Lifespan-lifespanStep)
	}
	return p
}

// Validate reports parameters below their minimums.
func (p Params) Validate() error {
	if p.Particles < MinParticles {
		return fmt.Errorf("particles must be at least %d, got %d", MinParticles, p.Particles)
	}
	if p.Speed < MinSpeed {
		return fmt.Errorf("speed must be at least %d, got %d", MinSpeed, p.Speed)
	}
	if p.Lifespan < MinLifespan {
		return fmt.Errorf("lifespan must be at least %d, got %d", MinLifespan, p.Lifespan)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("Particles: %d, Speed: %d, Lifespan: %d", p.Particles, p.Speed, p.Lifespan)
}
