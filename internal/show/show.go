package show

import (
	"slices"

	"github.com/san-kum/fireworks/internal/firework"
)

const (
	DefaultWidth  = 1920
	DefaultHeight = 1080

	DefaultMinInterval   = 20
	DefaultMaxInterval   = 60
	DefaultFirstInterval = 30

	hudX = 10
	hudY = 10
)

var (
	Background = firework.Black
	HUDColor   = firework.White
)

// Frame is what a single tick needs from the outside world: somewhere to
// draw and a source of input.
type Frame interface {
	firework.Surface
	Input
}

// Options configure a Show. Intervals are in ticks.
type Options struct {
	Width, Height int
	Params        Params
	MinInterval   int
	MaxInterval   int
	FirstInterval int
}

func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Params:        DefaultParams(),
		MinInterval:   DefaultMinInterval,
		MaxInterval:   DefaultMaxInterval,
		FirstInterval: DefaultFirstInterval,
	}
}

type Show struct {
	opts   Options
	rng    firework.Rand
	params Params

	rockets   []*firework.Rocket
	particles []*firework.Particle

	tick       int
	lastLaunch int
	interval   int

	totalLaunched int
	totalExploded int
	stopReason    Event

	observers []Observer
}

func New(opts Options, rng firework.Rand) *Show {
	return &Show{
		opts:      opts,
		rng:       rng,
		params:    opts.Params,
		rockets:   make([]*firework.Rocket, 0, 16),
		particles: make([]*firework.Particle, 0, 1024),
		interval:  opts.FirstInterval,
	}
}

func (s *Show) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Options returns the options the show was created with.
func (s *Show) Options() Options { return s.opts }

func (s *Show) Params() Params                  { return s.params }
func (s *Show) Rockets() []*firework.Rocket     { return s.rockets }
func (s *Show) Particles() []*firework.Particle { return s.particles }
func (s *Show) Tick() int                       { return s.tick }

// StopReason returns the event that ended the show, or EventNone while it runs.
func (s *Show) StopReason() Event { return s.stopReason }

// Launch adds a rocket immediately.
func (s *Show) Launch() {
	s.rockets = append(s.rockets, firework.NewRocket(s.rng, s.opts.Width, s.opts.Height))
	s.totalLaunched++
}

// Step runs one tick against f and reports whether the show keeps running.
// A terminal event still lets the current tick finish drawing.
func (s *Show) Step(f Frame) bool {
	f.Clear(Background.Opaque())

	st := Stats{Tick: s.tick}
	running := true

	for _, ev := range f.Poll() {
		switch {
		case ev.Terminal():
			if running {
				s.stopReason = ev
			}
			running = false
		case ev == EventLaunch:
			s.Launch()
			st.Launched++
		default:
			s.params = s.params.Apply(ev)
		}
	}

	if s.tick-s.lastLaunch > s.interval {
		s.Launch()
		st.Launched++
		s.lastLaunch = s.tick
		s.interval = firework.RandInt(s.rng, s.opts.MinInterval, s.opts.MaxInterval)
	}

	for _, rk := range s.rockets {
		if rk.Update(s.rng) {
			s.explode(rk)
			st.Exploded++
			continue
		}
		rk.Draw(f)
	}
	s.rockets = slices.DeleteFunc(s.rockets, (*firework.Rocket).Exploded)

	for _, p := range s.particles {
		p.Update()
		p.Draw(f, s.rng)
	}
	s.particles = slices.DeleteFunc(s.particles, (*firework.Particle).Expired)

	f.Text(s.params.String(), hudX, hudY, HUDColor.Opaque())

	s.tick++
	s.totalExploded += st.Exploded

	st.Rockets = len(s.rockets)
	st.Particles = len(s.particles)
	st.TotalLaunched = s.totalLaunched
	st.TotalExploded = s.totalExploded
	st.Params = s.params
	for _, o := range s.observers {
		o.OnTick(st)
	}

	return running
}

func (s *Show) explode(rk *firework.Rocket) {
	burst := firework.Burst(s.rng, rk.X, rk.Y, s.params.Particles, float64(s.params.Speed), s.params.Lifespan)
	s.particles = append(s.particles, burst...)
}
