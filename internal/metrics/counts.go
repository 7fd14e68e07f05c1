package metrics

import "github.com/san-kum/fireworks/internal/show"

// Launches counts rockets launched, automatic and manual.
type Launches struct {
	name  string
	count int
}

func NewLaunches() *Launches { return &Launches{name: "launches"} }

func (l *Launches) Name() string { return l.name }

func (l *Launches) Observe(st show.Stats) { l.count += st.Launched }

func (l *Launches) Value() float64 { return float64(l.count) }

func (l *Launches) Reset() { l.count = 0 }

// Explosions counts rockets that reached their target height.
type Explosions struct {
	name  string
	count int
}

func NewExplosions() *Explosions { return &Explosions{name: "explosions"} }

func (e *Explosions) Name() string { return e.name }

func (e *Explosions) Observe(st show.Stats) { e.count += st.Exploded }

func (e *Explosions) Value() float64 { return float64(e.count) }

func (e *Explosions) Reset() { e.count = 0 }

type PeakParticles struct {
	name string
	peak int
}

func NewPeakParticles() *PeakParticles { return &PeakParticles{name: "peak_particles"} }

func (p *PeakParticles) Name() string { return p.name }

func (p *PeakParticles) Observe(st show.Stats) { p.peak = max(p.peak, st.Particles) }

func (p *PeakParticles) Value() float64 { return float64(p.peak) }

func (p *PeakParticles) Reset() { p.peak = 0 }

type PeakRockets struct {
	name string
	peak int
}

func NewPeakRockets() *PeakRockets { return &PeakRockets{name: "peak_rockets"} }

func (p *PeakRockets) Name() string { return p.name }

func (p *PeakRockets) Observe(st show.Stats) { p.peak = max(p.peak, st.Rockets) }

func (p *PeakRockets) Value() float64 { return float64(p.peak) }

func (p *PeakRockets) Reset() { p.peak = 0 }

type MeanParticles struct {
	name    string
	total   float64
	samples int
}

func NewMeanParticles() *MeanParticles { return &MeanParticles{name: "mean_particles"} }

func (m *MeanParticles) Name() string { return m.name }

func (m *MeanParticles) Observe(st show.Stats) {
	m.total += float64(st.Particles)
	m.samples++
}

func (m *MeanParticles) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanParticles) Reset() {
	m.total = 0
	m.samples = 0
}
