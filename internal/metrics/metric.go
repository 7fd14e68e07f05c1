package metrics

import "github.com/san-kum/fireworks/internal/show"

type Metric interface {
	Name() string
	Observe(st show.Stats)
	Value() float64
	Reset()
}

// Recorder feeds every tick to a set of metrics and keeps the live
// particle count series. It implements show.Observer.
type Recorder struct {
	Metrics   []Metric
	Particles *Series
	Rockets   *Series
}

func NewRecorder(metrics ...Metric) *Recorder {
	return &Recorder{
		Metrics:   metrics,
		Particles: NewSeries("particles", func(st show.Stats) float64 { return float64(st.Particles) }),
		Rockets:   NewSeries("rockets", func(st show.Stats) float64 { return float64(st.Rockets) }),
	}
}

// Default returns a recorder with the standard set of metrics.
func Default() *Recorder {
	return NewRecorder(
		NewLaunches(),
		NewExplosions(),
		NewPeakParticles(),
		NewMeanParticles(),
		NewPeakRockets(),
	)
}

func (r *Recorder) OnTick(st show.Stats) {
	for _, m := range r.Metrics {
		m.Observe(st)
	}
	r.Particles.Observe(st)
	r.Rockets.Observe(st)
}

func (r *Recorder) Reset() {
	for _, m := range r.Metrics {
		m.Reset()
	}
	r.Particles.Reset()
	r.Rockets.Reset()
}
