package metrics

import "github.com/san-kum/fireworks/internal/show"

// Series records one value per tick.
type Series struct {
	name    string
	extract func(show.Stats) float64
	values  []float64
}

func NewSeries(name string, extract func(show.Stats) float64) *Series {
	return &Series{name: name, extract: extract}
}

func (s *Series) Name() string { return s.name }

func (s *Series) Observe(st show.Stats) { s.Append(s.extract(st)) }

// Append adds a sample directly, for series loaded from elsewhere.
func (s *Series) Append(v float64) { s.values = append(s.values, v) }

// Value returns the most recent sample.
func (s *Series) Value() float64 {
	if len(s.values) == 0 {
		return 0
	}
	return s.values[len(s.values)-1]
}

func (s *Series) Reset() { s.values = s.values[:0] }

func (s *Series) Values() []float64 { return s.values }

// Downsample averages the series into at most n buckets, for plotting.
func (s *Series) Downsample(n int) []float64 {
	if n <= 0 || len(s.values) <= n {
		return append([]float64(nil), s.values...)
	}

	out := make([]float64, n)
	for i := range out {
		lo := i * len(s.values) / n
		hi := (i + 1) * len(s.values) / n
		sum := 0.0
		for _, v := range s.values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}
