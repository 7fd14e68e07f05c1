// Package audio plays a short filtered noise burst for every explosion.
package audio

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/san-kum/fireworks/internal/show"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// MaxVoices bounds simultaneous bursts; extra explosions are dropped.
	MaxVoices = 16

	burstSeconds = 0.8
	decayRate    = 6.0
	baseCutoff   = 900.0
)

type voice struct {
	age    float64
	cutoff float64
	pan    float64
	state  [2]float64
}

type Processor struct {
	Stream *portaudio.Stream

	mu      sync.Mutex
	pending int

	voices []*voice
	noise  *rand.Rand
	volume float64

	Active bool
}

func NewProcessor(seed int64) *Processor {
	return &Processor{
		noise:  rand.New(rand.NewSource(seed)),
		volume: 0.35,
	}
}

func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio: initialize: %w", err)
	}

	// Output only: 0 in, 2 out
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.ProcessAudio)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio: open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio: start stream: %w", err)
	}

	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if !a.Active {
		return
	}
	a.Stream.Stop()
	a.Stream.Close()
	portaudio.Terminate()
	a.Active = false
}

// OnTick queues one burst per explosion in the tick. It implements
// show.Observer and is safe to call while the stream is running.
func (a *Processor) OnTick(st show.Stats) {
	if st.Exploded == 0 {
		return
	}
	a.mu.Lock()
	a.pending += st.Exploded
	a.mu.Unlock()
}

// Voices returns the number of bursts currently sounding.
func (a *Processor) Voices() int { return len(a.voices) }

func (a *Processor) takePending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := a.pending
	a.pending = 0
	return n
}

func (a *Processor) spawn(n int) {
	for i := 0; i < n; i++ {
		if len(a.voices) >= MaxVoices {
			return
		}
		a.voices = append(a.voices, &voice{
			cutoff: baseCutoff * (0.5 + a.noise.Float64()),
			pan:    a.noise.Float64(),
		})
	}
}

// envelope is a fast exponential decay, zero after burstSeconds.
func envelope(age float64) float64 {
	if age >= burstSeconds {
		return 0
	}
	return math.Exp(-decayRate * age)
}

// Low Pass Filter (One Pole)
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (a *Processor) ProcessAudio(out [][]float32) {
	a.spawn(a.takePending())

	dt := 1.0 / float64(SampleRate)
	for i := range out[0] {
		sampleL, sampleR := 0.0, 0.0

		for _, v := range a.voices {
			env := envelope(v.age)
			if env == 0 {
				continue
			}
			n := (a.noise.Float64()*2 - 1) * env
			// the cutoff falls as the burst fades
			cutoff := v.cutoff * (0.2 + 0.8*env)

			var l, r float64
			l, v.state[0] = lpf(n*(1-v.pan), cutoff, dt, v.state[0])
			r, v.state[1] = lpf(n*v.pan, cutoff, dt, v.state[1])
			sampleL += l
			sampleR += r
			v.age += dt
		}

		out[0][i] = float32(math.Tanh(sampleL * a.volume * 4))
		out[1][i] = float32(math.Tanh(sampleR * a.volume * 4))
	}

	a.voices = slices.DeleteFunc(a.voices, func(v *voice) bool { return v.age >= burstSeconds })
}
