package show_test

import (
	"context"
	"image/color"
	"math"
	"math/rand"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fireworks/internal/firework"
	"github.com/san-kum/fireworks/internal/show"
)

type frame struct {
	events  [][]show.Event
	cleared int
	circles int
	texts   []string
}

func (f *frame) Clear(color.RGBA)                            { f.cleared++ }
func (f *frame) Circle(float64, float64, float64, color.RGBA) { f.circles++ }
func (f *frame) Text(s string, x, y int, c color.RGBA)        { f.texts = append(f.texts, s) }

func (f *frame) Poll() []show.Event {
	if len(f.events) == 0 {
		return nil
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}

// quietOptions never launches automatically within a test's horizon.
func quietOptions() show.Options {
	opts := show.DefaultOptions()
	opts.FirstInterval = math.MaxInt32
	return opts
}

var _ = Describe("Params", func() {
	It("clamps decrements at the minimums", func() {
		p := show.DefaultParams()
		for i := 0; i < 100; i++ {
			p = p.Apply(show.EventFewerParticles)
			p = p.Apply(show.EventSlower)
			p = p.Apply(show.EventShorter)
		}
		Expect(p.Particles).To(Equal(show.MinParticles))
		Expect(p.Speed).To(Equal(show.MinSpeed))
		Expect(p.Lifespan).To(Equal(show.MinLifespan))
	})

	It("increments by fixed steps", func() {
		p := show.DefaultParams().
			Apply(show.EventMoreParticles).
			Apply(show.EventFaster).
			Apply(show.EventLonger)
		Expect(p).To(Equal(show.Params{Particles: 60, Speed: 6, Lifespan: 110}))
	})

	It("ignores non-adjustment events", func() {
		p := show.DefaultParams()
		Expect(p.Apply(show.EventLaunch)).To(Equal(p))
		Expect(p.Apply(show.EventQuit)).To(Equal(p))
	})

	It("validates minimums", func() {
		Expect(show.DefaultParams().Validate()).To(Succeed())
		Expect(show.Params{Particles: 5, Speed: 5, Lifespan: 100}.Validate()).NotTo(Succeed())
		Expect(show.Params{Particles: 50, Speed: 1, Lifespan: 100}.Validate()).NotTo(Succeed())
		Expect(show.Params{Particles: 50, Speed: 5, Lifespan: 9}.Validate()).NotTo(Succeed())
	})

	It("renders the HUD line", func() {
		Expect(show.DefaultParams().String()).To(Equal("Particles: 50, Speed: 5, Lifespan: 100"))
	})
})

var _ = Describe("Show", func() {
	var (
		rng *rand.Rand
		sh  *show.Show
		f   *frame
	)

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(42))
		f = &frame{}
	})

	Context("per-tick bookkeeping", func() {
		BeforeEach(func() {
			sh = show.New(quietOptions(), rng)
		})

		It("clears once and draws the HUD once per tick", func() {
			Expect(sh.Step(f)).To(BeTrue())
			Expect(f.cleared).To(Equal(1))
			Expect(f.texts).To(Equal([]string{"Particles: 50, Speed: 5, Lifespan: 100"}))
			Expect(sh.Tick()).To(Equal(1))
		})

		It("launches a rocket on the launch event", func() {
			f.events = [][]show.Event{{show.EventLaunch}}
			sh.Step(f)
			Expect(sh.Rockets()).To(HaveLen(1))
		})

		It("applies parameter events only to future spawns", func() {
			sh.Launch()
			rk := sh.Rockets()[0]
			for !rk.Exploded() {
				sh.Step(f)
			}
			Expect(sh.Particles()).To(HaveLen(50))
			lifespan := sh.Particles()[0].Lifespan

			f.events = [][]show.Event{{show.EventShorter, show.EventSlower, show.EventFewerParticles}}
			sh.Step(f)
			Expect(sh.Params()).To(Equal(show.Params{Particles: 40, Speed: 4, Lifespan: 90}))
			Expect(sh.Particles()).To(HaveLen(50))
			Expect(sh.Particles()[0].Lifespan).To(Equal(lifespan - 1))
		})
	})

	Context("explosion scenario", func() {
		It("produces exactly one explosion and one configured batch", func() {
			sh = show.New(quietOptions(), rng)

			var explosions []show.Stats
			sh.AddObserver(show.ObserverFunc(func(st show.Stats) {
				if st.Exploded > 0 {
					explosions = append(explosions, st)
				}
			}))

			sh.Launch()
			rk := sh.Rockets()[0]
			rk.TargetHeight = 500

			for i := 0; i < 200 && len(explosions) == 0; i++ {
				sh.Step(f)
			}

			Expect(explosions).To(HaveLen(1))
			Expect(explosions[0].Exploded).To(Equal(1))
			Expect(sh.Rockets()).To(BeEmpty())

			ps := sh.Particles()
			Expect(ps).To(HaveLen(show.DefaultParticles))
			base := ps[0].Color
			for _, p := range ps {
				Expect(p.Color).To(Equal(base))
				// Each particle already ran one update from the rocket position.
				Expect(p.Trail()[0]).To(Equal(firework.Point{X: rk.X, Y: rk.Y}))
			}
			Expect(slices.ContainsFunc(firework.Palette, func(c firework.RGB) bool {
				return c.Darken(firework.FadeStep) == base
			})).To(BeTrue())

			for i := 0; i < 50; i++ {
				sh.Step(f)
			}
			Expect(explosions).To(HaveLen(1))
		})

		It("spawns the current particle count", func() {
			opts := quietOptions()
			opts.Params.Particles = 120
			sh = show.New(opts, rng)
			sh.Launch()
			for len(sh.Rockets()) > 0 {
				sh.Step(f)
			}
			Expect(sh.Particles()).To(HaveLen(120))
		})
	})

	Context("pruning", func() {
		It("never keeps expired particles after a tick", func() {
			opts := quietOptions()
			opts.FirstInterval = 0
			opts.MinInterval = 5
			opts.MaxInterval = 10
			opts.Params.Lifespan = 30
			sh = show.New(opts, rng)

			for i := 0; i < 600; i++ {
				sh.Step(f)
				for _, p := range sh.Particles() {
					Expect(p.Lifespan).To(BeNumerically(">", 0))
					Expect(len(p.Trail())).To(BeNumerically("<=", firework.TrailLength))
				}
				for _, rk := range sh.Rockets() {
					Expect(rk.Exploded()).To(BeFalse())
					Expect(len(rk.Trail())).To(BeNumerically("<=", firework.TrailLength))
				}
			}
		})
	})

	Context("automatic launches", func() {
		It("waits for the first interval, then re-randomizes within range", func() {
			sh = show.New(show.DefaultOptions(), rng)

			var ticks []int
			sh.AddObserver(show.ObserverFunc(func(st show.Stats) {
				if st.Launched > 0 {
					ticks = append(ticks, st.Tick)
				}
			}))

			for i := 0; i < 1000; i++ {
				sh.Step(f)
			}

			Expect(ticks).NotTo(BeEmpty())
			Expect(ticks[0]).To(Equal(show.DefaultFirstInterval + 1))
			for i := 1; i < len(ticks); i++ {
				gap := ticks[i] - ticks[i-1]
				Expect(gap).To(BeNumerically(">", show.DefaultMinInterval))
				Expect(gap).To(BeNumerically("<=", show.DefaultMaxInterval+1))
			}
		})
	})

	Context("termination", func() {
		BeforeEach(func() {
			sh = show.New(quietOptions(), rng)
		})

		DescribeTable("stops on terminal events after finishing the tick",
			func(ev show.Event) {
				f.events = [][]show.Event{{ev}}
				Expect(sh.Step(f)).To(BeFalse())
				Expect(sh.StopReason()).To(Equal(ev))
				Expect(f.texts).To(HaveLen(1))
			},
			Entry("escape", show.EventEscape),
			Entry("quit", show.EventQuit),
			Entry("timeout", show.EventTimeout),
		)

		It("keeps the first terminal event as the reason", func() {
			f.events = [][]show.Event{{show.EventTimeout, show.EventQuit}}
			sh.Step(f)
			Expect(sh.StopReason()).To(Equal(show.EventTimeout))
		})
	})

	It("is reproducible for a fixed seed", func() {
		run := func() show.Stats {
			var last show.Stats
			s := show.New(show.DefaultOptions(), rand.New(rand.NewSource(7)))
			s.AddObserver(show.ObserverFunc(func(st show.Stats) { last = st }))
			for i := 0; i < 400; i++ {
				s.Step(&frame{})
			}
			return last
		}
		Expect(run()).To(Equal(run()))
	})
})

var _ = Describe("Run", func() {
	It("ends on the deadline and closes the display", func() {
		sh := show.New(show.DefaultOptions(), rand.New(rand.NewSource(1)))
		d := show.NewHeadless(60, time.Second)

		Expect(show.Run(context.Background(), d, sh)).To(Succeed())
		Expect(sh.StopReason()).To(Equal(show.EventTimeout))
		Expect(d.Ticks()).To(Equal(61))
		Expect(d.Closed()).To(BeTrue())
	})

	It("ends on scripted escape", func() {
		sh := show.New(show.DefaultOptions(), rand.New(rand.NewSource(1)))
		d := show.NewHeadless(60, 0)
		d.Script[10] = []show.Event{show.EventEscape}

		Expect(show.Run(context.Background(), d, sh)).To(Succeed())
		Expect(sh.StopReason()).To(Equal(show.EventEscape))
		Expect(d.Ticks()).To(Equal(11))
	})

	It("treats a cancelled context as quit", func() {
		sh := show.New(show.DefaultOptions(), rand.New(rand.NewSource(1)))
		d := show.NewHeadless(60, 0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Expect(show.Run(ctx, d, sh)).To(Succeed())
		Expect(sh.StopReason()).To(Equal(show.EventQuit))
		Expect(d.Ticks()).To(Equal(0))
	})
})

var _ = Describe("Deadline", func() {
	It("fires exactly once", func() {
		elapsed := time.Duration(0)
		d := show.NewDeadline(time.Second, func() time.Duration { return elapsed })

		Expect(d.Poll()).To(BeEmpty())
		elapsed = time.Second
		Expect(d.Poll()).To(Equal([]show.Event{show.EventTimeout}))
		Expect(d.Poll()).To(BeEmpty())
	})

	It("never fires with a zero limit", func() {
		d := show.NewDeadline(0, func() time.Duration { return time.Hour })
		Expect(d.Poll()).To(BeEmpty())
	})

	It("converts ticks to time", func() {
		Expect(show.TickClock(90, 60)).To(Equal(1500 * time.Millisecond))
		Expect(show.TickClock(90, 0)).To(BeZero())
	})
})

var _ = Describe("Event", func() {
	It("parses every named event back", func() {
		for _, ev := range []show.Event{show.EventLaunch, show.EventFaster, show.EventEscape, show.EventTimeout} {
			parsed, err := show.ParseEvent(ev.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(ev))
		}
	})

	It("rejects unknown names and none", func() {
		_, err := show.ParseEvent("jump")
		Expect(err).To(MatchError(show.ErrUnknownEvent))
		_, err = show.ParseEvent("none")
		Expect(err).To(MatchError(show.ErrUnknownEvent))
	})
})
