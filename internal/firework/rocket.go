package firework

import "math"

const (
	RocketMinSpeed = 15.0
	RocketMaxSpeed = 20.0
	// RocketSpread is the maximum deviation from straight up, in radians.
	RocketSpread = 0.2

	SmokeChance  = 0.5
	SmokeFade    = 5
	SmokeJitter  = 2.0
	SmokeMinSize = 2.0
	SmokeMaxSize = 3.0

	rocketRadius = 3
	trailRadius  = 2
)

var (
	RocketColor = White
	SmokeColor  = RGB{100, 100, 100}
)

// Smoke is a puff left behind by a rocket. Alpha drops by SmokeFade per
// tick and the puff is removed once it reaches zero.
type Smoke struct {
	X, Y  float64
	Alpha int
	Size  float64
}

// Rocket is a projectile climbing towards TargetHeight. Angle and speed are
// fixed at launch.
type Rocket struct {
	X, Y         float64
	Angle        float64
	Speed        float64
	TargetHeight float64
	Color        RGB

	trail    Trail
	smoke    []Smoke
	exploded bool
}

// NewRocket launches a rocket from a random x on the bottom edge of a
// width×height canvas, heading mostly upwards, with a target height in the
// vertical middle half of the canvas.
func NewRocket(r Rand, width, height int) *Rocket {
	x := float64(RandInt(r, 0, width))
	speed := uniform(r, RocketMinSpeed, RocketMaxSpeed)
	angle := -math.Pi/2 + uniform(r, -RocketSpread, RocketSpread)
	target := float64(RandInt(r, height/4, 3*height/4))
	return NewRocketAt(x, float64(height), angle, speed, target)
}

// NewRocketAt builds a rocket with explicit launch values.
func NewRocketAt(x, y, angle, speed, targetHeight float64) *Rocket {
	return &Rocket{
		X:            x,
		Y:            y,
		Angle:        angle,
		Speed:        speed,
		TargetHeight: targetHeight,
		Color:        RocketColor,
		smoke:        make([]Smoke, 0, 64),
	}
}

// Update advances the rocket by one tick and reports whether it reached its
// target height on this tick. An exploded rocket no longer moves and always
// reports false.
func (rk *Rocket) Update(r Rand) bool {
	if rk.exploded {
		return false
	}

	rk.X += math.Cos(rk.Angle) * rk.Speed
	rk.Y += math.Sin(rk.Angle) * rk.Speed

	if r.Float64() < SmokeChance {
		rk.smoke = append(rk.smoke, Smoke{
			X:     rk.X + uniform(r, -SmokeJitter, SmokeJitter),
			Y:     rk.Y + uniform(r, -SmokeJitter, SmokeJitter),
			Alpha: 255,
			Size:  uniform(r, SmokeMinSize, SmokeMaxSize),
		})
	}

	live := rk.smoke[:0]
	for _, s := range rk.smoke {
		s.Alpha -= SmokeFade
		if s.Alpha > 0 {
			live = append(live, s)
		}
	}
	rk.smoke = live

	rk.trail.Push(Point{rk.X, rk.Y})

	if rk.Y <= rk.TargetHeight {
		rk.exploded = true
		return true
	}
	return false
}

func (rk *Rocket) Exploded() bool { return rk.exploded }

func (rk *Rocket) Trail() []Point { return rk.trail.Points() }

func (rk *Rocket) Smoke() []Smoke { return rk.smoke }

// Draw renders smoke, then the trail, then the rocket head.
func (rk *Rocket) Draw(s Surface) {
	for _, sm := range rk.smoke {
		s.Circle(math.Trunc(sm.X), math.Trunc(sm.Y), math.Trunc(sm.Size), SmokeColor.Alpha(uint8(sm.Alpha)))
	}
	c := rk.Color.Opaque()
	for _, p := range rk.trail.Points() {
		s.Circle(math.Trunc(p.X), math.Trunc(p.Y), trailRadius, c)
	}
	s.Circle(math.Trunc(rk.X), math.Trunc(rk.Y), rocketRadius, c)
}
