// Package firework provides the two entity kinds of a fireworks display.
//
//   - [Rocket]: ascends from the bottom of the canvas, sheds smoke and
//     explodes once it climbs past its target height
//   - [Particle]: a fragment of an explosion that falls under gravity,
//     darkens every tick and expires when its lifespan runs out
//
// Entities never draw randomness from a global source. Every constructor
// and every random decision takes a [Rand], so a seeded *rand.Rand makes a
// whole display reproducible.
//
// Rendering goes through the [Surface] contract; the package has no
// dependency on any window or terminal library.
//
// # Example
//
//	rng := rand.New(rand.NewSource(42))
//	rk := firework.NewRocket(rng, 1920, 1080)
//	for !rk.Update(rng) {
//	    rk.Draw(surface)
//	}
//	burst := firework.Burst(rng, rk.X, rk.Y, 50, 5, 100)
package firework
