// Package show runs a fireworks display.
//
// A [Show] owns every live rocket and particle and the tunable [Params].
// Each call to [Show.Step] performs one tick: it clears the frame, drains
// input, launches rockets on a randomized schedule, converts exploded
// rockets into particle bursts, prunes expired entities and draws the HUD.
//
// The show never talks to a window, terminal or clock directly. Frames are
// drawn through [Frame], input arrives as [Event] values, and auto-quit is
// an [EventTimeout] produced by a [Deadline] inside the input source.
//
// # Example
//
//	sh := show.New(show.DefaultOptions(), rand.New(rand.NewSource(1)))
//	d := show.NewHeadless(60, 15*time.Second)
//	_ = show.Run(ctx, d, sh)
//
// # Thread Safety
//
// A Show is not safe for concurrent use. It is meant to be driven by a
// single render loop.
package show
