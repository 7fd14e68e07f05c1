package show

// Stats summarises one completed tick.
type Stats struct {
	Tick      int
	Rockets   int
	Particles int
	// Launched and Exploded count events within this tick only.
	Launched int
	Exploded int

	TotalLaunched int
	TotalExploded int
	Params        Params
}

// Observer is notified after every completed tick.
type Observer interface {
	OnTick(st Stats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(st Stats)

func (f ObserverFunc) OnTick(st Stats) { f(st) }
