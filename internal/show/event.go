package show

import "fmt"

// Event is a discrete input delivered to the show once per tick.
type Event int

const (
	EventNone Event = iota
	EventMoreParticles
	EventFewerParticles
	EventFaster
	EventSlower
	EventLonger
	EventShorter
	EventLaunch
	EventEscape
	EventQuit
	EventTimeout
)

var eventNames = map[Event]string{
	EventNone:           "none",
	EventMoreParticles:  "more-particles",
	EventFewerParticles: "fewer-particles",
	EventFaster:         "faster",
	EventSlower:         "slower",
	EventLonger:         "longer",
	EventShorter:        "shorter",
	EventLaunch:         "launch",
	EventEscape:         "escape",
	EventQuit:           "quit",
	EventTimeout:        "timeout",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// ParseEvent returns the event with the given name.
func ParseEvent(name string) (Event, error) {
	for e, n := range eventNames {
		if n == name && e != EventNone {
			return e, nil
		}
	}
	return EventNone, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

// Terminal reports whether the event ends the show.
func (e Event) Terminal() bool {
	return e == EventEscape || e == EventQuit || e == EventTimeout
}

// Input is a polled source of events.
type Input interface {
	Poll() []Event
}
