// Package automation drives headless shows from yaml scripts of timed
// key presses.
package automation

import (
	"fmt"
	"os"
	"sort"

	"github.com/san-kum/fireworks/internal/show"
	"gopkg.in/yaml.v3"
)

// Script defines a scripted input sequence
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step presses one or more keys on a tick.
type Step struct {
	Tick   int      `yaml:"tick"`
	Events []string `yaml:"events"`
	// Repeat presses the keys again every Every ticks, Repeat more times.
	Repeat int `yaml:"repeat"`
	Every  int `yaml:"every"`
}

// LoadScript loads a script from a YAML file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScript(data)
}

func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, err
	}
	if _, err := script.Timeline(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Timeline expands the script into the per-tick event map used by
// show.Headless.
func (s *Script) Timeline() (map[int][]show.Event, error) {
	timeline := make(map[int][]show.Event)

	for i, step := range s.Steps {
		if step.Tick < 0 {
			return nil, fmt.Errorf("step %d: negative tick %d", i+1, step.Tick)
		}
		if step.Repeat > 0 && step.Every <= 0 {
			return nil, fmt.Errorf("step %d: repeat needs a positive every", i+1)
		}

		events := make([]show.Event, 0, len(step.Events))
		for _, name := range step.Events {
			ev, err := show.ParseEvent(name)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i+1, err)
			}
			events = append(events, ev)
		}

		for r := 0; r <= step.Repeat; r++ {
			tick := step.Tick + r*step.Every
			timeline[tick] = append(timeline[tick], events...)
		}
	}

	return timeline, nil
}

// Apply loads the script's timeline into h.
func (s *Script) Apply(h *show.Headless) error {
	timeline, err := s.Timeline()
	if err != nil {
		return err
	}
	for tick, events := range timeline {
		h.Script[tick] = append(h.Script[tick], events...)
	}
	return nil
}

// Describe returns one line per tick, in order.
func (s *Script) Describe() []string {
	timeline, err := s.Timeline()
	if err != nil {
		return nil
	}
	ticks := make([]int, 0, len(timeline))
	for t := range timeline {
		ticks = append(ticks, t)
	}
	sort.Ints(ticks)

	lines := make([]string, len(ticks))
	for i, t := range ticks {
		lines[i] = fmt.Sprintf("tick %d: %v", t, timeline[t])
	}
	return lines
}
