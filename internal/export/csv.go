package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/fireworks/internal/show"
)

var statsHeader = []string{
	"tick", "rockets", "particles", "launched", "exploded",
	"total_launched", "total_exploded", "param_particles", "param_speed", "param_lifespan",
}

// StatsCSV writes one CSV row per tick. It implements show.Observer.
type StatsCSV struct {
	w      *csv.Writer
	header bool
	err    error
}

func NewStatsCSV(w io.Writer) *StatsCSV {
	return &StatsCSV{w: csv.NewWriter(w)}
}

func (c *StatsCSV) OnTick(st show.Stats) {
	if c.err != nil {
		return
	}
	if !c.header {
		c.header = true
		if c.err = c.w.Write(statsHeader); c.err != nil {
			return
		}
	}

	c.err = c.w.Write([]string{
		strconv.Itoa(st.Tick),
		strconv.Itoa(st.Rockets),
		strconv.Itoa(st.Particles),
		strconv.Itoa(st.Launched),
		strconv.Itoa(st.Exploded),
		strconv.Itoa(st.TotalLaunched),
		strconv.Itoa(st.TotalExploded),
		strconv.Itoa(st.Params.Particles),
		strconv.Itoa(st.Params.Speed),
		strconv.Itoa(st.Params.Lifespan),
	})
}

// Flush writes buffered rows and returns the first error seen.
func (c *StatsCSV) Flush() error {
	c.w.Flush()
	if c.err != nil {
		return c.err
	}
	return c.w.Error()
}
