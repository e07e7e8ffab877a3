package frame

import (
	"fmt"
	"time"

	"github.com/loov/hrtime"
)

// Stats measures how long the update and render phases of a frame take.
type Stats struct {
	Update time.Duration
	Render time.Duration

	start time.Duration
}

func (stats *Stats) BeginUpdate() { stats.start = hrtime.Now() }
func (stats *Stats) EndUpdate()   { stats.Update = hrtime.Since(stats.start) }
func (stats *Stats) BeginRender() { stats.start = hrtime.Now() }
func (stats *Stats) EndRender()   { stats.Render = hrtime.Since(stats.start) }

// Title formats the timings for the window title.
func (stats *Stats) Title(name string) string {
	return fmt.Sprintf("%s\tUpdate:\t%v\tRender:\t%v", name, stats.Update, stats.Render)
}
