package scrollreel

import (
	"time"

	"github.com/rs/zerolog"
)

// debugLogInterval is how often timing stats are logged at debug level.
const debugLogInterval = 5 * time.Second

// debugStats accumulates per-tick and per-draw timings between log lines.
type debugStats struct {
	ticks     int
	draws     int
	tickTime  time.Duration
	drawTime  time.Duration
	maxDraw   time.Duration
	messages  int
	lastLogAt time.Time
}

func (d *debugStats) observeTick(elapsed time.Duration, drained int) {
	d.ticks++
	d.tickTime += elapsed
	d.messages += drained
}

func (d *debugStats) observeDraw(elapsed time.Duration) {
	d.draws++
	d.drawTime += elapsed
	d.maxDraw = max(d.maxDraw, elapsed)
}

// maybeLog emits one debug line per interval and resets the counters.
func (d *debugStats) maybeLog(log zerolog.Logger, now time.Time, cached int) {
	if d.lastLogAt.IsZero() {
		d.lastLogAt = now
		return
	}
	if now.Sub(d.lastLogAt) < debugLogInterval {
		return
	}
	if e := log.Debug(); e.Enabled() {
		e.Int("ticks", d.ticks).
			Int("draws", d.draws).
			Dur("avg_tick", avgDuration(d.tickTime, d.ticks)).
			Dur("avg_draw", avgDuration(d.drawTime, d.draws)).
			Dur("max_draw", d.maxDraw).
			Int("messages", d.messages).
			Int("cached", cached).
			Msg("frame timing")
	}
	*d = debugStats{lastLogAt: now}
}

func avgDuration(total time.Duration, n int) time.Duration {
	if n == 0 {
		return 0
	}
	return total / time.Duration(n)
}
