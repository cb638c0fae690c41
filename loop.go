package motion

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// TickerLoop pumps a FrameLoop from a wall-clock ticker. Run owns the
// animation goroutine: every callback executes there.
type TickerLoop struct {
	*FrameLoop
	interval time.Duration
}

// NewTickerLoop creates a loop that ticks every interval. A non-positive
// interval selects DefaultFrameInterval.
func NewTickerLoop(interval time.Duration) *TickerLoop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerLoop{FrameLoop: NewFrameLoop(), interval: interval}
}

// Run ticks until ctx is done and returns ctx.Err().
func (l *TickerLoop) Run(ctx context.Context) error {
	start := time.Now()
	t := time.NewTicker(l.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-t.C:
			l.Tick(now.Sub(start))
		}
	}
}

// EbitenLoop pumps a FrameLoop from an Ebitengine game. Call Update once from
// ebiten.Game.Update; each call advances the clock by one tick (1/TPS).
//
//	type Game struct{ loop *motion.EbitenLoop }
//
//	func (g *Game) Update() error { g.loop.Update(); return nil }
type EbitenLoop struct {
	*FrameLoop
	elapsed time.Duration
}

// NewEbitenLoop creates an EbitenLoop with its clock at zero.
func NewEbitenLoop() *EbitenLoop {
	return &EbitenLoop{FrameLoop: NewFrameLoop()}
}

// Update advances the clock by one Ebitengine tick and runs due work.
func (l *EbitenLoop) Update() {
	l.elapsed += tickDuration(ebiten.TPS())
	l.Tick(l.elapsed)
}

// tickDuration converts a ticks-per-second setting to a frame duration.
// Non-positive settings (ebiten.SyncWithFPS) fall back to 60Hz.
func tickDuration(tps int) time.Duration {
	if tps <= 0 {
		return DefaultFrameInterval
	}
	return time.Second / time.Duration(tps)
}
