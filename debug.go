package motion

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut is where debug-mode lines are written.
var debugOut io.Writer = os.Stderr

// debugTween prints one lifecycle line for a tween.
func (a *Animator) debugTween(r *tweenRun, phase string) {
	if !a.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[motion] tween %d %s | %g -> %g over %v | frames: %d\n",
		r.id, phase, r.tw.From, r.tw.To, r.tw.Duration, r.frames)
}

// debugTrigger prints one line when a visibility trigger fires.
func (a *Animator) debugTrigger(kind string, delay time.Duration) {
	if !a.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[motion] trigger %q fired | delay: %v\n", kind, delay)
}

// debugCheckPending warns when a scheduler has accumulated more pending
// callbacks than threshold, which usually means tweens are started every
// frame without being cancelled.
const debugMaxPending = 1000

func (a *Animator) debugCheckPending() {
	if !a.debug {
		return
	}
	p, ok := a.sched.(interface{ Pending() int })
	if !ok {
		return
	}
	if n := p.Pending(); n > debugMaxPending {
		_, _ = fmt.Fprintf(debugOut, "[motion] warning: %d pending callbacks (threshold %d)\n",
			n, debugMaxPending)
	}
}
