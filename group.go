package motion

import (
	"time"

	"github.com/tanema/gween"
	gease "github.com/tanema/gween/ease"
)

const maxGroupFields = 4

// TweenGroup animates up to 4 float64 fields simultaneously by pulling values
// from gween tweens. It is the polling counterpart of Animator.Animate for
// loops that already own a frame delta: call Update(dt) each frame and read
// the fields, or check Done.
//
// There is no scheduler involved and no reduced-motion check; callers that
// need one should consult Animator.PrefersReducedMotion and call Finish.
type TweenGroup struct {
	tweens   [maxGroupFields]*gween.Tween
	fields   [maxGroupFields]*float64
	targets  [maxGroupFields]float64
	count    int
	duration float32
	easing   gease.TweenFunc
	Done     bool
}

// NewTweenGroup creates an empty group whose fields all share duration and
// easing. A nil easing selects ease.OutQuart.
func NewTweenGroup(duration time.Duration, easing gease.TweenFunc) *TweenGroup {
	if easing == nil {
		easing = gease.OutQuart
	}
	return &TweenGroup{duration: float32(max(duration, 0).Seconds()), easing: easing}
}

// Add tweens *field from its current value to to. It reports false when the
// group is full or field is nil.
func (g *TweenGroup) Add(field *float64, to float64) bool {
	if field == nil || g.count == maxGroupFields {
		return false
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), g.duration, g.easing)
	g.fields[g.count] = field
	g.targets[g.count] = to
	g.count++
	g.Done = false
	return true
}

// Update advances every tween by dt and writes the values back. Finished
// fields are snapped to their exact float64 targets.
func (g *TweenGroup) Update(dt time.Duration) {
	if g.Done || g.count == 0 {
		return
	}
	step := float32(dt.Seconds())
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(step)
		if finished {
			*g.fields[i] = g.targets[i]
			continue
		}
		*g.fields[i] = float64(val)
		allDone = false
	}
	g.Done = allDone
}

// Finish writes every target immediately and marks the group done.
func (g *TweenGroup) Finish() {
	for i := 0; i < g.count; i++ {
		*g.fields[i] = g.targets[i]
	}
	g.Done = true
}
