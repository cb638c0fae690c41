package page

import (
	"github.com/skilllens/motion"
)

// Binding ties a Document to an Animator. See Mount.
type Binding struct {
	Trigger *motion.VisibilityTrigger
	Scanner *motion.Scanner

	stopWatch motion.CancelFunc
	stopSync  func()
}

// Mount initializes every tagged node in d, then keeps the page live: the
// visibility trigger is scanned every frame against d's viewport, and any
// structural change to the tree schedules a debounced rescan.
//
// Rescans start counters and progress fills again for every tagged node, as
// a fresh initialization would. Reveals do not repeat: nodes already
// triggered stay triggered.
func Mount(a *motion.Animator, d *Document) *Binding {
	trig := motion.NewVisibilityTrigger(a, d)
	sc := motion.NewScanner(a, trig)
	b := &Binding{Trigger: trig, Scanner: sc}

	sc.Scan(d)
	b.stopWatch = trig.Watch()
	b.stopSync = d.OnChange(func() { sc.Notify(d) })
	return b
}

// Unmount stops the per-frame visibility scan and change tracking.
// Animations already running are left to finish.
func (b *Binding) Unmount() {
	b.stopSync()
	b.stopWatch()
}
