// Package motion is a small tweening engine for score and progress reveal
// effects: count-up counters, ring and bar fills, scroll-in reveals and
// staggered lists.
//
// # Quick start
//
// Every animation runs on a [Scheduler]. Pick the loop that matches the host
// and hand it to an [Animator]:
//
//	loop := motion.NewTickerLoop(0)
//	go loop.Run(ctx)
//
//	a := motion.NewAnimator(loop)
//	a.AnimateCounter(label, 87, motion.CounterOptions{Suffix: "%"})
//
// Inside an [Ebitengine] game use [EbitenLoop] and call its Update from
// ebiten.Game.Update. Tests use [VirtualClock], which replays simulated time
// deterministically.
//
// # Tweens
//
// [Animator.Animate] drives a [Tween] from From to To over Duration, calling
// OnUpdate each frame with From+(To-From)*Easing(progress). The last frame
// writes To exactly, then OnComplete runs. The returned [CancelFunc] stops
// the tween; no callback fires after it returns.
//
// The derived animators configure Animate for a specific surface:
// [Animator.AnimateCounter] writes text, [Animator.AnimateCircularProgress]
// and [Animator.AnimateProgressBar] write style properties, and
// [Animator.AnimateColor] blends colours through HCL (via [go-colorful]).
// [Animator.TypeText] types text out one character at a time.
//
// # Easing
//
// [EaseOutExpo], [EaseOutQuart], [EaseOutCubic], [EaseInOutQuad] and [Spring]
// are available by name through [Easings]. [FromTweenFunc] adapts any
// [gween] curve and [HarmonicSpring] samples a [harmonica] spring.
//
// # Reveals
//
// [VisibilityTrigger] reveals elements once, the first time they scroll into
// view. [Stagger] applies an effect to a list with increasing delays.
// [Scanner] wires declaratively tagged elements (data-sl-score,
// data-sl-animate, ...) to all of the above.
//
// # Reduced motion
//
// Every animator consults the [MotionPreference] on each request. When it
// reports true, animations jump straight to their final state.
//
// # Hosts
//
// Package page is an in-memory document that implements every target
// interface. Package teaclock runs the scheduler inside a bubbletea program
// and package mqttsink publishes writes to a remote display. The separate ecs
// module forwards lifecycle events into a donburi world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [harmonica]: https://github.com/charmbracelet/harmonica
// [go-colorful]: https://github.com/lucasb-eyer/go-colorful
package motion
