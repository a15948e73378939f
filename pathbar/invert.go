package pathbar

import (
	"math"

	"github.com/diamondburned/gtkpathbar/log"
)

// invertAnimation is the session of a running direction change. The zero
// value is idle.
type invertAnimation struct {
	running  bool
	progress float64

	started   bool
	startTime int64 // µs

	initialWidth int
	// from is the direction before the change.
	from   bool
	tickID uint
}

// Animating returns true while a direction change is being animated.
func (c *Container) Animating() bool {
	return c.anim.running
}

// startInvertAnimation reveals every child instantly, so that all of them are
// present while the children box scrolls, then starts ticking.
func (c *Container) startInvertAnimation() {
	if c.anim.running {
		c.finishInvertAnimation()
	}

	c.anim = invertAnimation{
		running:      true,
		initialWidth: c.allocation.Width,
		from:         !c.inverted,
	}

	for _, ch := range snapshot(c.children) {
		r := ch.revealer

		if r.ChildRevealed() {
			setStyleClass(r, "")
		} else {
			setStyleClass(r, ClassOpacityOn)
		}

		r.SetTransitionDuration(0)
		r.SetRevealChild(true)
		r.SetTransitionDuration(c.opts.RevealerDuration)
	}

	c.anim.tickID = c.host.FrameClock().AddTickCallback(c.Tick)
}

// Tick advances the invert animation to frameTime, in microseconds. It
// returns false once there is nothing left to animate.
func (c *Container) Tick(frameTime int64) bool {
	if !c.anim.running {
		return false
	}

	if !c.anim.started {
		c.anim.started = true
		c.anim.startTime = frameTime
	}

	elapsed := float64(frameTime - c.anim.startTime)

	if maxScroll := c.maxScroll(); maxScroll != 0 {
		distance := math.Abs(float64(maxScroll))

		// Many children would take forever at constant speed, so the total
		// time is capped.
		speed := c.opts.InvertSpeed
		if distance/speed > c.opts.InvertMaxTime {
			speed = distance / c.opts.InvertMaxTime
		}

		c.anim.progress = math.Min(1, math.Max(0, elapsed*speed/(1000*distance)))

		log.Debugf(
			"pathbar: invert progress %.3f, width %d, max scroll %d, elapsed %.1fms",
			c.anim.progress, c.allocation.Width, maxScroll, elapsed/1000,
		)

		c.updateScrolling()
	}

	// A zero max scroll never advances progress, so the animation also ends
	// once the maximum time is up, with progress possibly short of 1.
	if c.anim.progress >= 1 || elapsed >= c.opts.InvertMaxTime*1000 {
		c.finishInvertAnimation()
		return false
	}

	return true
}

// finishInvertAnimation hides the children that overflow in the new
// direction and returns the session to idle.
func (c *Container) finishInvertAnimation() {
	flipped := c.inverted != c.anim.from

	c.updateChildrenVisibility(c.allocation.Size())

	// Toward inverted, the children to hide have already been scrolled out
	// of view, so they are hidden without a transition.
	duration := c.opts.RevealerDuration
	if c.inverted {
		duration = 0
	}

	for _, ch := range snapshot(c.toHide) {
		r := ch.revealer

		setStyleClass(r, ClassOpacityOff)
		c.arm(ch, (*Container).hideCompleted)

		r.SetTransitionDuration(duration)
		r.SetRevealChild(false)
		r.SetTransitionDuration(c.opts.RevealerDuration)
	}

	c.stopInvertAnimation()
	c.updateScrolling()
	c.emitMoved(flipped)
	c.host.QueueResize()
}

func (c *Container) stopInvertAnimation() {
	if !c.anim.running {
		return
	}

	if c.anim.tickID != 0 {
		c.host.FrameClock().RemoveTickCallback(c.anim.tickID)
	}

	c.anim = invertAnimation{}
}

// maxScroll is how far the children box travels during the animation.
//
// While animating back to the normal direction the value is not floored at
// zero, unlike every other case.
func (c *Container) maxScroll() int {
	min, nat, overflows := c.preferredSizeFor(c.allocation.Size(), true)

	used := nat.Width
	if overflows {
		used = maxInt(min.Width, c.allocation.Width)
	}

	scroll := c.box.Width - used

	if c.anim.running && !c.inverted {
		return scroll
	}

	return maxInt(0, scroll)
}

func (c *Container) scrollOffset() int {
	if !c.anim.running {
		return 0
	}

	maxScroll := float64(c.maxScroll())

	// The bin surface only ever moves to the left of the allocation.
	if c.inverted {
		return int(-c.anim.progress * maxScroll)
	}
	return int(-(1 - c.anim.progress) * maxScroll)
}

func (c *Container) updateScrolling() {
	if !c.host.Realized() || c.bin == nil {
		return
	}

	c.bin.MoveResize(Rect{
		X:      c.scrollOffset(),
		Width:  c.box.Width,
		Height: c.box.Height,
	})
}
