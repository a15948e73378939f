package pathbar

// Style classes set on revealers while they transition.
const (
	ClassOpacityOn  = "pathbar-opacity-on"
	ClassOpacityOff = "pathbar-opacity-off"
)

var styleClasses = []string{ClassOpacityOn, ClassOpacityOff}

func setStyleClass(r Revealer, class string) {
	s, ok := r.(StyleClasser)
	if !ok {
		return
	}

	for _, c := range styleClasses {
		s.RemoveClass(c)
	}
	if class != "" {
		s.AddClass(class)
	}
}

// updateRevealers turns the pending sets into revealer transitions. Hides and
// removals go first; shows wait until both sets have drained, so that space
// freed by the former is accounted for before anything slides in.
func (c *Container) updateRevealers() {
	// The invert animation owns the revealers while it runs.
	if c.anim.running {
		return
	}

	for _, ch := range snapshot(c.toHide) {
		r := ch.revealer
		if r.ChildRevealed() && r.RevealChild() {
			c.arm(ch, (*Container).hideCompleted)
			setStyleClass(r, ClassOpacityOff)
			r.SetRevealChild(false)
			c.settleIfDone(ch)
		}
	}

	for _, ch := range snapshot(c.toRemove) {
		if ch.detached {
			continue
		}

		r := ch.revealer
		if r.ChildRevealed() {
			c.arm(ch, (*Container).reallyRemove)
			setStyleClass(r, ClassOpacityOff)
			r.SetRevealChild(false)
			c.settleIfDone(ch)
		} else {
			c.reallyRemove(ch)
		}
	}

	if len(c.toRemove) > 0 || len(c.toHide) > 0 {
		return
	}

	for _, ch := range snapshot(c.toShow) {
		r := ch.revealer
		if !r.RevealChild() {
			c.arm(ch, (*Container).showCompleted)
			setStyleClass(r, ClassOpacityOn)
			r.SetRevealChild(true)
			c.settleIfDone(ch)
		}
	}
}

// settleIfDone runs the completion slot of ch if its revealer already sits at
// the new target. A hide reversed before the revealer moved leaves
// ChildRevealed unchanged, so the host never reports a flip for it.
func (c *Container) settleIfDone(ch *child) {
	r := ch.revealer
	if ch.onRevealed != nil && r.ChildRevealed() == r.RevealChild() {
		c.revealedChanged(ch)
	}
}

// arm overwrites the completion slot of ch.
func (c *Container) arm(ch *child, fn func(*Container, *child)) {
	ch.onRevealed = func(ch *child) { fn(c, ch) }
}

// revealedChanged is called by the host every time ChildRevealed flips. The
// slot is cleared before it runs, so it fires at most once per arming.
func (c *Container) revealedChanged(ch *child) {
	fn := ch.onRevealed
	ch.onRevealed = nil

	if fn != nil {
		fn(ch)
	}
}

func (c *Container) showCompleted(ch *child) {
	setStyleClass(ch.revealer, "")
	c.toShow = without(c.toShow, ch)
	c.invalidate()
}

func (c *Container) hideCompleted(ch *child) {
	setStyleClass(ch.revealer, "")
	c.toHide = without(c.toHide, ch)
	c.invalidate()
}

// reallyRemove destroys the revealer of a removed child once it is hidden.
func (c *Container) reallyRemove(ch *child) {
	if ch.detached || ch.revealer.ChildRevealed() || !contains(c.toRemove, ch) {
		return
	}

	visible := ch.widget.IsVisible()

	c.toRemove = without(c.toRemove, ch)
	c.detach(ch)

	if visible {
		c.host.QueueResize()
	}
}

func (c *Container) detach(ch *child) {
	if ch.detached {
		return
	}

	ch.detached = true
	ch.onRevealed = nil
	c.host.DestroyRevealer(ch.revealer)
}
