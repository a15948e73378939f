// Package pathbar implements the adaptive container behind a breadcrumb path
// bar. Children are wrapped in revealers; on every allocation the container
// works out which of them fit, hides the ones that overflow and reveals the
// ones that fit, animating instead of snapping. Inverting the direction
// scrolls the children sideways before the overflowing side is hidden.
//
// The container is toolkit-agnostic. It drives the toolkit through the Host,
// Revealer, Surface and FrameClock interfaces, and it must only be used from
// the toolkit's main thread.
package pathbar

import (
	"github.com/diamondburned/gtkpathbar/log"
)

type child struct {
	widget   Widget
	revealer Revealer

	// onRevealed is a one-shot slot fired on the next ChildRevealed flip.
	// Arming it again overwrites the previous callback.
	onRevealed func(*child)
	detached   bool
}

// Moved is emitted once a direction change has settled.
type Moved struct {
	// Rect is the children box allocation at its final scroll offset.
	Rect Rect
	// Flipped is true if the settled direction differs from the one before
	// the change.
	Flipped bool
}

// Container holds the ordered children of a path bar.
type Container struct {
	host Host
	opts Options

	// children is in insertion order and never contains removed children.
	children []*child
	toShow   []*child
	toHide   []*child
	toRemove []*child

	inverted bool
	// dirty is set when the visibility plan needs to be recomputed on the
	// next allocation.
	dirty bool

	allocation Rect
	box        Rect

	view Surface
	bin  Surface

	anim invertAnimation

	allocatedChildrenWidth int
	totalChildrenWidth     int
	previousChildWidth     int

	invertedHandlers []func(inverted bool)
	movedHandlers    []func(Moved)
}

// New creates an empty container driven by host.
func New(host Host, opts Options) *Container {
	return &Container{
		host: host,
		opts: opts.sanitize(),
	}
}

// Options returns the animation options.
func (c *Container) Options() Options {
	return c.opts
}

// Add appends w, wrapped in a new hidden revealer. A later layout pass decides
// whether it is shown. Adding a widget twice panics.
func (c *Container) Add(w Widget) {
	if c.lookup(w) != nil {
		log.Panicf("pathbar: widget %v is already a child", w)
	}

	// Re-adding a widget that is still animating out takes it away from its
	// old revealer first.
	if old := find(c.toRemove, w); old != nil {
		c.toRemove = without(c.toRemove, old)
		c.detach(old)
	}

	ch := &child{widget: w}
	ch.revealer = c.host.NewRevealer(w, func() { c.revealedChanged(ch) })
	ch.revealer.SetTransitionDuration(c.opts.RevealerDuration)
	ch.revealer.SetRevealChild(false)

	c.children = append(c.children, ch)
	c.invalidate()
}

// Remove takes w out of the children immediately. Its revealer is hidden and
// destroyed by a later layout pass. Removing an unknown widget does nothing.
func (c *Container) Remove(w Widget) {
	ch := c.lookup(w)
	if ch == nil {
		return
	}

	c.children = without(c.children, ch)
	c.toShow = without(c.toShow, ch)
	c.toHide = without(c.toHide, ch)
	c.toRemove = append(c.toRemove, ch)

	c.invalidate()
}

// RemoveAll destroys every revealer right away, without animating.
func (c *Container) RemoveAll() {
	for _, ch := range c.children {
		c.detach(ch)
	}
	for _, ch := range c.toRemove {
		c.detach(ch)
	}

	c.children = nil
	c.toShow = nil
	c.toHide = nil
	c.toRemove = nil

	c.stopInvertAnimation()
	c.invalidate()
}

// Inverted returns true if children overflow from the start rather than the
// end.
func (c *Container) Inverted() bool {
	return c.inverted
}

// SetInverted changes the overflow direction. If the container is mapped, the
// change is animated.
func (c *Container) SetInverted(inverted bool) {
	if c.inverted == inverted {
		return
	}

	c.inverted = inverted

	for _, fn := range c.invertedHandlers {
		fn(inverted)
	}

	if c.host.Mapped() {
		c.startInvertAnimation()
	} else {
		c.emitMoved(true)
	}

	c.invalidate()
}

// ConnectInvertedChanged calls fn every time the direction changes.
func (c *Container) ConnectInvertedChanged(fn func(inverted bool)) {
	c.invertedHandlers = append(c.invertedHandlers, fn)
}

// ConnectMoved calls fn every time a direction change settles.
func (c *Container) ConnectMoved(fn func(Moved)) {
	c.movedHandlers = append(c.movedHandlers, fn)
}

func (c *Container) emitMoved(flipped bool) {
	ev := Moved{
		Rect:    Rect{X: c.scrollOffset(), Width: c.box.Width, Height: c.box.Height},
		Flipped: flipped,
	}

	for _, fn := range c.movedHandlers {
		fn(ev)
	}
}

// Children returns the children in insertion order, excluding the ones being
// removed.
func (c *Container) Children() []Widget {
	widgets := make([]Widget, 0, len(c.children))
	for _, ch := range c.children {
		if find(c.toRemove, ch.widget) == nil {
			widgets = append(widgets, ch.widget)
		}
	}
	return widgets
}

// OverflowChildren returns the visible children that are currently not
// child-visible, which are the ones hidden for lack of space.
func (c *Container) OverflowChildren() []Widget {
	var widgets []Widget
	for _, ch := range c.children {
		if ch.widget.IsVisible() && !ch.widget.ChildVisible() {
			widgets = append(widgets, ch.widget)
		}
	}
	return widgets
}

// AdaptToSize plans visibility for the given size and starts the resulting
// transitions without waiting for an allocation.
func (c *Container) AdaptToSize(available Size) {
	c.updateChildrenVisibility(available)
	c.updateRevealers()
}

// PreferredWidth returns the minimum width of the first visible child, and the
// sum of the natural widths of every visible child.
func (c *Container) PreferredWidth() (minimum, natural int) {
	haveMin := false

	for _, ch := range c.order(c.inverted) {
		if !ch.widget.IsVisible() {
			continue
		}

		min, nat := ch.widget.PreferredWidth()
		if !haveMin {
			minimum = min
			haveMin = true
		}
		natural += nat
	}

	return
}

// PreferredWidthForHeight ignores the height.
func (c *Container) PreferredWidthForHeight(height int) (minimum, natural int) {
	return c.PreferredWidth()
}

// PreferredHeight returns the tallest visible child.
func (c *Container) PreferredHeight() (minimum, natural int) {
	for _, ch := range c.children {
		if !ch.widget.IsVisible() {
			continue
		}

		min, nat := ch.widget.PreferredHeight()
		minimum = maxInt(minimum, min)
		natural = maxInt(natural, nat)
	}

	return
}

// PreferredSizeForRequisition measures the revealed prefix of the children in
// the current direction. It returns true if they overflow available.
func (c *Container) PreferredSizeForRequisition(available Size) (minimum, natural Size, overflow bool) {
	return c.preferredSizeFor(available, c.inverted)
}

// preferredSizeFor stops measuring after the first child whose revealer is not
// headed toward revealed.
func (c *Container) preferredSizeFor(available Size, inverted bool) (minimum, natural Size, overflow bool) {
	for _, ch := range c.order(inverted) {
		minH, natH := ch.widget.PreferredHeight()
		minW, natW := ch.revealer.PreferredWidth()

		minimum.Height = maxInt(minimum.Height, minH)
		natural.Height = maxInt(natural.Height, natH)
		minimum.Width += minW
		natural.Width += natW

		if !ch.revealer.RevealChild() {
			break
		}
	}

	return minimum, natural, natural.Width > available.Width
}

// boxPreferredSize measures every revealer still packed in the children box,
// including the ones animating out.
func (c *Container) boxPreferredSize() (minimum, natural Size) {
	measure := func(ch *child) {
		if ch.detached {
			return
		}

		minH, natH := ch.widget.PreferredHeight()
		minW, natW := ch.revealer.PreferredWidth()

		minimum.Height = maxInt(minimum.Height, minH)
		natural.Height = maxInt(natural.Height, natH)
		minimum.Width += minW
		natural.Width += natW
	}

	for _, ch := range c.children {
		measure(ch)
	}
	for _, ch := range c.toRemove {
		measure(ch)
	}

	return
}

// SizeAllocate lays out the container inside alloc.
func (c *Container) SizeAllocate(alloc Rect) {
	defer log.Benchmark("pathbar: size allocate")()

	resized := alloc.Size() != c.allocation.Size()
	c.allocation = alloc

	if resized || c.dirty {
		c.updateChildrenVisibility(alloc.Size())
	}

	c.updateRevealers()

	min, nat := c.boxPreferredSize()
	c.box = Rect{
		Width:  clampInt(alloc.Width, min.Width, nat.Width),
		Height: clampInt(alloc.Height, min.Height, nat.Height),
	}
	c.host.AllocateBox(c.box)

	c.updateScrolling()

	if c.host.Realized() && c.view != nil {
		c.view.MoveResize(alloc)
		c.view.Show()
	}
}

// Allocation returns the last allocation given to SizeAllocate.
func (c *Container) Allocation() Rect {
	return c.allocation
}

// UnusedWidth returns how much of the allocation the children box leaves
// empty.
func (c *Container) UnusedWidth() int {
	return c.allocation.Width - c.box.Width
}

// Realize creates the view surface inside parent and the scrolled bin surface
// inside the view.
func (c *Container) Realize(parent Surface) {
	c.view = c.host.NewSurface(parent, c.allocation)

	min, nat, overflows := c.preferredSizeFor(c.allocation.Size(), c.inverted)

	used := nat.Width
	if overflows {
		used = maxInt(min.Width, c.allocation.Width)
	}

	c.bin = c.host.NewSurface(c.view, Rect{Width: used, Height: nat.Height})
	c.bin.Show()
	c.view.Show()
}

// Unrealize destroys the surfaces created by Realize.
func (c *Container) Unrealize() {
	c.stopInvertAnimation()

	if c.bin != nil {
		c.bin.Destroy()
		c.bin = nil
	}
	if c.view != nil {
		c.view.Destroy()
		c.view = nil
	}
}

// updateChildrenVisibility replaces the show and hide sets with a fresh plan
// in the current direction.
func (c *Container) updateChildrenVisibility(available Size) Plan {
	order := c.order(c.inverted)

	cs := make([]Candidate, len(order))
	for i, ch := range order {
		min, nat := ch.widget.PreferredWidth()
		cs[i] = Candidate{
			MinWidth: min,
			NatWidth: nat,
			Revealed: ch.revealer.ChildRevealed(),
			Targeted: ch.revealer.RevealChild(),
			Removing: find(c.toRemove, ch.widget) != nil,
		}
	}

	plan := PlanVisibility(cs, available)

	c.toShow = pick(order, plan.Show)
	c.toHide = pick(order, plan.Hide)
	c.allocatedChildrenWidth = plan.AllocatedWidth
	c.totalChildrenWidth = plan.TotalWidth
	c.previousChildWidth = plan.PreviousChildWidth
	c.dirty = false

	return plan
}

func (c *Container) invalidate() {
	c.dirty = true
	c.host.QueueResize()
}

func (c *Container) lookup(w Widget) *child {
	return find(c.children, w)
}

// order returns a copy of the children in the given direction, so callers can
// mutate the container while iterating.
func (c *Container) order(inverted bool) []*child {
	order := make([]*child, len(c.children))
	copy(order, c.children)

	if inverted {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	return order
}

func find(list []*child, w Widget) *child {
	for _, ch := range list {
		if ch.widget == w {
			return ch
		}
	}
	return nil
}

func contains(list []*child, ch *child) bool {
	for _, c := range list {
		if c == ch {
			return true
		}
	}
	return false
}

// without returns a new slice, leaving list untouched for anyone iterating it.
func without(list []*child, ch *child) []*child {
	out := make([]*child, 0, len(list))
	for _, c := range list {
		if c != ch {
			out = append(out, c)
		}
	}
	return out
}

func snapshot(list []*child) []*child {
	out := make([]*child, len(list))
	copy(out, list)
	return out
}

func pick(order []*child, indices []int) []*child {
	out := make([]*child, len(indices))
	for i, ix := range indices {
		out[i] = order[ix]
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	return maxInt(lo, minInt(v, hi))
}
