package pathbar

// Size is a width and height in pixels.
type Size struct {
	Width  int
	Height int
}

// Rect is a rectangle in pixels, relative to its parent.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Widget is a child of the path bar. *gtk.Widget satisfies this interface.
type Widget interface {
	PreferredWidth() (minimum, natural int)
	PreferredHeight() (minimum, natural int)
	IsVisible() bool
	ChildVisible() bool
}

// Revealer animates the presence of a single child. It is owned by the
// container and never shared.
type Revealer interface {
	// RevealChild returns the target state.
	RevealChild() bool
	SetRevealChild(reveal bool)
	// ChildRevealed returns true once the transition to revealed has
	// completed, and stays true until the transition to hidden completes.
	ChildRevealed() bool

	// TransitionDuration is in milliseconds.
	TransitionDuration() uint
	SetTransitionDuration(ms uint)

	// PreferredWidth is the width the revealer currently asks for, which is
	// partial while it is mid-transition.
	PreferredWidth() (minimum, natural int)
}

// StyleClasser is optionally implemented by revealers that can be styled
// with CSS classes.
type StyleClasser interface {
	AddClass(class string)
	RemoveClass(class string)
}

// Surface is a rectangular drawing surface.
type Surface interface {
	MoveResize(r Rect)
	Show()
	Destroy()
}

// FrameClock drives per-frame callbacks. Frame times are monotonic and in
// microseconds.
type FrameClock interface {
	FrameTime() int64
	// AddTickCallback calls fn once per frame until fn returns false or the
	// callback is removed.
	AddTickCallback(fn func(frameTime int64) bool) uint
	RemoveTickCallback(id uint)
}

// Host is the widget embedding a Container. It owns the children box that
// revealers are packed into.
type Host interface {
	// NewRevealer wraps child inside a new revealer packed at the end of the
	// children box. changed must be called every time ChildRevealed flips.
	NewRevealer(child Widget, changed func()) Revealer
	// DestroyRevealer unpacks and destroys the revealer.
	DestroyRevealer(r Revealer)
	// AllocateBox gives the children box its allocation.
	AllocateBox(r Rect)

	QueueResize()
	Mapped() bool
	Realized() bool
	FrameClock() FrameClock

	// NewSurface creates a surface inside parent. A nil parent means the
	// host's parent surface.
	NewSurface(parent Surface, r Rect) Surface
}
