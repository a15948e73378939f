// Package placement positions a popup next to an anchor rectangle, flipping,
// sliding and shrinking it to stay within the bounds of a work area.
package placement

import "github.com/diamondburned/gtkpathbar/pathbar"

// Gravity names a point of a rectangle.
type Gravity uint8

const (
	Static Gravity = iota
	NorthWest
	North
	NorthEast
	West
	Center
	East
	SouthWest
	South
	SouthEast
)

// horizontal returns -1, 0 or 1 for the left edge, the middle and the right
// edge.
func (g Gravity) horizontal() int {
	switch g {
	case Static, NorthWest, West, SouthWest:
		return -1
	case NorthEast, East, SouthEast:
		return 1
	default:
		return 0
	}
}

func (g Gravity) vertical() int {
	switch g {
	case Static, NorthWest, North, NorthEast:
		return -1
	case SouthWest, South, SouthEast:
		return 1
	default:
		return 0
	}
}

// AnchorHints says how the popup may be adjusted when it does not fit.
type AnchorHints uint8

const (
	FlipX AnchorHints = 1 << iota
	FlipY
	SlideX
	SlideY
	ResizeX
	ResizeY

	Flip   = FlipX | FlipY
	Slide  = SlideX | SlideY
	Resize = ResizeX | ResizeY
)

// Has returns true if every bit of h2 is set.
func (h AnchorHints) Has(h2 AnchorHints) bool {
	return h&h2 == h2
}

// Shadow is the invisible margin around a popup surface.
type Shadow struct {
	Left, Right, Top, Bottom int
}

type Request struct {
	// Anchor and Bounds share the same coordinate space.
	Anchor pathbar.Rect
	Bounds pathbar.Rect
	// Size of the popup, shadow included.
	Size   pathbar.Size
	Shadow Shadow

	AnchorGravity Gravity
	PopupGravity  Gravity
	Hints         AnchorHints

	DX, DY int
}

// Result is where the popup ends up.
type Result struct {
	// Flipped is the position after flipping, before sliding or resizing.
	Flipped pathbar.Rect
	// Final is the position after every adjustment.
	Final pathbar.Rect

	FlippedX bool
	FlippedY bool
}

// Resized returns true if the popup had to shrink.
func (r Result) Resized(req Request) bool {
	return r.Final.Size() != req.Size
}

// MoveToRect computes the position of the popup described by req.
func MoveToRect(req Request) Result {
	var res Result

	flipped := pathbar.Rect{
		Width:  req.Size.Width - req.Shadow.Left - req.Shadow.Right,
		Height: req.Size.Height - req.Shadow.Top - req.Shadow.Bottom,
	}

	flipped.X, res.FlippedX = choose(axis{
		boundsPos:  req.Bounds.X,
		boundsLen:  req.Bounds.Width,
		anchorPos:  req.Anchor.X,
		anchorLen:  req.Anchor.Width,
		popupLen:   flipped.Width,
		anchorSide: req.AnchorGravity.horizontal(),
		popupSide:  req.PopupGravity.horizontal(),
		delta:      req.DX,
		canFlip:    req.Hints.Has(FlipX),
	})

	flipped.Y, res.FlippedY = choose(axis{
		boundsPos:  req.Bounds.Y,
		boundsLen:  req.Bounds.Height,
		anchorPos:  req.Anchor.Y,
		anchorLen:  req.Anchor.Height,
		popupLen:   flipped.Height,
		anchorSide: req.AnchorGravity.vertical(),
		popupSide:  req.PopupGravity.vertical(),
		delta:      req.DY,
		canFlip:    req.Hints.Has(FlipY),
	})

	final := flipped
	b := req.Bounds

	if req.Hints.Has(SlideX) {
		if final.X+final.Width > b.X+b.Width {
			final.X = b.X + b.Width - final.Width
		}
		if final.X < b.X {
			final.X = b.X
		}
	}

	if req.Hints.Has(SlideY) {
		if final.Y+final.Height > b.Y+b.Height {
			final.Y = b.Y + b.Height - final.Height
		}
		if final.Y < b.Y {
			final.Y = b.Y
		}
	}

	if req.Hints.Has(ResizeX) {
		if final.X < b.X {
			final.Width -= b.X - final.X
			final.X = b.X
		}
		if final.X+final.Width > b.X+b.Width {
			final.Width = b.X + b.Width - final.X
		}
	}

	if req.Hints.Has(ResizeY) {
		if final.Y < b.Y {
			final.Height -= b.Y - final.Y
			final.Y = b.Y
		}
		if final.Y+final.Height > b.Y+b.Height {
			final.Height = b.Y + b.Height - final.Y
		}
	}

	res.Flipped = req.Shadow.grow(flipped)
	res.Final = req.Shadow.grow(final)

	return res
}

func (s Shadow) grow(r pathbar.Rect) pathbar.Rect {
	return pathbar.Rect{
		X:      r.X - s.Left,
		Y:      r.Y - s.Top,
		Width:  r.Width + s.Left + s.Right,
		Height: r.Height + s.Top + s.Bottom,
	}
}

type axis struct {
	boundsPos, boundsLen int
	anchorPos, anchorLen int
	popupLen             int

	anchorSide, popupSide int
	delta                 int
	canFlip               bool
}

func (a axis) position(side, popupSide, delta int) int {
	return a.anchorPos + (1+side)*a.anchorLen/2 + delta - (1+popupSide)*a.popupLen/2
}

func (a axis) fits(pos int) bool {
	return pos >= a.boundsPos && pos+a.popupLen <= a.boundsPos+a.boundsLen
}

// choose places the popup on one axis. Flipping mirrors both gravities and the
// offset; it is only kept if the flipped position fits.
func choose(a axis) (int, bool) {
	pos := a.position(a.anchorSide, a.popupSide, a.delta)
	if !a.canFlip || a.fits(pos) {
		return pos, false
	}

	if flipped := a.position(-a.anchorSide, -a.popupSide, -a.delta); a.fits(flipped) {
		return flipped, true
	}

	return pos, false
}
