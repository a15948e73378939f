package breadcrumbs

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v3"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v3"
	"github.com/diamondburned/gtkpathbar/log"
	"github.com/diamondburned/gtkpathbar/pathbar"
)

// host drives a PathBar's widgets on behalf of the container.
type host struct {
	bar *PathBar

	resizeQueued bool
}

var _ pathbar.Host = (*host)(nil)

// revealer wraps every child of the path bar.
type revealer struct {
	*gtk.Revealer
	child *gtk.Widget
	style *gtk.StyleContext
}

var _ pathbar.StyleClasser = (*revealer)(nil)

func (r *revealer) AddClass(class string)    { r.style.AddClass(class) }
func (r *revealer) RemoveClass(class string) { r.style.RemoveClass(class) }

func (h *host) NewRevealer(child pathbar.Widget, changed func()) pathbar.Revealer {
	w := child.(*gtk.Widget)

	r := gtk.NewRevealer()
	r.SetTransitionType(gtk.RevealerTransitionTypeSlideRight)
	r.Add(w)
	r.Connect("notify::child-revealed", changed)
	r.Show()

	h.bar.box.PackStart(r, false, false, 0)

	return &revealer{
		Revealer: r,
		child:    w,
		style:    r.StyleContext(),
	}
}

// DestroyRevealer takes the child out before destroying the revealer, so it
// can be added again later.
func (h *host) DestroyRevealer(r pathbar.Revealer) {
	rv := r.(*revealer)
	rv.Revealer.Remove(rv.child)
	h.bar.box.Remove(rv.Revealer)
	rv.Destroy()
}

func (h *host) AllocateBox(r pathbar.Rect) {
	h.bar.box.SetSizeRequest(r.Width, r.Height)
	h.bar.Layout.SetSize(uint(r.Width), uint(r.Height))
}

// QueueResize defers to the main loop, since it is called from within size
// allocation.
func (h *host) QueueResize() {
	if h.resizeQueued {
		return
	}
	h.resizeQueued = true

	glib.IdleAdd(func() {
		h.resizeQueued = false
		h.bar.updateRequest()
	})
}

func (h *host) Mapped() bool   { return h.bar.Layout.Mapped() }
func (h *host) Realized() bool { return h.bar.Layout.Realized() }

func (h *host) FrameClock() pathbar.FrameClock {
	return frameClock{h.bar.Layout}
}

// NewSurface returns the layout itself as the view, and the children box
// inside of it as the scrolled bin. Both are owned by GTK.
func (h *host) NewSurface(parent pathbar.Surface, r pathbar.Rect) pathbar.Surface {
	if parent == nil {
		return viewSurface{h.bar}
	}

	log.Debugf("breadcrumbs: bin surface %+v", r)
	return binSurface{h.bar}
}

type frameClock struct {
	layout *gtk.Layout
}

func (c frameClock) FrameTime() int64 {
	return gdk.BaseFrameClock(c.layout.FrameClock()).FrameTime()
}

func (c frameClock) AddTickCallback(fn func(frameTime int64) bool) uint {
	return c.layout.AddTickCallback(func(_ gtk.Widgetter, fc gdk.FrameClocker) bool {
		return fn(gdk.BaseFrameClock(fc).FrameTime())
	})
}

func (c frameClock) RemoveTickCallback(id uint) {
	c.layout.RemoveTickCallback(id)
}

type viewSurface struct {
	bar *PathBar
}

// MoveResize does nothing: GTK already moved the layout window by the time
// the container is allocated.
func (s viewSurface) MoveResize(pathbar.Rect) {}
func (s viewSurface) Show()                   { s.bar.Layout.Show() }
func (s viewSurface) Destroy()                {}

type binSurface struct {
	bar *PathBar
}

func (s binSurface) MoveResize(r pathbar.Rect) {
	s.bar.Layout.Move(s.bar.box, r.X, r.Y)
}

func (s binSurface) Show()    { s.bar.box.Show() }
func (s binSurface) Destroy() {}
