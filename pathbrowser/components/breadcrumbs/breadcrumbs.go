// Package breadcrumbs binds the path bar container to GTK.
package breadcrumbs

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v3"
	"github.com/diamondburned/gtkpathbar/log"
	"github.com/diamondburned/gtkpathbar/pathbar"
)

// PathBar is a horizontal bar of breadcrumbs. Children that do not fit are
// hidden from the end, or from the start when inverted, and listed in the
// overflow menu instead.
type PathBar struct {
	*gtk.Layout
	Container *pathbar.Container

	Overflow *Overflow

	box  *gtk.Box
	host *host

	// children maps the widgets given to Add to the handles known to the
	// container.
	children map[gtk.Widgetter]*gtk.Widget
}

// NewPathBar creates an empty path bar.
func NewPathBar(opts pathbar.Options) *PathBar {
	layout := gtk.NewLayout(nil, nil)
	layout.SetHExpand(true)
	layout.SetVAlign(gtk.AlignCenter)

	box := gtk.NewBox(gtk.OrientationHorizontal, 0)
	box.Show()
	layout.Put(box, 0, 0)

	bar := &PathBar{
		Layout:   layout,
		box:      box,
		children: map[gtk.Widgetter]*gtk.Widget{},
	}

	bar.host = &host{bar: bar}
	bar.Container = pathbar.New(bar.host, opts)
	bar.Overflow = newOverflow(bar)

	bar.Container.ConnectMoved(func(m pathbar.Moved) {
		log.Debugf("breadcrumbs: moved to %+v, flipped %v", m.Rect, m.Flipped)
		bar.Overflow.reposition()
	})

	layout.ConnectAfter("size-allocate", func() {
		a := layout.Allocation()
		bar.Container.SizeAllocate(pathbar.Rect{
			X:      a.X(),
			Y:      a.Y(),
			Width:  a.Width(),
			Height: a.Height(),
		})
	})

	// Breadcrumbs must go through PathBar.Add to get a revealer. The box is
	// placed with Put, which does not emit add.
	layout.Connect("add", func(w gtk.Widgetter) {
		if gtk.BaseWidget(w).Native() != box.Native() {
			log.Panicf("breadcrumbs: %T added to the layout directly, use PathBar.Add", w)
		}
	})

	layout.Connect("realize", func() { bar.Container.Realize(nil) })
	layout.Connect("unrealize", bar.Container.Unrealize)

	return bar
}

// Add appends a breadcrumb. Adding the same widget twice panics.
func (bar *PathBar) Add(w gtk.Widgetter) {
	if _, ok := bar.children[w]; ok {
		log.Panicf("breadcrumbs: %T is already in the path bar", w)
	}

	base := gtk.BaseWidget(w)
	bar.children[w] = base
	bar.Container.Add(base)
}

// Remove takes a breadcrumb out, animating it away.
func (bar *PathBar) Remove(w gtk.Widgetter) {
	base, ok := bar.children[w]
	if !ok {
		return
	}

	delete(bar.children, w)
	bar.Container.Remove(base)
}

// RemoveAll drops every breadcrumb without animating.
func (bar *PathBar) RemoveAll() {
	bar.children = map[gtk.Widgetter]*gtk.Widget{}
	bar.Container.RemoveAll()
}

// SetInverted sets the side breadcrumbs overflow from. Inverted, the last
// breadcrumbs are kept.
func (bar *PathBar) SetInverted(inverted bool) {
	bar.Container.SetInverted(inverted)
}

func (bar *PathBar) Inverted() bool {
	return bar.Container.Inverted()
}

// updateRequest propagates the container's size to GTK. The layout has no
// size of its own.
func (bar *PathBar) updateRequest() {
	minW, _ := bar.Container.PreferredWidth()
	_, natH := bar.Container.PreferredHeight()

	bar.Layout.SetSizeRequest(minW, natH)
	bar.Layout.QueueResize()

	bar.Overflow.update()
}
