package breadcrumbs

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v3"
	"github.com/diamondburned/gotk4/pkg/gtk/v3"
	"github.com/diamondburned/gtkpathbar/pathbar"
	"github.com/diamondburned/gtkpathbar/pathbar/placement"
)

// PopoverWidth is the natural width of the overflow menu.
const PopoverWidth = 220

// Overflow is a menu button listing the breadcrumbs that were hidden for lack
// of space. It is only visible while there are any.
type Overflow struct {
	*gtk.MenuButton
	Popover *gtk.Popover

	// Label names a breadcrumb in the menu. It defaults to the widget name.
	Label func(w *gtk.Widget) string

	bar  *PathBar
	list *gtk.Box
}

func newOverflow(bar *PathBar) *Overflow {
	list := gtk.NewBox(gtk.OrientationVertical, 0)
	list.Show()

	p := gtk.NewPopover(nil)
	p.SetSizeRequest(PopoverWidth, -1)
	p.Add(list)

	mb := gtk.NewMenuButton()
	mb.SetPopover(p)
	mb.SetUsePopover(true)
	mb.SetVAlign(gtk.AlignCenter)
	mb.SetNoShowAll(true)

	icon := gtk.NewImageFromIconName("view-more-horizontal-symbolic", int(gtk.IconSizeButton))
	icon.Show()
	mb.Add(icon)

	o := &Overflow{
		MenuButton: mb,
		Popover:    p,
		Label:      func(w *gtk.Widget) string { return w.Name() },
		bar:        bar,
		list:       list,
	}

	p.Connect("show", func() {
		o.fill()
		o.reposition()
	})

	return o
}

// update shows the button when some breadcrumbs overflow.
func (o *Overflow) update() {
	if len(o.bar.Container.OverflowChildren()) == 0 {
		o.Popover.Popdown()
		o.Hide()
		return
	}

	o.Show()
}

func (o *Overflow) fill() {
	for _, w := range o.list.Children() {
		o.list.Remove(w)
	}

	for _, child := range o.bar.Container.OverflowChildren() {
		w := child.(*gtk.Widget)

		b := gtk.NewButtonWithLabel(o.Label(w))
		b.SetRelief(gtk.ReliefNone)
		b.Connect("clicked", func() { w.Activate() })
		b.Show()

		o.list.PackStart(b, false, false, 0)
	}
}

// reposition points the popover at the button, opening it on the side of
// the window that has room for it.
func (o *Overflow) reposition() {
	if !o.Popover.IsVisible() || !o.Realized() {
		return
	}

	top := o.Toplevel()
	x, y, ok := o.TranslateCoordinates(top, 0, 0)
	if !ok {
		return
	}

	btn := o.Allocation()
	win := gtk.BaseWidget(top).Allocation()
	_, natH := o.Popover.PreferredHeight()

	res := placement.MoveToRect(placement.Request{
		Anchor:        pathbar.Rect{X: x, Y: y, Width: btn.Width(), Height: btn.Height()},
		Bounds:        pathbar.Rect{Width: win.Width(), Height: win.Height()},
		Size:          pathbar.Size{Width: PopoverWidth, Height: natH},
		AnchorGravity: placement.SouthWest,
		PopupGravity:  placement.NorthWest,
		Hints:         placement.FlipY | placement.SlideX,
	})

	if res.FlippedY {
		o.Popover.SetPosition(gtk.PosTop)
	} else {
		o.Popover.SetPosition(gtk.PosBottom)
	}

	rect := gdk.NewRectangle(0, 0, btn.Width(), btn.Height())
	o.Popover.SetPointingTo(&rect)
}
