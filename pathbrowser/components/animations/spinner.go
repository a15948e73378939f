package animations

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v3"
)

// NewSizedSpinner returns a centered spinner that only spins while mapped.
func NewSizedSpinner(sz int) gtk.Widgetter {
	box := gtk.NewBox(gtk.OrientationHorizontal, 0)
	box.SetHExpand(true)
	box.SetVExpand(true)
	box.SetVAlign(gtk.AlignCenter)

	s := gtk.NewSpinner()
	s.SetHExpand(true)
	s.SetVAlign(gtk.AlignCenter)
	s.SetHAlign(gtk.AlignCenter)
	s.SetSizeRequest(sz, sz)

	box.Add(s)
	box.ConnectMap(func() { s.Start() })
	box.ConnectUnmap(func() { s.Stop() })
	box.ShowAll()

	return box
}
