package window

import (
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gtk/v3"
	"github.com/diamondburned/gtkpathbar/log"
	"github.com/diamondburned/gtkpathbar/pathbrowser/components/location"
	"github.com/diamondburned/gtkpathbar/pathbrowser/gtkutils"
)

// Listing shows the subdirectories of the current path.
type Listing struct {
	*gtk.ScrolledWindow
	List *gtk.ListBox

	// OnActivate is called with the path of an activated row.
	OnActivate func(path string)

	loader *location.Loader
	rows   []*gtk.ListBoxRow
	paths  []string
	// serial drops the results of loads that were superseded.
	serial uint64
}

func NewListing(loader *location.Loader) *Listing {
	list := gtk.NewListBox()
	list.SetSelectionMode(gtk.SelectionNone)
	list.SetActivateOnSingleClick(true)
	list.Show()

	scroll := gtk.NewScrolledWindow(nil, nil)
	scroll.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)
	scroll.Add(list)
	scroll.Show()

	l := &Listing{
		ScrolledWindow: scroll,
		List:           list,
		loader:         loader,
	}

	list.Connect("row-activated", func(_ *gtk.ListBox, r *gtk.ListBoxRow) {
		i := r.Index()
		if i < 0 || i >= len(l.paths) || l.paths[i] == "" {
			return
		}
		if l.OnActivate != nil {
			l.OnActivate(l.paths[i])
		}
	})

	return l
}

// Load lists path in the background and calls done once the rows are in.
func (l *Listing) Load(path string, done func()) {
	l.serial++
	serial := l.serial

	l.loader.Load(path, func(info *location.Info, err error) {
		if serial != l.serial {
			return
		}

		l.clear()

		if err != nil {
			log.Errorln("Failed to list", path+":", err)
			l.addRow("", err.Error())
		} else {
			for _, dir := range info.Dirs {
				l.addRow(filepath.Join(path, dir), dir)
			}
			if len(info.Dirs) == 0 {
				l.addRow("", info.Summary())
			}
		}

		done()
	})
}

func (l *Listing) clear() {
	for _, r := range l.rows {
		l.List.Remove(r)
	}
	l.rows = nil
	l.paths = nil
}

// addRow adds a row navigating to path. Rows without a path are inert.
func (l *Listing) addRow(path, text string) {
	label := gtk.NewLabel(text)
	label.SetXAlign(0)
	gtkutils.Margin2(label, 6, 12)

	r := gtk.NewListBoxRow()
	r.SetActivatable(path != "")
	r.Add(label)
	r.ShowAll()

	l.List.Add(r)
	l.rows = append(l.rows, r)
	l.paths = append(l.paths, path)
}
