// Package location shows a path as breadcrumbs, one button per directory.
package location

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v3"
	"github.com/diamondburned/gtkpathbar/internal/humanize"
	"github.com/diamondburned/gtkpathbar/log"
	"github.com/diamondburned/gtkpathbar/pathbar"
	"github.com/diamondburned/gtkpathbar/pathbrowser/components/breadcrumbs"
	"github.com/diamondburned/gtkpathbar/pathbrowser/gtkutils"
)

const (
	CrumbClass   = "breadcrumb"
	CurrentClass = "breadcrumb-current"
	LoadingClass = "anim-breathing"

	// MaxLabelLength is where breadcrumb labels are cut.
	MaxLabelLength = 32
)

type crumb struct {
	*gtk.Button
	Segment Segment

	style *gtk.StyleContext
	class string
}

func newCrumb(seg Segment) *crumb {
	b := gtk.NewButtonWithLabel(humanize.TrimString(seg.Name, MaxLabelLength))
	b.SetName(seg.Name)
	b.SetRelief(gtk.ReliefNone)
	b.SetTooltipText(seg.Path)
	b.Show()

	gtkutils.InjectCSS(b, CrumbClass, "")

	c := &crumb{
		Button:  b,
		Segment: seg,
		style:   b.StyleContext(),
	}
	c.setClass(LoadingClass)

	return c
}

func (c *crumb) setClass(class string) {
	gtkutils.DiffClass(&c.class, class, c.style)
}

// Bar is a path bar of directory breadcrumbs.
type Bar struct {
	*breadcrumbs.PathBar

	// OnNavigate is called with the path of a clicked breadcrumb.
	OnNavigate func(path string)

	loader *Loader
	crumbs []*crumb
	path   string
}

func NewBar(ctx context.Context, opts pathbar.Options) *Bar {
	bar := &Bar{
		PathBar: breadcrumbs.NewPathBar(opts),
		loader:  NewLoader(ctx),
	}

	bar.Overflow.Label = func(w *gtk.Widget) string {
		return humanize.TrimString(w.Name(), MaxLabelLength)
	}

	return bar
}

// Path returns the path last given to SetPath.
func (bar *Bar) Path() string {
	return bar.path
}

// Loader returns the directory loader shared by the breadcrumbs.
func (bar *Bar) Loader() *Loader {
	return bar.loader
}

// SetPath changes the breadcrumbs to lead to path. Breadcrumbs shared with the
// previous path are kept; the others are animated out and in.
func (bar *Bar) SetPath(path string) {
	segments := Split(path)
	old := make([]Segment, len(bar.crumbs))
	for i, c := range bar.crumbs {
		old[i] = c.Segment
	}

	keep := CommonPrefix(old, segments)
	log.Debugf("location: %q keeps %d of %d breadcrumbs", path, keep, len(old))

	for i := len(bar.crumbs) - 1; i >= keep; i-- {
		bar.PathBar.Remove(bar.crumbs[i])
	}
	bar.crumbs = bar.crumbs[:keep]

	for _, seg := range segments[keep:] {
		c := newCrumb(seg)
		c.Connect("clicked", bar.navigator(seg.Path))

		bar.crumbs = append(bar.crumbs, c)
		bar.PathBar.Add(c)
		bar.load(c)
	}

	for i, c := range bar.crumbs {
		if i == len(bar.crumbs)-1 {
			c.style.AddClass(CurrentClass)
		} else {
			c.style.RemoveClass(CurrentClass)
		}
	}

	bar.path = path
}

func (bar *Bar) navigator(path string) func() {
	return func() {
		if bar.OnNavigate != nil {
			bar.OnNavigate(path)
		}
	}
}

func (bar *Bar) load(c *crumb) {
	bar.loader.Load(c.Segment.Path, func(info *Info, err error) {
		c.setClass("")

		if err != nil {
			log.Errorln("Failed to load", c.Segment.Path+":", err)
			c.SetTooltipText(err.Error())
			return
		}

		c.SetTooltipMarkup(info.Tooltip())
	})
}
