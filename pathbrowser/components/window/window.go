package window

import (
	"context"
	"os"
	"path/filepath"

	"github.com/diamondburned/gotk4-handy/pkg/handy"
	"github.com/diamondburned/gotk4/pkg/gdk/v3"
	"github.com/diamondburned/gotk4/pkg/gtk/v3"
	"github.com/diamondburned/gtkpathbar/log"
	"github.com/diamondburned/gtkpathbar/pathbrowser/components/animations"
	"github.com/diamondburned/gtkpathbar/pathbrowser/components/location"
	"github.com/diamondburned/gtkpathbar/pathbrowser/config"
	"github.com/diamondburned/gtkpathbar/pathbrowser/gtkutils"
	"github.com/pkg/errors"
)

const (
	Title = "Path Bar"

	SwitchFade = 200 // ms to fade between the listing and the spinner.
)

type Container struct {
	*handy.ApplicationWindow
	App *gtk.Application

	Screen *gdk.Screen

	Header   *handy.HeaderBar
	Location *location.Bar
	Invert   *gtk.ToggleButton
	Open     *gtk.Button

	main    *gtk.Stack
	listing *Listing

	settings *config.Settings
	cancel   context.CancelFunc
}

func newStack() *gtk.Stack {
	s := gtk.NewStack()
	s.SetTransitionDuration(SwitchFade)
	s.SetTransitionType(gtk.StackTransitionTypeCrossfade)
	s.Show()
	return s
}

// New creates the browser window. It must be called from the main loop.
func New(app *gtk.Application, s *config.Settings) (*Container, error) {
	ctx, cancel := context.WithCancel(context.Background())

	w := &Container{
		App:      app,
		settings: s,
		cancel:   cancel,
	}

	win := handy.NewApplicationWindow()
	win.SetApplication(app)
	win.SetDefaultSize(720, 480)
	win.Connect("destroy", func() {
		w.cancel()
		app.Quit()
	})
	w.ApplicationWindow = win

	w.Screen = gdk.DisplayGetDefault().DefaultScreen()

	if err := animations.LoadCSS(w.Screen, s.RevealerDuration); err != nil {
		return nil, errors.Wrap(err, "Failed to load animations CSS")
	}

	loadCustomCSS(w.Screen, s.CustomCSS)

	w.Location = location.NewBar(ctx, s.Options())
	w.Location.OnNavigate = w.Navigate

	w.Invert = gtk.NewToggleButton()
	w.Invert.Add(gtk.NewImageFromIconName("object-flip-horizontal-symbolic", int(gtk.IconSizeButton)))
	w.Invert.SetTooltipText("Keep the last folders when the path does not fit")
	w.Invert.Connect("toggled", func() {
		w.Location.SetInverted(w.Invert.Active())
	})
	w.Location.Container.ConnectInvertedChanged(func(inverted bool) {
		if w.Invert.Active() != inverted {
			w.Invert.SetActive(inverted)
		}
	})

	w.Open = gtk.NewButtonFromIconName("folder-open-symbolic", int(gtk.IconSizeButton))
	w.Open.SetTooltipText("Open in the file manager")
	w.Open.Connect("clicked", func() {
		if err := location.Open(w.Location.Path()); err != nil {
			log.Errorln(err)
		}
	})

	crumbs := gtk.NewBox(gtk.OrientationHorizontal, 0)
	crumbs.SetHExpand(true)
	crumbs.PackStart(w.Location.Overflow, false, false, 0)
	crumbs.PackStart(w.Location, true, true, 0)
	gtkutils.Margin2(crumbs, 0, 6)

	w.Header = handy.NewHeaderBar()
	w.Header.SetShowCloseButton(true)
	w.Header.SetCustomTitle(crumbs)
	w.Header.PackStart(w.Invert)
	w.Header.PackEnd(w.Open)
	w.Header.ShowAll()

	w.listing = NewListing(w.Location.Loader())
	w.listing.OnActivate = w.Navigate

	w.main = newStack()
	w.main.AddNamed(animations.NewSizedSpinner(48), "loading")
	w.main.AddNamed(w.listing, "listing")

	body := gtk.NewBox(gtk.OrientationVertical, 0)
	body.PackStart(w.Header, false, false, 0)
	body.PackEnd(w.main, true, true, 0)
	body.Show()
	win.Add(body)

	return w, nil
}

// Navigate moves the browser to path.
func (w *Container) Navigate(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	w.SetTitle(filepath.Base(path) + " - " + Title)
	w.Location.SetPath(path)

	w.main.SetVisibleChildName("loading")
	w.listing.Load(path, func() {
		w.main.SetVisibleChildName("listing")
	})
}

// StartPath returns the configured start path, or the home directory.
func StartPath(s *config.Settings) string {
	if s.StartPath != "" {
		return s.StartPath
	}

	if home, err := os.UserHomeDir(); err == nil {
		return home
	}

	return string(filepath.Separator)
}
