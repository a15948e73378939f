package main

import (
	"flag"
	"net/http"
	"os"
	"runtime"

	"github.com/diamondburned/gotk4-handy/pkg/handy"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v3"
	"github.com/diamondburned/gtkpathbar/log"
	"github.com/diamondburned/gtkpathbar/pathbrowser/components/window"
	"github.com/diamondburned/gtkpathbar/pathbrowser/config"

	// Profiler
	_ "net/http/pprof"
)

const AppID = "com.github.diamondburned.gtkpathbar"

var (
	profile bool
	debug   bool
)

func init() {
	flag.BoolVar(&profile, "prof", false, "Enable the profiler")
	flag.BoolVar(&debug, "debug", false, "Log layout and animation passes")
}

func main() {
	flag.Parse()

	settings, err := config.Load()
	if err != nil {
		log.Errorln("Failed to load settings, using defaults:", err)
		settings = config.Default()
	}

	LoadEnvs(settings)
	log.EnableDebug = debug || settings.Debug

	start := window.StartPath(settings)
	if flag.NArg() > 0 {
		start = flag.Arg(0)
	}

	if profile {
		runtime.SetMutexProfileFraction(5)
		runtime.SetBlockProfileRate(5000000) // 5ms
		go http.ListenAndServe("localhost:6969", nil)
	}

	app := gtk.NewApplication(AppID, gio.ApplicationFlagsNone)
	app.Connect("activate", func() {
		handy.Init()

		w, err := window.New(app, settings)
		if err != nil {
			log.Fatalln("Failed to create the window:", err)
		}

		w.Navigate(start)
		w.Show()
	})

	// GTK parses its own arguments; ours were consumed above.
	os.Exit(app.Run([]string{os.Args[0]}))
}
