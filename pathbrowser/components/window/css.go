package window

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v3"
	"github.com/diamondburned/gotk4/pkg/gtk/v3"
	"github.com/diamondburned/gtkpathbar/log"
)

// CSS is the stock stylesheet.
const CSS = `
	.breadcrumb {
		padding-left:  4px;
		padding-right: 4px;
	}
	.breadcrumb-current label {
		font-weight: bold;
	}
`

func loadCustomCSS(s *gdk.Screen, custom string) {
	stock := gtk.NewCSSProvider()
	if err := stock.LoadFromData(CSS); err != nil {
		log.Fatalln("Failed to parse stock CSS:", err)
	}

	gtk.StyleContextAddProviderForScreen(s, stock, uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION))

	if custom == "" {
		return
	}

	user := gtk.NewCSSProvider()
	if err := user.LoadFromData(custom); err != nil {
		log.Errorln("Failed to parse custom CSS:", err)
		return
	}

	gtk.StyleContextAddProviderForScreen(s, user, uint(gtk.STYLE_PROVIDER_PRIORITY_USER))
}
