package animations

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gdk/v3"
	"github.com/diamondburned/gotk4/pkg/gtk/v3"
	"github.com/diamondburned/gtkpathbar/pathbar"
	"github.com/pkg/errors"
)

// CSS fades breadcrumbs in and out alongside their revealer, and breathes the
// ones that are still loading. It is formatted with the reveal duration.
const CSS = `
	@keyframes pathbar-fade-in {
		from { opacity: 0; }
		to   { opacity: 1; }
	}
	@keyframes pathbar-fade-out {
		from { opacity: 1; }
		to   { opacity: 0; }
	}
	revealer.%[1]s {
		animation: pathbar-fade-in %[3]dms ease-out;
	}
	revealer.%[2]s {
		animation: pathbar-fade-out %[3]dms ease-in;
		opacity: 0;
	}

	@keyframes breathing {
		0%% {   opacity: 0.66; }
		100%% { opacity: 0.12; }
	}
	.anim-breathing label {
		animation: breathing 800ms infinite alternate;
	}
`

// RenderCSS returns the stylesheet for the given reveal duration in ms.
func RenderCSS(revealMs uint) string {
	return fmt.Sprintf(CSS, pathbar.ClassOpacityOn, pathbar.ClassOpacityOff, revealMs)
}

func LoadCSS(s *gdk.Screen, revealMs uint) error {
	css := gtk.NewCSSProvider()

	if err := css.LoadFromData(RenderCSS(revealMs)); err != nil {
		return errors.Wrap(err, "Failed to parse CSS")
	}

	gtk.StyleContextAddProviderForScreen(s, css, uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION))
	return nil
}
