package gtkutils

import (
	"html"

	"github.com/diamondburned/gotk4/pkg/gtk/v3"
)

type Marginator interface {
	SetMarginStart(int)
	SetMarginEnd(int)
	SetMarginTop(int)
	SetMarginBottom(int)
}

var _ Marginator = (*gtk.Box)(nil)

func Margin4(w Marginator, top, bottom, left, right int) {
	w.SetMarginTop(top)
	w.SetMarginBottom(bottom)
	w.SetMarginStart(left)
	w.SetMarginEnd(right)
}

func Margin2(w Marginator, top, left int) {
	Margin4(w, top, top, left, left)
}

func Margin(w Marginator, sz int) {
	Margin2(w, sz, sz)
}

// InjectCSS adds class and a widget-local stylesheet to w. Either may be
// empty. It must be called from the main loop.
func InjectCSS(w gtk.Widgetter, class, CSS string) {
	style := gtk.BaseWidget(w).StyleContext()

	if class != "" {
		style.AddClass(class)
	}

	if CSS != "" {
		AddCSS(style, CSS)
	}
}

func AddCSS(style *gtk.StyleContext, CSS string) {
	css := gtk.NewCSSProvider()
	css.LoadFromData(CSS)
	style.AddProvider(css, uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION))
}

func Escape(str string) string {
	return html.EscapeString(str)
}

func Bold(str string) string {
	return "<b>" + Escape(str) + "</b>"
}

type ClassStyler interface {
	AddClass(string)
	RemoveClass(string)
}

var _ ClassStyler = (*gtk.StyleContext)(nil)

// DiffClass replaces the class stored in old with new.
func DiffClass(old *string, new string, style ClassStyler) {
	if *old == new {
		return
	}

	if *old != "" {
		style.RemoveClass(*old)
	}

	*old = new

	if new == "" {
		return
	}

	style.AddClass(new)
}
