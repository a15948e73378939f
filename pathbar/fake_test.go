package pathbar

import (
	"fmt"
	"sort"
	"testing"
	"time"
)

type fakeWidget struct {
	name   string
	min    int
	nat    int
	height int
	hidden bool

	revealer *fakeRevealer
}

func (w *fakeWidget) PreferredWidth() (int, int)  { return w.min, w.nat }
func (w *fakeWidget) PreferredHeight() (int, int) { return w.height, w.height }
func (w *fakeWidget) IsVisible() bool             { return !w.hidden }

// ChildVisible mirrors GtkRevealer, which hides its child once fully hidden.
func (w *fakeWidget) ChildVisible() bool {
	return w.revealer != nil && (w.revealer.revealed || w.revealer.target)
}

func (w *fakeWidget) String() string { return w.name }

// fakeRevealer completes transitions synchronously when the duration is 0,
// and otherwise only when finish is called.
type fakeRevealer struct {
	child     *fakeWidget
	changed   func()
	target    bool
	revealed  bool
	duration  uint
	destroyed bool
	classes   map[string]bool
	changes   int
}

func (r *fakeRevealer) RevealChild() bool            { return r.target }
func (r *fakeRevealer) ChildRevealed() bool          { return r.revealed }
func (r *fakeRevealer) TransitionDuration() uint     { return r.duration }
func (r *fakeRevealer) SetTransitionDuration(d uint) { r.duration = d }

func (r *fakeRevealer) SetRevealChild(reveal bool) {
	r.target = reveal
	if r.duration == 0 {
		r.finish()
	}
}

func (r *fakeRevealer) PreferredWidth() (int, int) {
	if r.revealed || r.target {
		return r.child.PreferredWidth()
	}
	return 0, 0
}

func (r *fakeRevealer) AddClass(class string)    { r.classes[class] = true }
func (r *fakeRevealer) RemoveClass(class string) { delete(r.classes, class) }

// finish completes the running transition, if any.
func (r *fakeRevealer) finish() bool {
	if r.destroyed || r.revealed == r.target {
		return false
	}
	r.revealed = r.target
	r.changes++
	r.changed()
	return true
}

type fakeSurface struct {
	parent    *fakeSurface
	rect      Rect
	moves     int
	shown     bool
	destroyed bool
}

func (s *fakeSurface) MoveResize(r Rect) { s.rect = r; s.moves++ }
func (s *fakeSurface) Show()             { s.shown = true }
func (s *fakeSurface) Destroy()          { s.destroyed = true }

type fakeClock struct {
	now       int64
	nextID    uint
	callbacks map[uint]func(int64) bool
}

func (c *fakeClock) FrameTime() int64 { return c.now }

func (c *fakeClock) AddTickCallback(fn func(int64) bool) uint {
	c.nextID++
	c.callbacks[c.nextID] = fn
	return c.nextID
}

func (c *fakeClock) RemoveTickCallback(id uint) {
	delete(c.callbacks, id)
}

// frame advances the clock by d and runs every tick callback once.
func (c *fakeClock) frame(d time.Duration) {
	c.now += d.Microseconds()

	ids := make([]uint, 0, len(c.callbacks))
	for id := range c.callbacks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		fn, ok := c.callbacks[id]
		if !ok {
			continue
		}
		if !fn(c.now) {
			delete(c.callbacks, id)
		}
	}
}

type fakeHost struct {
	revealers []*fakeRevealer
	destroyed []*fakeRevealer
	surfaces  []*fakeSurface
	box       Rect
	resizes   int
	mapped    bool
	realized  bool
	clock     *fakeClock
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		clock: &fakeClock{
			now:       1000000,
			callbacks: map[uint]func(int64) bool{},
		},
	}
}

func (h *fakeHost) NewRevealer(child Widget, changed func()) Revealer {
	w := child.(*fakeWidget)
	r := &fakeRevealer{
		child:    w,
		changed:  changed,
		duration: 250,
		classes:  map[string]bool{},
	}
	w.revealer = r
	h.revealers = append(h.revealers, r)
	return r
}

func (h *fakeHost) DestroyRevealer(r Revealer) {
	fr := r.(*fakeRevealer)
	if fr.destroyed {
		panic("revealer destroyed twice")
	}
	fr.destroyed = true
	fr.child.revealer = nil
	h.destroyed = append(h.destroyed, fr)
}

func (h *fakeHost) AllocateBox(r Rect)     { h.box = r }
func (h *fakeHost) QueueResize()           { h.resizes++ }
func (h *fakeHost) Mapped() bool           { return h.mapped }
func (h *fakeHost) Realized() bool         { return h.realized }
func (h *fakeHost) FrameClock() FrameClock { return h.clock }

func (h *fakeHost) NewSurface(parent Surface, r Rect) Surface {
	s := &fakeSurface{rect: r}
	if parent != nil {
		s.parent = parent.(*fakeSurface)
	}
	h.surfaces = append(h.surfaces, s)
	return s
}

// finishAll completes every running transition once. It returns true if any
// revealer changed.
func (h *fakeHost) finishAll() bool {
	var changed bool
	for _, r := range h.revealers {
		if r.finish() {
			changed = true
		}
	}
	return changed
}

func newWidgets(widths ...int) []*fakeWidget {
	widgets := make([]*fakeWidget, len(widths))
	for i, w := range widths {
		widgets[i] = &fakeWidget{
			name:   fmt.Sprintf("child%d", i),
			min:    w,
			nat:    w,
			height: 20,
		}
	}
	return widgets
}

func newTestContainer(widths ...int) (*Container, *fakeHost, []*fakeWidget) {
	host := newFakeHost()
	c := New(host, DefaultOptions())

	widgets := newWidgets(widths...)
	for _, w := range widgets {
		c.Add(w)
	}

	return c, host, widgets
}

func allocate(c *Container, width int) {
	c.SizeAllocate(Rect{Width: width, Height: 20})
}

// settle plays the main loop: transitions complete and the container is
// reallocated until nothing changes anymore.
func settle(t *testing.T, c *Container, host *fakeHost, width int) {
	t.Helper()

	for i := 0; i < 50; i++ {
		allocate(c, width)
		if !host.finishAll() {
			allocate(c, width)
			return
		}
	}

	t.Fatal("container did not settle after 50 passes")
}

func revealedNames(widgets []*fakeWidget) []string {
	var names []string
	for _, w := range widgets {
		if w.revealer != nil && w.revealer.revealed {
			names = append(names, w.name)
		}
	}
	return names
}

func childNames(children []*child) []string {
	names := make([]string, len(children))
	for i, ch := range children {
		names[i] = ch.widget.(*fakeWidget).name
	}
	return names
}
