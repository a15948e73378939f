package pathbar

import (
	"reflect"
	"testing"
)

func TestAddStartsHidden(t *testing.T) {
	c, host, widgets := newTestContainer(50)

	r := widgets[0].revealer
	if r == nil {
		t.Fatal("no revealer was created")
	}
	if r.target || r.revealed {
		t.Fatal("new revealer is not hidden")
	}
	if r.duration != RevealerDuration {
		t.Fatalf("transition duration: expected %d, got %d", RevealerDuration, r.duration)
	}
	if host.resizes == 0 {
		t.Fatal("Add did not queue a resize")
	}
	if !c.dirty {
		t.Fatal("Add did not mark the plan dirty")
	}
}

func TestAddTwicePanics(t *testing.T) {
	c, _, widgets := newTestContainer(50)

	defer func() {
		if recover() == nil {
			t.Fatal("adding a child twice did not panic")
		}
	}()

	c.Add(widgets[0])
}

func TestLayoutRevealsFittingChildren(t *testing.T) {
	c, host, widgets := newTestContainer(50, 50, 50)
	settle(t, c, host, 120)

	expect := []string{"child0", "child1"}
	if got := revealedNames(widgets); !reflect.DeepEqual(got, expect) {
		t.Fatalf("revealed children: expected %v, got %v", expect, got)
	}

	if c.allocatedChildrenWidth != 100 {
		t.Fatalf("allocated children width: expected 100, got %d", c.allocatedChildrenWidth)
	}
	if c.previousChildWidth != 50 {
		t.Fatalf("previous child width: expected 50, got %d", c.previousChildWidth)
	}
	if host.box.Width != 100 {
		t.Fatalf("children box width: expected 100, got %d", host.box.Width)
	}
	if c.UnusedWidth() != 20 {
		t.Fatalf("unused width: expected 20, got %d", c.UnusedWidth())
	}

	overflow := c.OverflowChildren()
	if len(overflow) != 1 || overflow[0] != widgets[2] {
		t.Fatalf("overflow children: expected [child2], got %v", overflow)
	}
}

func TestShrinkHidesOverflow(t *testing.T) {
	c, host, widgets := newTestContainer(50, 50, 50)
	settle(t, c, host, 200)

	allocate(c, 120)

	if names := childNames(c.toHide); !reflect.DeepEqual(names, []string{"child2"}) {
		t.Fatalf("to hide: expected [child2], got %v", names)
	}
	if widgets[2].revealer.target {
		t.Fatal("overflowing child was not told to hide")
	}
	if !widgets[2].revealer.classes[ClassOpacityOff] {
		t.Fatal("hiding revealer is missing its style class")
	}

	widgets[2].revealer.finish()

	if len(c.toHide) != 0 {
		t.Fatalf("hide completion did not drain to hide: %v", childNames(c.toHide))
	}
	if len(widgets[2].revealer.classes) != 0 {
		t.Fatal("style classes were not cleared after hiding")
	}
}

func TestWidenWhileHiding(t *testing.T) {
	c, host, widgets := newTestContainer(50, 50, 50)
	settle(t, c, host, 200)

	allocate(c, 120)
	if widgets[2].revealer.target {
		t.Fatal("overflowing child was not told to hide")
	}

	// Widen again before the hide transition completes.
	allocate(c, 200)

	r := widgets[2].revealer
	if !r.target || !r.revealed {
		t.Fatal("child2 was not shown again")
	}
	if len(c.toShow) != 0 || len(c.toHide) != 0 {
		t.Fatalf("pending sets not drained: show %v, hide %v", childNames(c.toShow), childNames(c.toHide))
	}
	if len(r.classes) != 0 {
		t.Fatalf("style classes left on a revealed child: %v", r.classes)
	}

	settle(t, c, host, 200)

	if got := revealedNames(widgets); len(got) != 3 {
		t.Fatalf("expected every child revealed, got %v", got)
	}
	if len(c.toShow) != 0 {
		t.Fatalf("fully revealed child stuck in to show: %v", childNames(c.toShow))
	}
}

func TestShowsWaitForRemovals(t *testing.T) {
	c, host, widgets := newTestContainer(50, 50, 50)
	settle(t, c, host, 200)

	extra := newWidgets(50)[0]
	extra.name = "extra"

	c.Remove(widgets[0])
	c.Add(extra)
	allocate(c, 200)

	if widgets[0].revealer.target {
		t.Fatal("removed child is still targeted")
	}
	if extra.revealer.target {
		t.Fatal("show was issued before the removal finished")
	}
	if names := childNames(c.toShow); !reflect.DeepEqual(names, []string{"extra"}) {
		t.Fatalf("to show: expected [extra], got %v", names)
	}

	widgets[0].revealer.finish()

	if len(host.destroyed) != 1 || host.destroyed[0].child != widgets[0] {
		t.Fatal("removed child was not destroyed after hiding")
	}

	allocate(c, 200)

	if !extra.revealer.target {
		t.Fatal("show was not issued once removals drained")
	}
}

func TestRemove(t *testing.T) {
	c, host, widgets := newTestContainer(50, 50, 50)
	settle(t, c, host, 200)

	c.Remove(widgets[1])

	for _, w := range c.Children() {
		if w == widgets[1] {
			t.Fatal("removed child is still listed")
		}
	}
	if widgets[1].revealer == nil || widgets[1].revealer.destroyed {
		t.Fatal("removed child was destroyed before its hide transition")
	}
	if names := childNames(c.toRemove); !reflect.DeepEqual(names, []string{"child1"}) {
		t.Fatalf("to remove: expected [child1], got %v", names)
	}

	// Removing again, or removing a stranger, does nothing.
	c.Remove(widgets[1])
	c.Remove(&fakeWidget{name: "stranger"})

	if len(c.toRemove) != 1 {
		t.Fatalf("to remove grew to %d", len(c.toRemove))
	}

	settle(t, c, host, 200)

	if len(c.toRemove) != 0 || len(host.destroyed) != 1 {
		t.Fatal("removal did not complete")
	}
	if len(c.Children()) != 2 {
		t.Fatalf("expected 2 children, got %d", len(c.Children()))
	}
}

func TestRemoveHiddenChildDetachesImmediately(t *testing.T) {
	c, host, widgets := newTestContainer(50, 50, 50)
	settle(t, c, host, 120)

	// child2 overflowed and was never revealed.
	c.Remove(widgets[2])
	allocate(c, 120)

	if len(host.destroyed) != 1 || host.destroyed[0].child != widgets[2] {
		t.Fatal("hidden child was not detached synchronously")
	}
	if len(c.toRemove) != 0 {
		t.Fatalf("to remove not drained: %v", childNames(c.toRemove))
	}
}

func TestReAddWhileRemoving(t *testing.T) {
	c, host, widgets := newTestContainer(50, 50)
	settle(t, c, host, 200)

	c.Remove(widgets[0])
	c.Add(widgets[0])

	if len(c.toRemove) != 0 {
		t.Fatal("re-added child is still queued for removal")
	}
	if len(host.destroyed) != 1 {
		t.Fatal("old revealer of the re-added child was not destroyed")
	}

	settle(t, c, host, 200)

	if len(c.Children()) != 2 || !widgets[0].revealer.revealed {
		t.Fatal("re-added child was not revealed again")
	}
}

func TestRemoveAll(t *testing.T) {
	c, host, widgets := newTestContainer(50, 50, 50)
	settle(t, c, host, 200)

	allocate(c, 60)
	c.Remove(widgets[0])

	if len(c.toHide) == 0 || len(c.toRemove) == 0 {
		t.Fatal("test needs pending hides and removals")
	}

	c.RemoveAll()

	if len(c.Children()) != 0 {
		t.Fatal("children left after RemoveAll")
	}
	if len(c.toShow)+len(c.toHide)+len(c.toRemove) != 0 {
		t.Fatal("pending sets left after RemoveAll")
	}
	if len(host.destroyed) != 3 {
		t.Fatalf("expected 3 destroyed revealers, got %d", len(host.destroyed))
	}
}

func TestSetInvertedIdempotent(t *testing.T) {
	c, _, _ := newTestContainer(50)

	var notified int
	c.ConnectInvertedChanged(func(bool) { notified++ })

	c.SetInverted(true)
	c.SetInverted(true)

	if notified != 1 {
		t.Fatalf("expected 1 notification, got %d", notified)
	}
	if !c.Inverted() {
		t.Fatal("container is not inverted")
	}

	c.SetInverted(false)

	if notified != 2 {
		t.Fatalf("expected 2 notifications, got %d", notified)
	}
}

func TestPreferredSize(t *testing.T) {
	c, _, widgets := newTestContainer(30, 50, 70)
	widgets[2].height = 40

	min, nat := c.PreferredWidth()
	if min != 30 || nat != 150 {
		t.Fatalf("preferred width: expected (30, 150), got (%d, %d)", min, nat)
	}

	c.SetInverted(true)

	min, nat = c.PreferredWidthForHeight(10)
	if min != 70 || nat != 150 {
		t.Fatalf("inverted preferred width: expected (70, 150), got (%d, %d)", min, nat)
	}

	widgets[2].hidden = true

	min, nat = c.PreferredWidth()
	if min != 50 || nat != 80 {
		t.Fatalf("preferred width without child2: expected (50, 80), got (%d, %d)", min, nat)
	}

	minH, natH := c.PreferredHeight()
	if minH != 20 || natH != 20 {
		t.Fatalf("preferred height: expected (20, 20), got (%d, %d)", minH, natH)
	}

	widgets[2].hidden = false

	if minH, _ = c.PreferredHeight(); minH != 40 {
		t.Fatalf("preferred height: expected 40, got %d", minH)
	}
}

func TestPreferredSizeForRequisition(t *testing.T) {
	c, host, _ := newTestContainer(50, 50, 50)
	settle(t, c, host, 120)

	// Measuring stops after child2, the first one not headed toward revealed.
	min, nat, overflow := c.PreferredSizeForRequisition(Size{Width: 120})
	if min.Width != 100 || nat.Width != 100 || overflow {
		t.Fatalf("expected 100 without overflow, got %d/%d %v", min.Width, nat.Width, overflow)
	}

	_, _, overflow = c.PreferredSizeForRequisition(Size{Width: 90})
	if !overflow {
		t.Fatal("expected overflow at 90px")
	}

	c.SetInverted(true)

	// Inverted, child2 comes first and is hidden, so it is the only one
	// measured.
	min, _, _ = c.PreferredSizeForRequisition(Size{Width: 120})
	if min.Width != 0 {
		t.Fatalf("expected 0, got %d", min.Width)
	}
}

func TestCompletionSlotIsOverwritten(t *testing.T) {
	c, _, _ := newTestContainer(50)
	ch := c.children[0]

	var first, second int
	c.arm(ch, func(*Container, *child) { first++ })
	c.arm(ch, func(*Container, *child) { second++ })

	c.revealedChanged(ch)
	c.revealedChanged(ch)

	if first != 0 || second != 1 {
		t.Fatalf("expected only the last callback to fire once, got %d and %d", first, second)
	}
}

func TestAdaptToSize(t *testing.T) {
	c, _, widgets := newTestContainer(50, 50, 50)

	c.AdaptToSize(Size{Width: 100, Height: 20})

	if !widgets[0].revealer.target || !widgets[1].revealer.target {
		t.Fatal("fitting children were not told to reveal")
	}
	if widgets[2].revealer.target {
		t.Fatal("overflowing child was told to reveal")
	}
}

func TestRealize(t *testing.T) {
	c, host, _ := newTestContainer(50, 50, 50)
	host.realized = true
	settle(t, c, host, 120)

	c.Realize(nil)

	if len(host.surfaces) != 2 {
		t.Fatalf("expected 2 surfaces, got %d", len(host.surfaces))
	}

	view, bin := host.surfaces[0], host.surfaces[1]
	if bin.parent != view {
		t.Fatal("bin surface is not inside the view surface")
	}
	if !view.shown || !bin.shown {
		t.Fatal("surfaces were not shown")
	}
	if bin.rect.Width != 100 {
		t.Fatalf("bin surface width: expected 100, got %d", bin.rect.Width)
	}

	c.SizeAllocate(Rect{X: 5, Y: 6, Width: 120, Height: 20})

	if view.rect != (Rect{X: 5, Y: 6, Width: 120, Height: 20}) {
		t.Fatalf("view surface was not moved: %+v", view.rect)
	}
	if bin.rect.X != 0 {
		t.Fatalf("bin surface scrolled without an animation: %+v", bin.rect)
	}

	c.Unrealize()

	if !view.destroyed || !bin.destroyed {
		t.Fatal("surfaces were not destroyed")
	}
}
