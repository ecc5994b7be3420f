// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"reflect"
	"testing"

	"samerion.com/fluid/f32"
	"samerion.com/fluid/io/event"
)

// keyRow builds a focus fixture over three focusable widgets.
func keyRow() (*fixture, *FocusChain, [3]*key) {
	keys := [3]*key{new(key), new(key), new(key)}
	p := new(panel).
		add(keys[0], f32.Rect(0, 0, 40, 40)).
		add(keys[1], f32.Rect(50, 0, 90, 40)).
		add(keys[2], f32.Rect(100, 0, 140, 40))
	fc := NewFocusChain()
	return newFixture(p, fc), fc, keys
}

func wantFocus(t *testing.T, fc *FocusChain, want Focusable) {
	t.Helper()
	if got := fc.Focused(); got != want {
		t.Errorf("focused %v, want %v", got, want)
	}
}

func TestOrderedFocusForward(t *testing.T) {
	fx, fc, keys := keyRow()
	fx.frame()

	// From nothing, the first focusable takes focus.
	fc.FocusNext()
	fx.frame()
	wantFocus(t, fc, keys[0])

	fc.FocusNext()
	fx.frame()
	wantFocus(t, fc, keys[1])

	fc.FocusNext()
	fx.frame()
	wantFocus(t, fc, keys[2])

	// Off the end, traversal wraps to the start.
	fc.FocusNext()
	fx.frame()
	wantFocus(t, fc, keys[0])
}

func TestOrderedFocusBackward(t *testing.T) {
	fx, fc, keys := keyRow()
	fx.frame()

	fc.FocusPrevious()
	fx.frame()
	wantFocus(t, fc, keys[2])

	fc.FocusPrevious()
	fx.frame()
	wantFocus(t, fc, keys[1])

	fc.SetFocus(keys[0])
	fc.FocusPrevious()
	fx.frame()
	wantFocus(t, fc, keys[2])
}

func TestOrderedFocusNoWrap(t *testing.T) {
	fx, fc, keys := keyRow()
	fc.Wrap = false
	fx.frame()

	fc.SetFocus(keys[2])
	fc.FocusNext()
	fx.frame()
	// No neighbor and no wrapping: focus stays put.
	wantFocus(t, fc, keys[2])

	fc.SetFocus(keys[0])
	fc.FocusPrevious()
	fx.frame()
	wantFocus(t, fc, keys[0])
}

func TestOrderedFocusStaleTarget(t *testing.T) {
	fx, fc, keys := keyRow()
	fx.frame()

	// Focus a node, then point focus at something no longer in the
	// tree: the next move recovers from the end of the traversal.
	fc.SetFocus(keys[1])
	fc.SetFocus(new(key))
	fc.FocusNext()
	fx.frame()
	wantFocus(t, fc, keys[0])
}

func TestFocusEvents(t *testing.T) {
	fx, fc, keys := keyRow()
	fx.frame()

	fc.EmitEvent(event.Pressed(event.KeyTab.Code()))
	fx.frame()
	wantFocus(t, fc, keys[0])

	fc.EmitEvent(event.Pressed(event.KeyTab.Code()))
	fx.frame()
	wantFocus(t, fc, keys[1])

	fc.EmitEvent(event.Held(event.KeyShift.Code()))
	fc.EmitEvent(event.Pressed(event.KeyTab.Code()))
	fx.frame()
	wantFocus(t, fc, keys[0])
}

func TestFocusActionRouting(t *testing.T) {
	fx, fc, keys := keyRow()
	keys[0].consumeFocus = true
	fx.frame()

	fc.SetFocus(keys[0])
	fc.EmitEvent(event.Pressed(event.KeyEnter.Code()))
	fx.frame()
	if want := []string{"submit+"}; !reflect.DeepEqual(keys[0].focusLog, want) {
		t.Errorf("focused node received %v, want %v", keys[0].focusLog, want)
	}
}

func TestFocusedNodeConsumesMoves(t *testing.T) {
	fx, fc, keys := keyRow()
	keys[0].consumeFocus = true
	fx.frame()

	// A node consuming focusNext keeps focus for itself.
	fc.SetFocus(keys[0])
	fc.EmitEvent(event.Pressed(event.KeyTab.Code()))
	fx.frame()
	wantFocus(t, fc, keys[0])
}

func TestFocusIdle(t *testing.T) {
	fx, fc, keys := keyRow()
	fx.frame()

	fc.SetFocus(keys[1])
	fx.frame()
	fx.frame()
	if keys[1].focusIdles == 0 {
		t.Error("focused node never received FocusIdle")
	}
	if keys[0].focusIdles != 0 {
		t.Error("unfocused node received FocusIdle")
	}
}

func TestChainLocalFocusHandler(t *testing.T) {
	fx, fc, _ := keyRow()
	fired := 0
	fc.On(event.Cancel, func(active bool) bool {
		if active {
			fired++
		}
		return active
	})
	fx.frame()

	fc.EmitEvent(event.Pressed(event.KeyEscape.Code()))
	fx.frame()
	if fired != 1 {
		t.Errorf("handler fired %d times, want 1", fired)
	}
}

func TestFocusBox(t *testing.T) {
	fx, fc, keys := keyRow()
	if _, ok := fc.FocusBox(); ok {
		t.Fatal("focus box present before any frame")
	}

	fc.SetFocus(keys[1])
	fx.frame()
	box, ok := fc.FocusBox()
	if !ok {
		t.Fatal("no focus box after the focused node drew")
	}
	if want := f32.Rect(50, 0, 90, 40); box != want {
		t.Errorf("focus box %v, want %v", box, want)
	}
}

func TestPositionalFocus(t *testing.T) {
	a, b, c := new(key), new(key), new(key)
	p := new(panel).
		add(a, f32.Rect(0, 0, 40, 40)).
		add(b, f32.Rect(100, 0, 140, 40)).
		add(c, f32.Rect(0, 100, 40, 140))
	fc := NewFocusChain()
	fx := newFixture(p, fc)

	fc.SetFocus(a)
	fx.frame()

	fc.FocusDirection(DirRight)
	fx.frame()
	wantFocus(t, fc, b)

	// Let the box catch up with the new focus, then move back.
	fx.frame()
	fc.FocusDirection(DirLeft)
	fx.frame()
	wantFocus(t, fc, a)

	fx.frame()
	fc.FocusDirection(DirDown)
	fx.frame()
	wantFocus(t, fc, c)

	// Nothing lies above a; focus stays.
	fc.SetFocus(a)
	fx.frame()
	fc.FocusDirection(DirUp)
	fx.frame()
	wantFocus(t, fc, a)
}

func TestPositionalFocusViaEvents(t *testing.T) {
	a, b := new(key), new(key)
	p := new(panel).
		add(a, f32.Rect(0, 0, 40, 40)).
		add(b, f32.Rect(0, 100, 40, 140))
	fc := NewFocusChain()
	fx := newFixture(p, fc)

	fc.SetFocus(a)
	fx.frame()
	fc.EmitEvent(event.Pressed(event.KeyDown.Code()))
	fx.frame()
	wantFocus(t, fc, b)
}

func TestPositionalFocusPrefersSiblings(t *testing.T) {
	x, y, z := new(key), new(key), new(key)
	p1 := new(panel).
		add(x, f32.Rect(0, 0, 40, 40)).
		add(y, f32.Rect(120, 0, 160, 40))
	p2 := new(panel).
		add(z, f32.Rect(60, 0, 100, 40))
	root := new(panel).
		add(p1, f32.Rect(0, 0, 200, 40)).
		add(p2, f32.Rect(0, 0, 200, 40))
	fc := NewFocusChain()
	fx := newFixture(root, fc)

	fc.SetFocus(x)
	fx.frame()
	fc.FocusDirection(DirRight)
	fx.frame()

	// z is geometrically nearer, but y shares x's container and wins on
	// semantic proximity.
	wantFocus(t, fc, y)
}

func TestDirectionalMoveWithoutBoxIsDropped(t *testing.T) {
	fx, fc, keys := keyRow()
	fx.frame()

	// No node has held focus yet, so there is no reference box.
	fc.FocusDirection(DirRight)
	fx.frame()
	wantFocus(t, fc, nil)
	_ = keys
}
