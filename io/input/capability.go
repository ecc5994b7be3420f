// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"samerion.com/fluid/f32"
	"samerion.com/fluid/io/event"
	"samerion.com/fluid/tree"
)

// Pointer is one frame of state reported for a hover-capable input
// source: a mouse cursor or one touch contact.
type Pointer struct {
	// Position is the pointer's position in screen coordinates.
	Position f32.Point
	// Scroll is the scroll delta reported since the last frame.
	Scroll f32.Point
	// Disabled excludes the pointer from hit search while set.
	Disabled bool
}

// Hoverable is the capability of receiving pointer input. Widgets opt
// in by implementing it; nodes without it are invisible to pointers.
type Hoverable interface {
	tree.Node

	// PointerAction reacts to an action routed from a pointer and
	// reports whether it was consumed.
	PointerAction(p Pointer, action event.Action, active bool) bool
	// PointerIdle runs once per frame for the hovered node when no
	// action resolved, backing passive hover feedback.
	PointerIdle(p Pointer)
	// BlocksInput reports whether the node is opaque to pointers,
	// hiding nodes drawn beneath it. Nodes that do not block input
	// yield hits to whatever they cover.
	BlocksInput() bool
}

// Focusable is the capability of holding keyboard-class focus.
type Focusable interface {
	tree.Node

	// FocusAction reacts to an action routed to the focused node and
	// reports whether it was consumed.
	FocusAction(action event.Action, active bool) bool
	// FocusIdle runs once per frame for the focused node when no action
	// resolved.
	FocusIdle()
	// Focus makes the node the current focus of its focus provider.
	// Most widgets implement it as input.Focus(w).
	Focus()
	// Focused reports whether the node currently holds focus. Most
	// widgets implement it as input.IsFocused(w).
	Focused() bool
}

// Scroller is the capability of consuming scroll deltas.
type Scroller interface {
	tree.Node

	// CanScroll reports whether the node can still move along delta. A
	// saturated scroller returns false, passing the delta through to
	// its ancestors.
	CanScroll(delta f32.Point) bool
	// ScrollBy consumes delta.
	ScrollBy(delta f32.Point)
}

// Focus gives n focus through the nearest focus chain above it. Without
// one this is a no-op.
func Focus(n Focusable) {
	if fc, ok := ProviderOf[*FocusChain](n.Base().Parent()); ok {
		fc.SetFocus(n)
	}
}

// IsFocused reports whether n holds focus in the nearest focus chain
// above it.
func IsFocused(n Focusable) bool {
	fc, ok := ProviderOf[*FocusChain](n.Base().Parent())
	return ok && fc.IsFocused(n)
}
