// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"samerion.com/fluid/f32"
	"samerion.com/fluid/io/event"
	"samerion.com/fluid/io/keymap"
	"samerion.com/fluid/tree"
)

// FocusChain tracks the single focused node for one focus-capable
// device class and implements ordered (tab-style) and positional
// (directional) focus traversal over its subtree.
//
// The focus reference is not invalidated when the node leaves the
// tree; a stale focus is inert and the next ordered move recovers from
// either end of the traversal.
type FocusChain struct {
	LinkBase

	// Wrap makes ordered traversal continue from the opposite end when
	// it runs out of nodes.
	Wrap bool

	focus    Focusable
	events   []event.Event
	handlers map[event.Action]func(active bool) bool
	mapping  *keymap.Mapping
	localMap *keymap.Mapping
	handled  bool

	cx        *tree.Context
	boxAction FindFocusBoxAction
	focusBox  f32.Rectangle
	hasBox    bool
}

// NewFocusChain returns a focus dispatcher with wrapping enabled, the
// built-in handlers for the six focus actions registered, and the
// default mapping as fallback until a MappingSource is found above it.
func NewFocusChain() *FocusChain {
	f := &FocusChain{
		Wrap:     true,
		handlers: make(map[event.Action]func(bool) bool),
		localMap: keymap.Default(),
	}
	f.boxAction.OnFound = func(r f32.Rectangle) {
		f.focusBox = r
		f.hasBox = true
	}
	f.On(event.FocusNext, func(active bool) bool {
		if active {
			f.FocusNext()
		}
		return active
	})
	f.On(event.FocusPrevious, func(active bool) bool {
		if active {
			f.FocusPrevious()
		}
		return active
	})
	f.On(event.FocusUp, f.directionalHandler(DirUp))
	f.On(event.FocusDown, f.directionalHandler(DirDown))
	f.On(event.FocusLeft, f.directionalHandler(DirLeft))
	f.On(event.FocusRight, f.directionalHandler(DirRight))
	return f
}

// Focused returns the currently focused node, nil for none.
func (f *FocusChain) Focused() Focusable {
	return f.focus
}

// SetFocus makes n the current focus.
func (f *FocusChain) SetFocus(n Focusable) {
	f.focus = n
}

// ClearFocus removes focus from whichever node holds it.
func (f *FocusChain) ClearFocus() {
	f.focus = nil
}

// IsFocused reports whether n is the current focus.
func (f *FocusChain) IsFocused(n tree.Node) bool {
	return f.focus != nil && tree.Node(f.focus) == n
}

// FocusBox returns the last recorded bounds of the focused node. The
// box lags the draw pass by one frame and is absent until the focused
// node draws for the first time.
func (f *FocusChain) FocusBox() (f32.Rectangle, bool) {
	return f.focusBox, f.hasBox
}

// EmitEvent reports a raw keyboard or gamepad class event. Events
// buffer until the next frame resolves them against the mapping.
func (f *FocusChain) EmitEvent(e event.Event) {
	f.events = append(f.events, e)
}

// On registers a chain-local handler for action, consulted when the
// focused node does not consume it. Later registrations replace
// earlier ones for the same action.
func (f *FocusChain) On(action event.Action, fn func(active bool) bool) {
	f.handlers[action] = fn
}

// RunInputAction routes an action: first to the focused node, then to
// chain-local handlers; the Frame action additionally falls back to the
// focused node's FocusIdle hook. The first consumer wins.
func (f *FocusChain) RunInputAction(action event.Action, active bool) bool {
	if f.focus != nil && f.focus.FocusAction(action, active) {
		return true
	}
	if fn, ok := f.handlers[action]; ok && fn(active) {
		return true
	}
	if action == event.Frame && f.focus != nil {
		f.focus.FocusIdle()
	}
	return false
}

// FocusNext moves focus to the next focusable node in tree order. The
// move resolves during the next traversal of the chain's subtree.
func (f *FocusChain) FocusNext() {
	f.moveOrdered(false)
}

// FocusPrevious moves focus to the previous focusable node in tree
// order.
func (f *FocusChain) FocusPrevious() {
	f.moveOrdered(true)
}

// FocusDirection moves focus to the geometrically nearest focusable
// node in the given screen direction from the current focus box. With
// no focus box recorded yet the request is dropped; establish focus
// with an ordered move first.
func (f *FocusChain) FocusDirection(dir Direction) {
	if f.cx == nil || !f.hasBox {
		return
	}
	a := &PositionalFocusAction{
		Reference: f.focusBox,
		Direction: dir,
		Current:   f.currentNode(),
		OnDone: func(pick Focusable) {
			if pick != nil {
				f.SetFocus(pick)
			}
		},
	}
	f.cx.StartBranch(a, f)
}

func (f *FocusChain) directionalHandler(dir Direction) func(bool) bool {
	return func(active bool) bool {
		if active {
			f.FocusDirection(dir)
		}
		return active
	}
}

func (f *FocusChain) moveOrdered(previous bool) {
	if f.cx == nil {
		return
	}
	a := &OrderedFocusAction{
		Target:   f.currentNode(),
		Previous: previous,
		Wrap:     f.Wrap,
		OnDone: func(pick Focusable) {
			if pick != nil {
				f.SetFocus(pick)
			}
		},
	}
	f.cx.StartBranch(a, f)
}

func (f *FocusChain) currentNode() tree.Node {
	if f.focus == nil {
		return nil
	}
	return f.focus
}

func (f *FocusChain) Resize(cx *tree.Context, space f32.Point) f32.Point {
	f.cx = cx
	f.mapping = f.localMap
	if src, ok := findProvider[MappingSource](f.Parent(), f.child); ok {
		f.mapping = src.Mapping()
	}
	return resizeLink(cx, f, space)
}

func (f *FocusChain) Draw(cx *tree.Context, bounds f32.Rectangle) {
	f.beforeDraw(cx)
	drawLink(cx, f, bounds)
	f.afterDraw()
}

// beforeDraw resolves the events buffered since the last frame against
// the previous frame's focus, and keeps the focus box tracker running.
func (f *FocusChain) beforeDraw(cx *tree.Context) {
	f.cx = cx
	action, active := f.mapping.Resolve(f.events)
	f.events = f.events[:0]
	if action != event.Frame {
		if f.RunInputAction(action, active) {
			f.handled = true
		}
	}
	f.boxAction.Target = f.currentNode()
	if !f.boxAction.Running() {
		cx.Start(&f.boxAction)
	}
}

func (f *FocusChain) afterDraw() {
	if !f.handled {
		f.RunInputAction(event.Frame, false)
	}
	f.handled = false
}
