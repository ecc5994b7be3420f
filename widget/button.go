// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"samerion.com/fluid/f32"
	"samerion.com/fluid/io/event"
	"samerion.com/fluid/io/input"
	"samerion.com/fluid/tree"
)

// Button is a clickable, focusable widget. It clicks on an active
// press routed from a pointer, or on submit while focused.
type Button struct {
	tree.NodeBase

	Label   string
	OnClick func()

	hot     bool
	pressed bool
}

// NewButton returns a button calling onClick when activated.
func NewButton(label string, onClick func()) *Button {
	return &Button{Label: label, OnClick: onClick}
}

// Hot reports whether any pointer hovered the button last frame.
func (b *Button) Hot() bool { return b.hot }

// Pressed reports whether a press was latched on the button last
// frame.
func (b *Button) Pressed() bool { return b.pressed }

func (b *Button) Resize(*tree.Context, f32.Point) f32.Point {
	return f32.Pt(float32(len(b.Label))*8+16, 24)
}

func (b *Button) Draw(*tree.Context, f32.Rectangle) {
	// Visual state decays each frame; the dispatchers re-set it after
	// the draw when still applicable.
	b.hot = false
	b.pressed = false
}

func (b *Button) PointerAction(p input.Pointer, action event.Action, active bool) bool {
	if action != event.Press {
		return false
	}
	b.pressed = true
	if active {
		b.click()
	}
	return true
}

func (b *Button) PointerIdle(input.Pointer) {
	b.hot = true
}

func (b *Button) BlocksInput() bool {
	return true
}

func (b *Button) FocusAction(action event.Action, active bool) bool {
	if action == event.Submit && active {
		b.click()
		return true
	}
	return false
}

func (b *Button) FocusIdle() {}

func (b *Button) Focus() {
	input.Focus(b)
}

func (b *Button) Focused() bool {
	return input.IsFocused(b)
}

func (b *Button) click() {
	if b.OnClick != nil {
		b.OnClick()
	}
}
