// SPDX-License-Identifier: Unlicense OR MIT

package keymap

import "samerion.com/fluid/io/event"

// Default returns the standard desktop and gamepad mapping. Widgets
// work against it out of the box; user keymaps load on top of it and
// take priority.
func Default() *Mapping {
	m := new(Mapping)

	m.Bind(event.Press, event.ButtonLeft.Code())
	m.Bind(event.ContextMenu, event.ButtonRight.Code())

	m.Bind(event.Submit, event.KeyEnter.Code())
	m.Bind(event.Submit, event.KeySpace.Code())
	m.Bind(event.Submit, event.GamepadA.Code())
	m.Bind(event.Cancel, event.KeyEscape.Code())
	m.Bind(event.Cancel, event.GamepadB.Code())

	m.Bind(event.FocusNext, event.KeyTab.Code())
	m.Bind(event.FocusPrevious, event.KeyShift.Code(), event.KeyTab.Code())
	m.Bind(event.FocusNext, event.GamepadRightBumper.Code())
	m.Bind(event.FocusPrevious, event.GamepadLeftBumper.Code())

	m.Bind(event.FocusUp, event.KeyUp.Code())
	m.Bind(event.FocusDown, event.KeyDown.Code())
	m.Bind(event.FocusLeft, event.KeyLeft.Code())
	m.Bind(event.FocusRight, event.KeyRight.Code())
	m.Bind(event.FocusUp, event.GamepadUp.Code())
	m.Bind(event.FocusDown, event.GamepadDown.Code())
	m.Bind(event.FocusLeft, event.GamepadLeft.Code())
	m.Bind(event.FocusRight, event.GamepadRight.Code())

	m.Bind(event.ScrollUp, event.KeyCtrl.Code(), event.KeyUp.Code())
	m.Bind(event.ScrollDown, event.KeyCtrl.Code(), event.KeyDown.Code())
	m.Bind(event.ScrollLeft, event.KeyCtrl.Code(), event.KeyLeft.Code())
	m.Bind(event.ScrollRight, event.KeyCtrl.Code(), event.KeyRight.Code())
	m.Bind(event.PageUp, event.KeyPageUp.Code())
	m.Bind(event.PageDown, event.KeyPageDown.Code())

	return m
}
