// SPDX-License-Identifier: Unlicense OR MIT

/*
Package event implements the value types every input backend and
dispatcher agrees on: device-scoped event codes, per-frame input
events and semantic input actions.
*/
package event

import "fmt"

// Class distinguishes the source classes an event code can belong to.
type Class uint8

const (
	// ClassNone is reserved for pseudo-codes owned by the toolkit.
	ClassNone Class = iota
	// ClassKeyboard identifies keyboard keys.
	ClassKeyboard
	// ClassMouse identifies mouse buttons.
	ClassMouse
	// ClassGamepad identifies gamepad buttons.
	ClassGamepad
)

// Code identifies one key, button or pseudo-event. The zero Code is
// invalid.
type Code struct {
	Class Class
	ID    uint16
}

var (
	// NoopCode suppresses action resolution for the frame it is active in.
	NoopCode = Code{Class: ClassNone, ID: 1}
	// FrameCode backs the once-per-frame fallback action.
	FrameCode = Code{Class: ClassNone, ID: 2}
)

// An Event is one raw input event reported for the current frame.
// Active is set on the frame the code transitions to pressed; frames
// where the code is merely still down report Active false. A released
// code is reported by its absence.
type Event struct {
	Code   Code
	Active bool
}

// Pressed returns the event reported on the frame c goes down.
func Pressed(c Code) Event {
	return Event{Code: c, Active: true}
}

// Held returns the event reported on frames c stays down.
func Held(c Code) Event {
	return Event{Code: c, Active: false}
}

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassKeyboard:
		return "keyboard"
	case ClassMouse:
		return "mouse"
	case ClassGamepad:
		return "gamepad"
	default:
		panic("invalid Class")
	}
}

func (c Code) String() string {
	switch c.Class {
	case ClassNone:
		switch c {
		case NoopCode:
			return "Noop"
		case FrameCode:
			return "Frame"
		}
	case ClassKeyboard:
		return Key(c.ID).String()
	case ClassMouse:
		return Button(c.ID).String()
	case ClassGamepad:
		return GamepadButton(c.ID).String()
	}
	return fmt.Sprintf("%v(%d)", c.Class, c.ID)
}

func (e Event) String() string {
	if e.Active {
		return e.Code.String() + "+"
	}
	return e.Code.String()
}
