// SPDX-License-Identifier: Unlicense OR MIT

package event

import "fmt"

// Key is the identifier for a keyboard key.
type Key uint16

const (
	KeyA Key = iota + 1
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrl
	KeyShift
	KeyAlt
	KeySuper
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Button is the identifier for a mouse button.
type Button uint16

const (
	ButtonLeft Button = iota + 1
	ButtonRight
	ButtonMiddle
	ButtonBack
	ButtonForward
)

// GamepadButton is the identifier for a gamepad button.
type GamepadButton uint16

const (
	GamepadA GamepadButton = iota + 1
	GamepadB
	GamepadX
	GamepadY
	GamepadUp
	GamepadDown
	GamepadLeft
	GamepadRight
	GamepadLeftBumper
	GamepadRightBumper
	GamepadStart
	GamepadSelect
)

// Code returns the Code for key k.
func (k Key) Code() Code {
	return Code{Class: ClassKeyboard, ID: uint16(k)}
}

// Code returns the Code for button b.
func (b Button) Code() Code {
	return Code{Class: ClassMouse, ID: uint16(b)}
}

// Code returns the Code for button b.
func (b GamepadButton) Code() Code {
	return Code{Class: ClassGamepad, ID: uint16(b)}
}

var keyNames = [...]string{
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F",
	KeyG: "G", KeyH: "H", KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L",
	KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P", KeyQ: "Q", KeyR: "R",
	KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",
	Key0: "0", Key1: "1", Key2: "2", Key3: "3", Key4: "4",
	Key5: "5", Key6: "6", Key7: "7", Key8: "8", Key9: "9",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyCtrl:      "Ctrl",
	KeyShift:     "Shift",
	KeyAlt:       "Alt",
	KeySuper:     "Super",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
}

var buttonNames = [...]string{
	ButtonLeft:    "MouseLeft",
	ButtonRight:   "MouseRight",
	ButtonMiddle:  "MouseMiddle",
	ButtonBack:    "MouseBack",
	ButtonForward: "MouseForward",
}

var gamepadNames = [...]string{
	GamepadA:           "GamepadA",
	GamepadB:           "GamepadB",
	GamepadX:           "GamepadX",
	GamepadY:           "GamepadY",
	GamepadUp:          "GamepadUp",
	GamepadDown:        "GamepadDown",
	GamepadLeft:        "GamepadLeft",
	GamepadRight:       "GamepadRight",
	GamepadLeftBumper:  "GamepadLeftBumper",
	GamepadRightBumper: "GamepadRightBumper",
	GamepadStart:       "GamepadStart",
	GamepadSelect:      "GamepadSelect",
}

func (k Key) String() string {
	if int(k) < len(keyNames) && keyNames[k] != "" {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

func (b Button) String() string {
	if int(b) < len(buttonNames) && buttonNames[b] != "" {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", uint16(b))
}

func (b GamepadButton) String() string {
	if int(b) < len(gamepadNames) && gamepadNames[b] != "" {
		return gamepadNames[b]
	}
	return fmt.Sprintf("GamepadButton(%d)", uint16(b))
}

var codesByName = make(map[string]Code)

func init() {
	codesByName["Noop"] = NoopCode
	codesByName["Frame"] = FrameCode
	for k, name := range keyNames {
		if name != "" {
			codesByName[name] = Key(k).Code()
		}
	}
	for b, name := range buttonNames {
		if name != "" {
			codesByName[name] = Button(b).Code()
		}
	}
	for b, name := range gamepadNames {
		if name != "" {
			codesByName[name] = GamepadButton(b).Code()
		}
	}
}

// ParseCode returns the Code whose String form equals name.
func ParseCode(name string) (Code, error) {
	c, ok := codesByName[name]
	if !ok {
		return Code{}, fmt.Errorf("unknown event code %q", name)
	}
	return c, nil
}
