// SPDX-License-Identifier: Unlicense OR MIT

package event

import (
	"fmt"
	"hash/fnv"
)

// Action identifies a semantic input action, decoupled from the physical
// keys or buttons that trigger it.
type Action uint64

var actionNames = make(map[Action]string)
var actionsByName = make(map[string]Action)

// ActionOf returns the Action for a symbolic name, registering the name
// for Action.String and LookupAction. The identifier is the FNV-1a hash
// of the name, so independently compiled modules derive the same Action
// for the same name.
func ActionOf(name string) Action {
	if name == "" {
		panic("event: empty action name")
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	a := Action(h.Sum64())
	actionNames[a] = name
	actionsByName[name] = a
	return a
}

// LookupAction returns the registered Action for name.
func LookupAction(name string) (Action, bool) {
	a, ok := actionsByName[name]
	return a, ok
}

// ActionName returns the registered name for a.
func ActionName(a Action) (string, bool) {
	name, ok := actionNames[a]
	return name, ok
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%#x)", uint64(a))
}

// Actions every widget can rely on being registered.
var (
	// Frame is the pseudo-action dispatched once per frame when no other
	// action resolved, backing passive per-frame behaviors.
	Frame = ActionOf("frame")

	Press         = ActionOf("press")
	Submit        = ActionOf("submit")
	Cancel        = ActionOf("cancel")
	ContextMenu   = ActionOf("contextMenu")
	FocusNext     = ActionOf("focusNext")
	FocusPrevious = ActionOf("focusPrevious")
	FocusUp       = ActionOf("focusUp")
	FocusDown     = ActionOf("focusDown")
	FocusLeft     = ActionOf("focusLeft")
	FocusRight    = ActionOf("focusRight")
	ScrollUp      = ActionOf("scrollUp")
	ScrollDown    = ActionOf("scrollDown")
	ScrollLeft    = ActionOf("scrollLeft")
	ScrollRight   = ActionOf("scrollRight")
	PageUp        = ActionOf("pageUp")
	PageDown      = ActionOf("pageDown")
)
