// SPDX-License-Identifier: Unlicense OR MIT

/*
Package keymap maps raw input events to semantic input actions through
a prioritized, modifier-aware binding table.

A Mapping is a list of layers, each holding every stroke that shares
one modifier set. Layers are kept ordered by descending modifier count,
so the most specific stroke wins: with Ctrl held, a Ctrl+C binding
shadows a bare C binding. Within a layer the bindings registered last
are searched first, letting user bindings override defaults.
*/
package keymap

import (
	"golang.org/x/exp/slices"

	"samerion.com/fluid/io/event"
)

// A Trigger completes a stroke, binding one trigger code to an action.
type Trigger struct {
	Action event.Action
	Code   event.Code
}

// A Layer holds every stroke sharing one modifier set.
type Layer struct {
	// Modifiers is the layer's modifier set, sorted and unique.
	Modifiers []event.Code
	// Bindings are searched last-registered first.
	Bindings []Trigger
}

// A Mapping is a full binding table. The zero value is an empty
// mapping. A Mapping must not be mutated while a frame resolves
// against it; bind between frames only.
type Mapping struct {
	// Layers is ordered by descending modifier count. At most one layer
	// exists per modifier set.
	Layers []Layer
}

// Bind adds a stroke: all codes but the last are modifiers, the last is
// the trigger. Binding the same stroke twice is not an error; the later
// binding gains priority. Binding an empty stroke is a programmer
// error.
func (m *Mapping) Bind(action event.Action, codes ...event.Code) {
	if len(codes) == 0 {
		panic("keymap: binding an empty stroke")
	}
	trigger := Trigger{Action: action, Code: codes[len(codes)-1]}
	mods := normalize(codes[:len(codes)-1])
	for i := range m.Layers {
		if slices.Equal(m.Layers[i].Modifiers, mods) {
			m.Layers[i].Bindings = append(m.Layers[i].Bindings, trigger)
			return
		}
	}
	// New modifier set; insert keeping layers sorted by descending
	// modifier count.
	at := len(m.Layers)
	for i := range m.Layers {
		if len(m.Layers[i].Modifiers) < len(mods) {
			at = i
			break
		}
	}
	m.Layers = slices.Insert(m.Layers, at, Layer{
		Modifiers: mods,
		Bindings:  []Trigger{trigger},
	})
}

// Resolve maps the events active this frame to at most one action,
// reporting the matched event's Active flag alongside. Only the most
// specific layer whose whole modifier set is down is searched; a
// missing binding there does not fall through to less specific layers.
// When nothing resolves, or when a Noop event suppresses resolution,
// Resolve returns the Frame pseudo-action so per-frame fallbacks still
// run.
func (m *Mapping) Resolve(active []event.Event) (event.Action, bool) {
	for _, e := range active {
		if e.Code == event.NoopCode {
			return event.Frame, false
		}
	}
	for _, l := range m.Layers {
		if !modifiersDown(l.Modifiers, active) {
			continue
		}
		for i := len(l.Bindings) - 1; i >= 0; i-- {
			b := l.Bindings[i]
			for _, e := range active {
				if e.Code == b.Code {
					return b.Action, e.Active
				}
			}
		}
		break
	}
	return event.Frame, false
}

func modifiersDown(mods []event.Code, active []event.Event) bool {
	for _, m := range mods {
		down := false
		for _, e := range active {
			if e.Code == m {
				down = true
				break
			}
		}
		if !down {
			return false
		}
	}
	return true
}

func normalize(codes []event.Code) []event.Code {
	mods := slices.Clone(codes)
	slices.SortFunc(mods, func(a, b event.Code) int {
		if a.Class != b.Class {
			return int(a.Class) - int(b.Class)
		}
		return int(a.ID) - int(b.ID)
	})
	return slices.Compact(mods)
}
