// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"samerion.com/fluid/f32"
	"samerion.com/fluid/io/keymap"
	"samerion.com/fluid/tree"
)

// MappingSource provides the binding table a dispatcher resolves
// events against. Dispatchers look one up during resize and fall back
// to their own default mapping without one.
type MappingSource interface {
	Mapping() *keymap.Mapping
}

// MapLink provides one shared mapping to every dispatcher stacked
// below it, so hover and focus chains in the same chain resolve
// against the same bindings.
type MapLink struct {
	LinkBase

	// Map is the provided mapping. Rebind between frames only.
	Map *keymap.Mapping
}

// NewMapLink returns a link providing m.
func NewMapLink(m *keymap.Mapping) *MapLink {
	return &MapLink{Map: m}
}

func (l *MapLink) Mapping() *keymap.Mapping {
	return l.Map
}

func (l *MapLink) Resize(cx *tree.Context, space f32.Point) f32.Point {
	return resizeLink(cx, l, space)
}

func (l *MapLink) Draw(cx *tree.Context, bounds f32.Rectangle) {
	drawLink(cx, l, bounds)
}
