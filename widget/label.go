// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"samerion.com/fluid/f32"
	"samerion.com/fluid/tree"
)

// Label is an inert line of text. It implements no input capability:
// pointers pass through it and it cannot take focus.
type Label struct {
	tree.NodeBase

	Text string
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	return &Label{Text: text}
}

func (l *Label) Resize(*tree.Context, f32.Point) f32.Point {
	// Crude text extent; shaping belongs to the text backend.
	return f32.Pt(float32(len(l.Text))*8, 16)
}

func (l *Label) Draw(*tree.Context, f32.Rectangle) {}
