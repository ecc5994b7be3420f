// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"samerion.com/fluid/f32"
	"samerion.com/fluid/tree"
)

// Frame stacks its children along one axis, each at its minimum size.
type Frame struct {
	tree.NodeBase

	Horizontal bool

	children []tree.Node
}

// NewFrame returns a frame holding children, stacked vertically.
func NewFrame(children ...tree.Node) *Frame {
	return &Frame{children: children}
}

// NewRow returns a frame holding children, stacked horizontally.
func NewRow(children ...tree.Node) *Frame {
	return &Frame{Horizontal: true, children: children}
}

// Add appends a child.
func (f *Frame) Add(n tree.Node) {
	f.children = append(f.children, n)
}

// Children returns the frame's children.
func (f *Frame) Children() []tree.Node {
	return f.children
}

func (f *Frame) Resize(cx *tree.Context, space f32.Point) f32.Point {
	var min f32.Point
	for _, c := range f.children {
		m := cx.ResizeChild(f, c, space)
		if f.Horizontal {
			min.X += m.X
			if m.Y > min.Y {
				min.Y = m.Y
			}
		} else {
			min.Y += m.Y
			if m.X > min.X {
				min.X = m.X
			}
		}
	}
	return min
}

func (f *Frame) Draw(cx *tree.Context, bounds f32.Rectangle) {
	at := bounds.Min
	for _, c := range f.children {
		min := c.Base().MinSize()
		var r f32.Rectangle
		if f.Horizontal {
			r = f32.Rectangle{Min: at, Max: f32.Pt(at.X+min.X, bounds.Max.Y)}
			at.X += min.X
		} else {
			r = f32.Rectangle{Min: at, Max: f32.Pt(bounds.Max.X, at.Y+min.Y)}
			at.Y += min.Y
		}
		cx.DrawChild(f, c, r)
	}
}
