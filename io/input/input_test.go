// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"samerion.com/fluid/f32"
	"samerion.com/fluid/io/event"
	"samerion.com/fluid/tree"
)

// panel places each child at a fixed rectangle, giving tests precise
// geometry.
type panel struct {
	tree.NodeBase
	children []tree.Node
	rects    []f32.Rectangle
}

func (p *panel) add(n tree.Node, r f32.Rectangle) *panel {
	p.children = append(p.children, n)
	p.rects = append(p.rects, r)
	return p
}

func (p *panel) Resize(cx *tree.Context, space f32.Point) f32.Point {
	for i, c := range p.children {
		cx.ResizeChild(p, c, p.rects[i].Size())
	}
	return space
}

func (p *panel) Draw(cx *tree.Context, bounds f32.Rectangle) {
	for i, c := range p.children {
		cx.DrawChild(p, c, p.rects[i])
	}
}

// pad is a hoverable test widget recording the actions routed to it.
type pad struct {
	tree.NodeBase
	transparent bool
	consume     bool

	log   []string
	idles int
}

func (p *pad) Resize(*tree.Context, f32.Point) f32.Point { return f32.Pt(10, 10) }
func (p *pad) Draw(*tree.Context, f32.Rectangle)         {}

func (p *pad) PointerAction(_ Pointer, action event.Action, active bool) bool {
	if action == event.Frame {
		return false
	}
	s := action.String()
	if active {
		s += "+"
	}
	p.log = append(p.log, s)
	return p.consume
}

func (p *pad) PointerIdle(Pointer) { p.idles++ }
func (p *pad) BlocksInput() bool   { return !p.transparent }

// key is a focusable (and hoverable) test widget.
type key struct {
	pad
	consumeFocus bool

	focusLog   []string
	focusIdles int
}

func (k *key) FocusAction(action event.Action, active bool) bool {
	if action == event.Frame {
		return false
	}
	s := action.String()
	if active {
		s += "+"
	}
	k.focusLog = append(k.focusLog, s)
	return k.consumeFocus
}

func (k *key) FocusIdle()    { k.focusIdles++ }
func (k *key) Focus()        { Focus(k) }
func (k *key) Focused() bool { return IsFocused(k) }

// scrollPad is a scroller with a configurable travel range.
type scrollPad struct {
	tree.NodeBase
	max    float32
	offset float32
}

func (s *scrollPad) Resize(*tree.Context, f32.Point) f32.Point { return f32.Pt(10, 10) }
func (s *scrollPad) Draw(*tree.Context, f32.Rectangle)         {}

func (s *scrollPad) CanScroll(delta f32.Point) bool {
	return (delta.Y < 0 && s.offset > 0) || (delta.Y > 0 && s.offset < s.max)
}

func (s *scrollPad) ScrollBy(delta f32.Point) {
	s.offset += delta.Y
	if s.offset < 0 {
		s.offset = 0
	}
	if s.offset > s.max {
		s.offset = s.max
	}
}

// fixture drives frames over a chained tree.
type fixture struct {
	cx   *tree.Context
	root tree.Node
}

func newFixture(child tree.Node, links ...Link) *fixture {
	return &fixture{
		cx:   tree.NewContext(),
		root: Chain(child, links...),
	}
}

func (f *fixture) frame() {
	f.cx.Frame(f.root, f32.Rect(0, 0, 200, 200))
}
