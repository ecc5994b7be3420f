// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"samerion.com/fluid/f32"
	"samerion.com/fluid/tree"
)

// ScrollFrame is a vertical frame that pans its content when it does
// not fit. It consumes scroll deltas routed by the hover dispatcher;
// once saturated, deltas pass through to enclosing scrollers.
type ScrollFrame struct {
	Frame

	offset float32
	max    float32
}

// NewScrollFrame returns a scrollable vertical frame holding children.
func NewScrollFrame(children ...tree.Node) *ScrollFrame {
	return &ScrollFrame{Frame: *NewFrame(children...)}
}

// Offset returns the current scroll offset.
func (s *ScrollFrame) Offset() float32 { return s.offset }

// MaxOffset returns the furthest the content can scroll.
func (s *ScrollFrame) MaxOffset() float32 { return s.max }

func (s *ScrollFrame) CanScroll(delta f32.Point) bool {
	return (delta.Y < 0 && s.offset > 0) || (delta.Y > 0 && s.offset < s.max)
}

func (s *ScrollFrame) ScrollBy(delta f32.Point) {
	s.offset += delta.Y
	if s.offset < 0 {
		s.offset = 0
	}
	if s.offset > s.max {
		s.offset = s.max
	}
}

func (s *ScrollFrame) Resize(cx *tree.Context, space f32.Point) f32.Point {
	content := s.Frame.Resize(cx, space)
	s.max = content.Y - space.Y
	if s.max < 0 {
		s.max = 0
	}
	if s.offset > s.max {
		s.offset = s.max
	}
	// The frame itself only needs the space it is given.
	if content.Y > space.Y {
		content.Y = space.Y
	}
	return content
}

func (s *ScrollFrame) Draw(cx *tree.Context, bounds f32.Rectangle) {
	s.Frame.Draw(cx, bounds.Sub(f32.Pt(0, s.offset)))
}
