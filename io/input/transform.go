// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"samerion.com/fluid/f32"
	"samerion.com/fluid/tree"
)

// TransformLink remaps coordinates for its subtree: the child is drawn
// in its own local space while pointer positions arriving from the
// hover chain above are translated into that space during hit search.
// Use it to give a zoomed or offset region correctly placed hits.
type TransformLink struct {
	LinkBase

	// Transform maps the subtree's local coordinates to the parent's.
	Transform f32.Affine2D
}

// NewTransformLink returns a link applying t to its subtree.
func NewTransformLink(t f32.Affine2D) *TransformLink {
	return &TransformLink{Transform: t}
}

func (l *TransformLink) Resize(cx *tree.Context, space f32.Point) f32.Point {
	return resizeLink(cx, l, space)
}

func (l *TransformLink) Draw(cx *tree.Context, bounds f32.Rectangle) {
	if l.child == nil {
		return
	}
	inv := l.Transform.Invert()
	local := f32.Rectangle{
		Min: inv.Transform(bounds.Min),
		Max: inv.Transform(bounds.Max),
	}.Canon()
	hover, ok := ProviderOf[*HoverChain](l.Parent())
	if ok {
		hover.PushTransform(inv)
		defer hover.PopTransform()
	}
	cx.DrawChild(l, l.child, local)
}
