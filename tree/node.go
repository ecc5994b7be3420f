// SPDX-License-Identifier: Unlicense OR MIT

/*
Package tree implements the retained widget tree and the per-frame
traversal that resizes and draws it.

Every frame the tree is resized bottom-up, computing minimum sizes, and
then drawn top-down. Tree actions observe the draw pass without the tree
knowing about each consumer; see Action.
*/
package tree

import "samerion.com/fluid/f32"

// Node is one element of the retained tree. Concrete nodes embed
// NodeBase and implement Resize and Draw.
type Node interface {
	// Base returns the node's embedded NodeBase.
	Base() *NodeBase

	// Resize computes the node's minimum size given the space available
	// to it. Containers recurse through Context.ResizeChild.
	Resize(cx *Context, space f32.Point) f32.Point

	// Draw lays the node out into bounds. Containers recurse through
	// Context.DrawChild.
	Draw(cx *Context, bounds f32.Rectangle)
}

// NodeBase carries the bookkeeping shared by every node: the parent it
// was last visited under and the geometry computed by the last pass.
type NodeBase struct {
	parent  Node
	minSize f32.Point
	bounds  f32.Rectangle
}

func (b *NodeBase) Base() *NodeBase { return b }

// Parent returns the node this node was last resized or drawn under,
// nil for the root. Parent references are refreshed on every pass; they
// are positions in the last traversal, not ownership.
func (b *NodeBase) Parent() Node { return b.parent }

// MinSize returns the minimum size computed by the last resize pass.
func (b *NodeBase) MinSize() f32.Point { return b.minSize }

// Bounds returns the node's padding box as of the last draw pass. It is
// stale until the node is drawn for the first time.
func (b *NodeBase) Bounds() f32.Rectangle { return b.bounds }
