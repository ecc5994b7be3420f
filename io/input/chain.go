// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input implements the dispatchers that route resolved input
actions into the widget tree: hover tracking per pointer, focus
tracking per device class, and the chain mechanism that lets
sub-regions of the tree override input semantics locally.

Dispatchers are chain links: tree nodes that wrap exactly one child and
bracket its resize and draw with their own hooks. Links stack through
Chain, and discover the providers above them by walking parent
references during the resize pass.
*/
package input

import (
	"samerion.com/fluid/f32"
	"samerion.com/fluid/tree"
)

// A Link is one provider in a chain: a node wrapping exactly one child.
type Link interface {
	tree.Node

	// Child returns the wrapped node.
	Child() tree.Node
	// SetChild replaces the wrapped node.
	SetChild(tree.Node)
}

// LinkBase carries the single-child plumbing shared by every link.
type LinkBase struct {
	tree.NodeBase
	child tree.Node
}

func (l *LinkBase) Child() tree.Node {
	return l.child
}

func (l *LinkBase) SetChild(n tree.Node) {
	l.child = n
}

// Chain stacks links in front of child. The first link becomes the
// outermost: its hooks run first on the way in and last on the way
// out.
func Chain(child tree.Node, links ...Link) tree.Node {
	for i := len(links) - 1; i >= 0; i-- {
		links[i].SetChild(child)
		child = links[i]
	}
	return child
}

// ProviderOf returns the nearest provider of capability T at or above
// n. Parent references are refreshed by every pass, so during resize
// and draw the walk sees the tree as currently composed.
func ProviderOf[T any](n tree.Node) (T, bool) {
	for ; n != nil; n = n.Base().Parent() {
		if t, ok := n.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// linkProviderOf returns the nearest provider of capability T in the
// link chain hanging below n, n included. Used by links looking for
// collaborators stacked inside the same chain.
func linkProviderOf[T any](n tree.Node) (T, bool) {
	for n != nil {
		if t, ok := n.(T); ok {
			return t, true
		}
		l, ok := n.(Link)
		if !ok {
			break
		}
		n = l.Child()
	}
	var zero T
	return zero, false
}

// findProvider looks for T first above n, then inside the link chain
// below it.
func findProvider[T any](n tree.Node, child tree.Node) (T, bool) {
	if t, ok := ProviderOf[T](n); ok {
		return t, true
	}
	return linkProviderOf[T](child)
}

func resizeLink(cx *tree.Context, l Link, space f32.Point) f32.Point {
	if l.Child() == nil {
		return f32.Point{}
	}
	return cx.ResizeChild(l, l.Child(), space)
}

func drawLink(cx *tree.Context, l Link, bounds f32.Rectangle) {
	if l.Child() != nil {
		cx.DrawChild(l, l.Child(), bounds)
	}
}
