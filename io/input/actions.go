// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"samerion.com/fluid/f32"
	"samerion.com/fluid/tree"
)

// Direction is a screen-space focus direction.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		panic("invalid Direction")
	}
}

// OrderedFocusAction finds the focusable node neighboring Target in
// tree order. It observes one traversal, reports through OnDone and
// stops itself.
type OrderedFocusAction struct {
	tree.ActionState

	// Target is the node focus moves relative to. With a nil Target the
	// move lands on the first (or, going backwards, last) focusable.
	Target tree.Node
	// Previous selects the node before Target instead of after it.
	Previous bool
	// Wrap continues from the opposite end when no neighbor exists.
	Wrap bool
	// OnDone receives the selection; nil means focus should not move.
	OnDone func(Focusable)

	first, last   Focusable
	before, after Focusable
	seen          bool
}

func (a *OrderedFocusAction) BeforeTree(tree.Node) {
	a.first, a.last = nil, nil
	a.before, a.after = nil, nil
	a.seen = false
}

func (a *OrderedFocusAction) BeforeDraw(n tree.Node) {
	f, ok := n.(Focusable)
	if !ok {
		return
	}
	if a.first == nil {
		a.first = f
	}
	a.last = f
	if n == a.Target {
		a.seen = true
		return
	}
	if !a.seen {
		a.before = f
	} else if a.after == nil {
		a.after = f
	}
}

func (a *OrderedFocusAction) AfterTree() {
	if a.OnDone != nil {
		a.OnDone(a.pick())
	}
	a.Stop()
}

func (a *OrderedFocusAction) pick() Focusable {
	// A Target that never came up in the walk, because it left the tree
	// or was never part of it, counts as no marker: the move recovers
	// per the wrap rules below.
	if a.Previous {
		switch {
		case a.Target == nil:
			return a.last
		case a.before != nil:
			return a.before
		case a.Wrap:
			return a.last
		}
		return nil
	}
	switch {
	case a.Target == nil:
		return a.first
	case a.after != nil:
		return a.after
	case a.Wrap:
		return a.first
	}
	return nil
}

// PositionalFocusAction finds the best focusable node in one screen
// direction from a reference rectangle. Candidates sharing a deeper
// common ancestor with Current count as semantically closer and win
// outright; directional projection distance, weighing cross-axis drift
// double, breaks ties. It observes one traversal, reports through
// OnDone and stops itself.
type PositionalFocusAction struct {
	tree.ActionState

	// Reference anchors the search, typically the last focus box.
	Reference f32.Rectangle
	// Direction is the screen direction to move in.
	Direction Direction
	// Current is the node holding focus; it is skipped as a candidate
	// and its ancestry defines semantic proximity. May be nil.
	Current tree.Node
	// OnDone receives the selection; nil means nothing lies that way.
	OnDone func(Focusable)

	ancestors map[tree.Node]int
	best      Focusable
	bestDepth int
	bestDist  float32
}

func (a *PositionalFocusAction) BeforeTree(tree.Node) {
	a.best = nil
	// Depth of every ancestor of Current, measured from the root, per
	// the parent references of the last completed pass.
	a.ancestors = make(map[tree.Node]int)
	var chain []tree.Node
	for n := a.Current; n != nil; n = n.Base().Parent() {
		chain = append(chain, n)
	}
	for i, n := range chain {
		a.ancestors[n] = len(chain) - 1 - i
	}
}

func (a *PositionalFocusAction) BeforeDraw(n tree.Node) {
	f, ok := n.(Focusable)
	if !ok || n == a.Current {
		return
	}
	refMin, refMax := a.Reference.Min, a.Reference.Max
	ref := f32.Pt((refMin.X+refMax.X)/2, (refMin.Y+refMax.Y)/2)
	b := n.Base().Bounds()
	c := f32.Pt((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)

	var primary, cross float32
	switch a.Direction {
	case DirUp:
		primary, cross = ref.Y-c.Y, abs(c.X-ref.X)
	case DirDown:
		primary, cross = c.Y-ref.Y, abs(c.X-ref.X)
	case DirLeft:
		primary, cross = ref.X-c.X, abs(c.Y-ref.Y)
	case DirRight:
		primary, cross = c.X-ref.X, abs(c.Y-ref.Y)
	}
	if primary <= 0 {
		// Not in the requested direction.
		return
	}
	dist := primary + 2*cross
	depth := a.commonDepth(n)
	if a.best == nil || depth > a.bestDepth ||
		(depth == a.bestDepth && dist < a.bestDist) {
		a.best = f
		a.bestDepth = depth
		a.bestDist = dist
	}
}

func (a *PositionalFocusAction) AfterTree() {
	if a.OnDone != nil {
		a.OnDone(a.best)
	}
	a.Stop()
}

// commonDepth returns the depth of the lowest ancestor n shares with
// Current; deeper means structurally closer.
func (a *PositionalFocusAction) commonDepth(n tree.Node) int {
	for ; n != nil; n = n.Base().Parent() {
		if d, ok := a.ancestors[n]; ok {
			return d
		}
	}
	return 0
}

// FindFocusBoxAction records the bounds of one target node as the draw
// pass visits it, publishing them through OnFound. It keeps running
// across frames; retarget it by assigning Target between traversals.
type FindFocusBoxAction struct {
	tree.ActionState

	Target  tree.Node
	OnFound func(f32.Rectangle)

	found bool
}

func (a *FindFocusBoxAction) BeforeTree(tree.Node) {
	a.found = false
}

func (a *FindFocusBoxAction) BeforeDraw(n tree.Node) {
	if a.found || a.Target == nil || n != a.Target {
		return
	}
	a.found = true
	if a.OnFound != nil {
		a.OnFound(n.Base().Bounds())
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
