// SPDX-License-Identifier: Unlicense OR MIT

package tree

import (
	"golang.org/x/exp/slices"

	"samerion.com/fluid/f32"
)

type actionEntry struct {
	action Action
	// gen is the generation captured when the run was registered. A
	// mismatch against the live generation marks the entry stale.
	gen uint64
}

// Context drives the per-frame passes over one tree and hosts the
// actions observing them. Construct one per window at startup and
// reuse it for every frame.
type Context struct {
	// FrameCount increments once per Frame call.
	FrameCount uint64

	root    Node
	actions []actionEntry
	stack   []Node
	depth   int
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{}
}

// Start begins or restarts a whole-tree run of a. Restarting implicitly
// cancels the previous run through the generation token. If a traversal
// is in progress the action joins it from the current node onward;
// otherwise it runs from the next Frame.
func (cx *Context) Start(a Action) {
	cx.StartBranch(a, nil)
}

// StartBranch begins or restarts a run of a restricted to strict
// descendants of branch. The run stops itself once the traversal leaves
// the branch. A nil branch is equivalent to Start.
func (cx *Context) StartBranch(a Action, branch Node) {
	st := a.state()
	if st.running {
		st.running = false
		st.generation++
	}
	st.generation++
	st.running = true
	st.branch = branch
	st.balance = 0
	// Joining from inside the branch counts as having entered it.
	st.inside = branch != nil && slices.Contains(cx.stack, branch)
	cx.actions = append(cx.actions, actionEntry{action: a, gen: st.generation})
	if cx.depth > 0 {
		a.BeforeTree(cx.root)
	}
}

// Frame runs one complete pass over the tree rooted at root: resize
// bottom-up, then draw top-down, firing action callbacks along the way.
func (cx *Context) Frame(root Node, viewport f32.Rectangle) {
	cx.depth++
	cx.FrameCount++
	cx.root = root
	cx.beforeTree()
	cx.ResizeChild(nil, root, viewport.Size())
	cx.DrawChild(nil, root, viewport)
	cx.afterTree()
	cx.depth--
	if cx.depth == 0 {
		cx.compact()
	}
}

// ResizeChild computes child's minimum size within space, recording
// parent as its position in the tree for this frame.
func (cx *Context) ResizeChild(parent, child Node, space f32.Point) f32.Point {
	b := child.Base()
	b.parent = parent
	b.minSize = child.Resize(cx, space)
	return b.minSize
}

// DrawChild draws child into bounds, firing the pre-order and
// post-order action callbacks around it.
func (cx *Context) DrawChild(parent, child Node, bounds f32.Rectangle) {
	b := child.Base()
	b.parent = parent
	b.bounds = bounds
	cx.stack = append(cx.stack, child)
	cx.enterNode(child)
	child.Draw(cx, bounds)
	cx.leaveNode(child)
	cx.stack = cx.stack[:len(cx.stack)-1]
}

func (cx *Context) beforeTree() {
	for i := 0; i < len(cx.actions); i++ {
		e := cx.actions[i]
		if st := e.action.state(); e.gen != st.generation || !st.running {
			continue
		}
		e.action.BeforeTree(cx.root)
	}
}

func (cx *Context) afterTree() {
	for i := 0; i < len(cx.actions); i++ {
		e := cx.actions[i]
		st := e.action.state()
		if e.gen != st.generation || !st.running {
			continue
		}
		if st.branch != nil {
			// Branch runs end when their branch closes, not with the tree.
			continue
		}
		e.action.AfterTree()
	}
}

func (cx *Context) enterNode(n Node) {
	for i := 0; i < len(cx.actions); i++ {
		e := cx.actions[i]
		st := e.action.state()
		if e.gen != st.generation || !st.running {
			continue
		}
		if st.branch != nil {
			if !st.inside {
				if n == st.branch {
					st.inside = true
				}
				continue
			}
			st.balance++
		}
		e.action.BeforeDraw(n)
	}
}

func (cx *Context) leaveNode(n Node) {
	for i := 0; i < len(cx.actions); i++ {
		e := cx.actions[i]
		st := e.action.state()
		if e.gen != st.generation || !st.running {
			continue
		}
		if st.branch != nil {
			if !st.inside {
				continue
			}
			if n == st.branch {
				e.action.AfterTree()
				st.Stop()
				continue
			}
			st.balance--
			if st.balance < 0 {
				// Left the branch's subtree sideways; the run is over.
				e.action.AfterTree()
				st.Stop()
				continue
			}
		}
		e.action.AfterDraw(n)
	}
}

// compact drops stale entries. Only called with no traversal in
// progress, so removal cannot corrupt an ongoing iteration.
func (cx *Context) compact() {
	cx.actions = slices.DeleteFunc(cx.actions, func(e actionEntry) bool {
		return e.gen != e.action.state().generation
	})
}
