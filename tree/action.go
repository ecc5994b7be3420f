// SPDX-License-Identifier: Unlicense OR MIT

package tree

// An Action observes tree traversals. Concrete actions embed
// ActionState, which provides no-op defaults for every hook, and
// override the hooks they need.
//
// Hook order per traversal: BeforeTree once as the traversal begins,
// BeforeDraw per node in pre-order, AfterDraw per node in post-order,
// AfterTree as the traversal ends. An action started while a traversal
// is in progress joins it from the current node onward.
type Action interface {
	// BeforeTree is called as a traversal of root begins.
	BeforeTree(root Node)
	// BeforeDraw is called for every visited node before it draws.
	BeforeDraw(n Node)
	// AfterDraw is called for every visited node after it draws.
	AfterDraw(n Node)
	// AfterTree is called as the traversal ends. Actions restricted to a
	// branch receive it when the branch closes instead.
	AfterTree()

	state() *ActionState
}

// ActionState is the state embedded by every Action implementation. It
// carries the generation token that invalidates superseded runs, and
// the balance bookkeeping for branch-restricted runs.
type ActionState struct {
	generation uint64
	running    bool

	branch  Node
	inside  bool
	balance int
}

func (s *ActionState) state() *ActionState { return s }

// Running reports whether the action is currently started.
func (s *ActionState) Running() bool { return s.running }

// Generation returns the action's live generation token. It increases
// on every start and stop; a runner holding an older token must not
// deliver further callbacks.
func (s *ActionState) Generation() uint64 { return s.generation }

// Branch returns the node the current run is restricted to, nil when
// the run covers the whole tree.
func (s *ActionState) Branch() Node { return s.branch }

// Stop cancels the current run. Stopping an idle action is a no-op.
// Callbacks already on the stack finish undisturbed; later ones are
// suppressed through the generation token.
func (s *ActionState) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.generation++
}

func (s *ActionState) BeforeTree(Node) {}
func (s *ActionState) BeforeDraw(Node) {}
func (s *ActionState) AfterDraw(Node)  {}
func (s *ActionState) AfterTree()      {}
