// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"fmt"

	"samerion.com/fluid/f32"
	"samerion.com/fluid/internal/arena"
	"samerion.com/fluid/io/event"
	"samerion.com/fluid/io/keymap"
	"samerion.com/fluid/tree"
)

// PointerID is a stable handle to one pointer tracked by a HoverChain.
// It stays valid from Load until the pointer is removed or times out.
type PointerID struct {
	id arena.ID
}

func (p PointerID) String() string {
	return fmt.Sprintf("pointer(%d)", p.id.Index())
}

// HoverChain tracks which node sits under each pointer and routes
// pointer-triggered actions to it. Once a button goes down over a node
// that node stays latched for the rest of the press, even if the
// pointer strays off it. Pointers are fully independent of each other.
type HoverChain struct {
	LinkBase

	// PointerTimeout is the number of frames a pointer survives without
	// a Load refresh before its slot is reclaimed.
	PointerTimeout uint64

	pointers   arena.Arena[pointerState]
	byDevice   map[int]PointerID
	handlers   map[event.Action]func(p Pointer, active bool) bool
	mapping    *keymap.Mapping
	localMap   *keymap.Mapping
	transforms []f32.Affine2D
	focus      *FocusChain
	frame      uint64
}

type pointerState struct {
	device int
	info   Pointer
	loaded uint64

	events  []event.Event
	sawEmit bool

	held      bool
	heldFresh bool
	hovered   Hoverable
	heldNode  Hoverable

	scrollNode Scroller
	scrollHeld bool

	handled bool
	search  *hitSearch
}

// NewHoverChain returns an empty hover dispatcher resolving against the
// default mapping until a MappingSource is found above it.
func NewHoverChain() *HoverChain {
	return &HoverChain{
		PointerTimeout: 60,
		byDevice:       make(map[int]PointerID),
		handlers:       make(map[event.Action]func(Pointer, bool) bool),
		localMap:       keymap.Default(),
	}
}

// Load registers or refreshes the pointer identified by device,
// returning its stable handle. The same device keeps the same handle
// across frames for as long as it is refreshed.
func (h *HoverChain) Load(device int, p Pointer) PointerID {
	if id, ok := h.byDevice[device]; ok {
		if st := h.pointers.Get(id.id); st != nil {
			st.info = p
			st.loaded = h.frame
			return id
		}
		delete(h.byDevice, device)
	}
	id := PointerID{id: h.pointers.Alloc(pointerState{
		device: device,
		info:   p,
		loaded: h.frame,
		search: &hitSearch{chain: h},
	})}
	h.byDevice[device] = id
	return id
}

// Remove forgets a pointer immediately, e.g. when a touch contact
// ends. Its handle becomes invalid.
func (h *HoverChain) Remove(id PointerID) {
	st := h.pointers.Get(id.id)
	if st == nil {
		return
	}
	st.search.Stop()
	delete(h.byDevice, st.device)
	h.pointers.Free(id.id)
}

// EmitEvent reports a raw event from one pointer. Events buffer until
// the next frame resolves them against the mapping. Emitting marks the
// pointer held for the frame; a frame without emits counts as a
// release.
func (h *HoverChain) EmitEvent(id PointerID, e event.Event) {
	st := h.get(id)
	st.events = append(st.events, e)
	st.sawEmit = true
}

// On registers a chain-local handler for action, consulted when the
// held node does not consume it.
func (h *HoverChain) On(action event.Action, fn func(p Pointer, active bool) bool) {
	h.handlers[action] = fn
}

// Info returns the last loaded state of a pointer.
func (h *HoverChain) Info(id PointerID) Pointer {
	return h.get(id).info
}

// HoveredNode returns the node under the pointer as of the last
// completed draw.
func (h *HoverChain) HoveredNode(id PointerID) Hoverable {
	return h.get(id).hovered
}

// HeldNode returns the node latched to the pointer: the hovered node,
// frozen for the duration of a press.
func (h *HoverChain) HeldNode(id PointerID) Hoverable {
	return h.get(id).heldNode
}

// ScrollTarget returns the scroller currently bound to the pointer.
func (h *HoverChain) ScrollTarget(id PointerID) Scroller {
	return h.get(id).scrollNode
}

// IsHovered reports whether any pointer hovers n.
func (h *HoverChain) IsHovered(n tree.Node) bool {
	hovered := false
	h.pointers.Each(func(_ arena.ID, st *pointerState) {
		if st.hovered != nil && tree.Node(st.hovered) == n {
			hovered = true
		}
	})
	return hovered
}

// RunInputAction routes an action from one pointer: first to the held
// node, then to chain-local handlers. Active actions are dropped while
// the pointer has strayed off the node it pressed on, so a release off
// the pressed widget never clicks it.
func (h *HoverChain) RunInputAction(id PointerID, action event.Action, active bool) bool {
	return h.runInputAction(h.get(id), action, active)
}

// PushTransform composes t onto the coordinate mapping applied to
// pointer positions during hit search. Transform links push on entering
// their subtree and pop on leaving it.
func (h *HoverChain) PushTransform(t f32.Affine2D) {
	h.transforms = append(h.transforms, t)
}

// PopTransform undoes the most recent PushTransform.
func (h *HoverChain) PopTransform() {
	h.transforms = h.transforms[:len(h.transforms)-1]
}

func (h *HoverChain) Resize(cx *tree.Context, space f32.Point) f32.Point {
	h.mapping = h.localMap
	if src, ok := findProvider[MappingSource](h.Parent(), h.child); ok {
		h.mapping = src.Mapping()
	}
	h.focus = nil
	if fc, ok := findProvider[*FocusChain](h.Parent(), h.child); ok {
		h.focus = fc
	}
	return resizeLink(cx, h, space)
}

func (h *HoverChain) Draw(cx *tree.Context, bounds f32.Rectangle) {
	h.beforeDraw(cx)
	drawLink(cx, h, bounds)
	h.afterDraw(cx)
}

// beforeDraw resolves the events buffered since the last frame against
// the previous frame's hover state, then arms one hit search per
// active pointer over the chain's subtree.
func (h *HoverChain) beforeDraw(cx *tree.Context) {
	h.frame = cx.FrameCount
	h.pointers.Each(func(_ arena.ID, st *pointerState) {
		if st.sawEmit && !st.held {
			// Press transition: latch the node under the cursor.
			st.held = true
			st.heldNode = st.hovered
			st.heldFresh = true
		}
		action, active := h.mapping.Resolve(st.events)
		st.events = st.events[:0]
		if action != event.Frame {
			if h.runInputAction(st, action, active) {
				st.handled = true
			}
		}
		if !st.info.Disabled {
			st.search.pos = st.info.Position
			st.search.scroll = st.info.Scroll
			st.search.result = nil
			st.search.scrollResult = nil
			cx.StartBranch(st.search, h)
		}
	})
}

// afterDraw harvests the hit searches, re-syncs held and scroll state,
// applies focus-follows-hover and fires the per-pointer frame action.
func (h *HoverChain) afterDraw(cx *tree.Context) {
	var expired []arena.ID
	h.pointers.Each(func(id arena.ID, st *pointerState) {
		if cx.FrameCount-st.loaded > h.PointerTimeout {
			expired = append(expired, id)
			return
		}
		if !st.info.Disabled {
			st.hovered = st.search.result
		}
		if !st.sawEmit {
			// No emits since the last frame: the press is over.
			st.held = false
			st.heldNode = st.hovered
		}
		st.sawEmit = false

		scrolling := st.info.Scroll != (f32.Point{})
		if !st.scrollHeld || !scrolling {
			st.scrollNode = st.search.scrollResult
		}
		st.scrollHeld = scrolling
		if scrolling && st.scrollNode != nil {
			st.scrollNode.ScrollBy(st.info.Scroll)
			st.info.Scroll = f32.Point{}
		}

		if st.heldFresh {
			st.heldFresh = false
			if h.focus != nil {
				if f, ok := st.heldNode.(Focusable); ok {
					h.focus.SetFocus(f)
				} else {
					h.focus.ClearFocus()
				}
			}
		}

		if !st.handled {
			h.runInputAction(st, event.Frame, false)
		}
		st.handled = false
	})
	for _, id := range expired {
		h.Remove(PointerID{id: id})
	}
}

func (h *HoverChain) runInputAction(st *pointerState, action event.Action, active bool) bool {
	target := st.heldNode
	if target == nil {
		target = st.hovered
	}
	// Anti-ghost-click guard: a press latched on one node must not fire
	// active actions once the pointer hovers another.
	ghost := active && st.held && st.hovered != st.heldNode
	if target != nil && !ghost {
		if target.PointerAction(st.info, action, active) {
			return true
		}
	}
	if fn, ok := h.handlers[action]; ok {
		if fn(st.info, active) {
			return true
		}
	}
	if action == event.Frame && st.hovered != nil {
		st.hovered.PointerIdle(st.info)
	}
	return false
}

func (h *HoverChain) get(id PointerID) *pointerState {
	st := h.pointers.Get(id.id)
	if st == nil {
		panic("input: use of an unknown pointer id")
	}
	return st
}

func (h *HoverChain) pointerPos(p f32.Point) f32.Point {
	for _, t := range h.transforms {
		p = t.Transform(p)
	}
	return p
}

// hitSearch finds the topmost hoverable under one position, honoring
// input-blocking nodes and the hover chain's transform stack, and
// records the innermost scroller able to consume the frame's scroll
// delta.
type hitSearch struct {
	tree.ActionState

	chain  *HoverChain
	pos    f32.Point
	scroll f32.Point

	result       Hoverable
	scrollResult Scroller
}

func (s *hitSearch) BeforeDraw(n tree.Node) {
	p := s.chain.pointerPos(s.pos)
	if !p.In(n.Base().Bounds()) {
		return
	}
	if h, ok := n.(Hoverable); ok {
		if h.BlocksInput() {
			s.result = h
		} else if s.result == nil {
			// Pointer-transparent nodes take the hit only over nothing.
			s.result = h
		}
	}
	if sc, ok := n.(Scroller); ok && sc.CanScroll(s.scroll) {
		// Pre-order, so the last containing scroller is the innermost
		// one still able to move; saturated ones keep their ancestor.
		s.scrollResult = sc
	}
}
