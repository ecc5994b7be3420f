// SPDX-License-Identifier: Unlicense OR MIT

package arena

import "testing"

func TestAllocGet(t *testing.T) {
	var a Arena[string]
	id := a.Alloc("first")
	if v := a.Get(id); v == nil || *v != "first" {
		t.Fatalf("Get after Alloc = %v, want first", v)
	}
	if a.Len() != 1 {
		t.Errorf("Len = %d, want 1", a.Len())
	}
}

func TestStaleHandleMisses(t *testing.T) {
	var a Arena[int]
	id := a.Alloc(1)
	if !a.Free(id) {
		t.Fatal("Free reported id not live")
	}
	if a.Get(id) != nil {
		t.Error("Get succeeded on a freed handle")
	}
	if a.Free(id) {
		t.Error("double Free reported live")
	}

	// The slot is reused, but the old handle must still miss.
	id2 := a.Alloc(2)
	if id2.Index() != id.Index() {
		t.Fatalf("slot not reused: index %d, want %d", id2.Index(), id.Index())
	}
	if a.Get(id) != nil {
		t.Error("stale handle aliases the reused slot")
	}
	if v := a.Get(id2); v == nil || *v != 2 {
		t.Errorf("Get on reused slot = %v, want 2", v)
	}
}

func TestEachSkipsFreed(t *testing.T) {
	var a Arena[int]
	keep := a.Alloc(1)
	a.Free(a.Alloc(2))
	a.Alloc(3)

	sum := 0
	a.Each(func(id ID, v *int) {
		sum += *v
	})
	if sum != 4 {
		t.Errorf("Each visited values summing to %d, want 4", sum)
	}
	if a.Len() != 2 {
		t.Errorf("Len = %d, want 2", a.Len())
	}
	if v := a.Get(keep); v == nil || *v != 1 {
		t.Errorf("live handle lost after churn: %v", v)
	}
}

func TestFreeZeroesValue(t *testing.T) {
	var a Arena[*int]
	n := 7
	id := a.Alloc(&n)
	a.Free(id)
	// The reused slot must not leak the previous pointer.
	id2 := a.Alloc(nil)
	if v := a.Get(id2); v == nil || *v != nil {
		t.Error("reclaimed slot kept the previous value")
	}
}
