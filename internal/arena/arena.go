// Package arena provides a growable, handle-addressed slot store.
//
// The tree owns all of its nodes through one Arena and links parent to child
// by Ref instead of by pointer, so there are no ownership cycles and no
// per-node heap allocation for the links. Freed slots are recycled through a
// free list; every free bumps the slot's generation so that stale refs held
// across a compaction are detected instead of silently resolving to the new
// occupant.
//
// Arena is not safe for concurrent use; the owning tree provides whatever
// synchronization discipline it needs.
package arena

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Ref is a safe reference to an arena slot. It includes the generation to
// detect stale references after the slot has been freed and reused.
type Ref struct {
	Index uint32
	Gen   uint32
}

type slot[T any] struct {
	value T
	gen   uint32
	dead  bool
}

// Arena holds values of type T in index-addressed slots.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  *roaring.Bitmap
}

// New creates an empty arena with room for capHint values before growing.
func New[T any](capHint int) *Arena[T] {
	if capHint < 0 {
		capHint = 0
	}
	return &Arena[T]{
		slots: make([]slot[T], 0, capHint),
		live:  roaring.New(),
	}
}

// Alloc stores v in a free slot and returns its ref. Slot indexes are
// reused after Free; the returned ref's generation distinguishes occupants.
func (a *Arena[T]) Alloc(v T) Ref {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.dead = false
		a.live.Add(idx)
		return Ref{Index: idx, Gen: s.gen}
	}

	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot[T]{value: v})
	a.live.Add(idx)
	return Ref{Index: idx, Gen: 0}
}

// Get returns a pointer to the value for ref, or false when ref is out of
// range, freed, or stale. The pointer is invalidated by the next Alloc.
func (a *Arena[T]) Get(ref Ref) (*T, bool) {
	if int(ref.Index) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[ref.Index]
	if s.dead || s.gen != ref.Gen {
		return nil, false
	}
	return &s.value, true
}

// MustGet is Get for refs the arena itself handed out and never freed.
// It panics on a stale ref, which indicates internal bookkeeping corruption.
func (a *Arena[T]) MustGet(ref Ref) *T {
	v, ok := a.Get(ref)
	if !ok {
		panic(fmt.Sprintf("arena: stale ref %d@%d", ref.Index, ref.Gen))
	}
	return v
}

// Free releases the slot for ref and returns whether it was live. The slot's
// generation is bumped so existing refs to it stop resolving.
func (a *Arena[T]) Free(ref Ref) bool {
	if int(ref.Index) >= len(a.slots) {
		return false
	}
	s := &a.slots[ref.Index]
	if s.dead || s.gen != ref.Gen {
		return false
	}
	var zero T
	s.value = zero
	s.dead = true
	s.gen++
	a.live.Remove(ref.Index)
	a.free = append(a.free, ref.Index)
	return true
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return int(a.live.GetCardinality())
}

// Cap returns the total number of slots ever allocated, live or free.
func (a *Arena[T]) Cap() int {
	return len(a.slots)
}

// Refs iterates the refs of all live slots in index order.
func (a *Arena[T]) Refs() iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		it := a.live.Iterator()
		for it.HasNext() {
			idx := it.Next()
			if !yield(Ref{Index: idx, Gen: a.slots[idx].gen}) {
				return
			}
		}
	}
}
