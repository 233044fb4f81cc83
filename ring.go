// Package goring provides a fixed capacity circular buffer that overwrites
// the oldest unread slot when a new item is pushed into a full ring.
package goring

import "fmt"

// slot holds either a value or nothing.
type slot[T any] struct {
	value    T
	occupied bool
}

// Ring is a fixed capacity circular buffer with independent read and write
// cursors. Push never blocks and never fails: it stores the new item at the
// write cursor, discarding whatever was there. Pop takes the item at the read
// cursor, if any.
//
// Ring is not safe for concurrent use. Callers that share a Ring among
// goroutines must provide their own synchronization.
type Ring[T any] struct {
	slots    []slot[T]
	readIdx  int
	writeIdx int
}

// New returns a Ring with capacity empty slots. It panics when capacity is
// less than 1.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("goring: cannot create ring with non-positive capacity: %d", capacity))
	}
	return &Ring[T]{slots: make([]slot[T], capacity)}
}

// NewFromSlice returns a Ring whose capacity is len(items), with every slot
// occupied by the corresponding item. Both cursors start at the first item,
// so the first Push overwrites items[0], which is considered the oldest. It
// panics when items is empty.
func NewFromSlice[T any](items []T) *Ring[T] {
	if len(items) == 0 {
		panic("goring: cannot create ring from empty slice")
	}
	slots := make([]slot[T], len(items))
	for i, item := range items {
		slots[i] = slot[T]{value: item, occupied: true}
	}
	return &Ring[T]{slots: slots}
}

// Cap returns the number of slots in the ring.
func (r *Ring[T]) Cap() int { return len(r.slots) }

// looped maps an arbitrary non-negative index onto a slot position.
func (r *Ring[T]) looped(index int) int {
	return index % len(r.slots)
}

// Push stores item at the write cursor, replacing whatever occupied that
// slot, then advances the write cursor.
func (r *Ring[T]) Push(item T) {
	r.slots[r.writeIdx] = slot[T]{value: item, occupied: true}
	r.writeIdx = r.looped(r.writeIdx + 1)
}

// Pop removes and returns the item at the read cursor. When that slot is
// empty it returns the zero value and false. The read cursor advances either
// way; Pop does not search forward for the next occupied slot.
func (r *Ring[T]) Pop() (T, bool) {
	s := r.slots[r.readIdx]
	r.slots[r.readIdx] = slot[T]{} // release the value for collection
	r.readIdx = r.looped(r.readIdx + 1)
	return s.value, s.occupied
}
