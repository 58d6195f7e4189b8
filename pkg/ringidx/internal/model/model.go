// Package model provides a deliberately simple, single-threaded reference
// model of ringidx's publicly observable behavior.
//
// The model favors obvious correctness over performance: it keeps the live
// region as a plain slice and computes liveness with a single wrapping
// subtraction instead of the two-branch case analysis the production
// index arithmetic uses. Property tests run the same operation sequence
// against both and compare results, so the two independent formulations
// of "is this absolute index live" serve as a check on each other.
package model

// Buffer is a reference ring buffer with no capacity-plus-one slot array,
// no locks, and no wraparound-aware branching: liveness is just
// (idx - offset) < len(items), computed with ordinary wrapping uint64
// subtraction.
type Buffer[T any] struct {
	items    []T
	offset   uint64
	capacity int
}

// New returns an empty reference buffer of the given capacity, with the
// first push assigned absolute index initial.
func New[T any](initial uint64, capacity int) *Buffer[T] {
	return &Buffer[T]{offset: initial, capacity: capacity}
}

func (b *Buffer[T]) IsEmpty() bool { return len(b.items) == 0 }
func (b *Buffer[T]) IsFull() bool  { return len(b.items) >= b.capacity }

// Push appends v, or reports false if the buffer is already at capacity.
func (b *Buffer[T]) Push(v T) bool {
	if len(b.items) >= b.capacity {
		return false
	}
	b.items = append(b.items, v)
	return true
}

// Shift removes and returns the oldest item, if any.
func (b *Buffer[T]) Shift() (idx uint64, v T, ok bool) {
	if len(b.items) == 0 {
		return 0, v, false
	}
	idx = b.offset
	v = b.items[0]
	b.items = b.items[1:]
	b.offset++
	return idx, v, true
}

// ShiftTo removes every item up to and including absolute index to.
func (b *Buffer[T]) ShiftTo(to uint64) (v []T, ok bool) {
	k, found := b.locate(to)
	if !found {
		return nil, false
	}
	v = append([]T(nil), b.items[:k+1]...)
	b.items = b.items[k+1:]
	b.offset = to + 1
	return v, true
}

// Get returns the value at absolute index idx, if it is currently live.
func (b *Buffer[T]) Get(idx uint64) (v T, ok bool) {
	k, found := b.locate(idx)
	if !found {
		return v, false
	}
	return b.items[k], true
}

// GetFrom returns a copy of up to length values starting at idx. A zero
// length, or a length that would overrun the live tail, extends the run to
// the tail.
func (b *Buffer[T]) GetFrom(idx uint64, length int) (from, to uint64, v []T, ok bool) {
	k, found := b.locate(idx)
	if !found {
		return 0, 0, nil, false
	}
	end := len(b.items)
	if length != 0 && k+length <= len(b.items) {
		end = k + length
	}
	out := append([]T(nil), b.items[k:end]...)
	if len(out) == 0 {
		return 0, 0, nil, false
	}
	return idx, idx + uint64(len(out)-1), out, true
}

// GetAll returns a copy of the entire live region.
func (b *Buffer[T]) GetAll() (from, to uint64, v []T, ok bool) {
	if len(b.items) == 0 {
		return 0, 0, nil, false
	}
	out := append([]T(nil), b.items...)
	return b.offset, b.offset + uint64(len(out)-1), out, true
}

// locate returns the 0-based position of absolute index idx among the live
// items, using plain wrapping subtraction: the distance idx has traveled
// forward from offset, modulo 2^64, is its position whenever that distance
// is less than the number of live items.
func (b *Buffer[T]) locate(idx uint64) (int, bool) {
	if len(b.items) == 0 {
		return 0, false
	}
	d := idx - b.offset
	if d < uint64(len(b.items)) {
		return int(d), true
	}
	return 0, false
}
