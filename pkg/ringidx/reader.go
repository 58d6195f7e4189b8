package ringidx

// Reader performs non-destructive, random-access reads over a shared
// buffer. Unlike Producer and Consumer, a Reader is cheaply duplicable via
// Clone: any number of Readers may exist over one buffer, and they never
// contend with each other, since they only ever take read locks.
type Reader[T any] struct {
	buf *storage[T]
}

// Clone returns an independent Reader handle over the same buffer.
func (r Reader[T]) Clone() Reader[T] { return Reader[T]{buf: r.buf} }

// IsEmpty reports whether the buffer currently holds no live items.
func (r Reader[T]) IsEmpty() bool { return r.buf.isEmpty() }

// IsFull reports whether the buffer currently holds capacity live items.
func (r Reader[T]) IsFull() bool { return r.buf.isFull() }

// Get returns the value at absolute index idx, or ok == false if idx does
// not name a currently-live item.
func (r Reader[T]) Get(idx uint64) (uint64, T, bool) {
	r.buf.tailMu.RLock()
	defer r.buf.tailMu.RUnlock()
	r.buf.headMu.RLock()
	defer r.buf.headMu.RUnlock()

	n := len(r.buf.slots)
	filled := filledCount(r.buf.head, r.buf.tail, n)
	k, found := existsIndex(idx, r.buf.offset, filled)
	if !found {
		var zero T
		return 0, zero, false
	}

	pos := (r.buf.head + k) % n
	return idx, r.buf.slots[pos], true
}

// GetFrom returns a contiguous copy of up to length values starting at
// absolute index idx, as (from, to, values) where to is the absolute index
// of the last value returned. It returns ok == false if idx does not name a
// currently-live item. If length is 0, or idx+length would exceed the live
// region, the returned run extends to the current live tail.
func (r Reader[T]) GetFrom(idx uint64, length uint) (from, to uint64, values []T, ok bool) {
	r.buf.tailMu.RLock()
	defer r.buf.tailMu.RUnlock()
	r.buf.headMu.RLock()
	defer r.buf.headMu.RUnlock()

	n := len(r.buf.slots)
	filled := filledCount(r.buf.head, r.buf.tail, n)
	k, found := existsIndex(idx, r.buf.offset, filled)
	if !found {
		return 0, 0, nil, false
	}

	start := (r.buf.head + k) % n
	end := r.buf.tail
	if length != 0 && k+int(length) <= filled {
		end = (r.buf.head + k + int(length)) % n
	}

	r1, r2 := calcRange(start, end, n)
	out := make([]T, 0, r1.len()+r2.len())
	for i := r1.start; i < r1.end; i++ {
		out = append(out, r.buf.slots[i])
	}
	for i := r2.start; i < r2.end; i++ {
		out = append(out, r.buf.slots[i])
	}
	if len(out) == 0 {
		return 0, 0, nil, false
	}
	return idx, idx + uint64(len(out)-1), out, true
}

// GetAll returns a copy of the entire current live region, as
// (from, to, values).
func (r Reader[T]) GetAll() (from, to uint64, values []T, ok bool) {
	r.buf.tailMu.RLock()
	defer r.buf.tailMu.RUnlock()
	r.buf.headMu.RLock()
	defer r.buf.headMu.RUnlock()

	n := len(r.buf.slots)
	r1, r2 := calcRange(r.buf.head, r.buf.tail, n)
	out := make([]T, 0, r1.len()+r2.len())
	for i := r1.start; i < r1.end; i++ {
		out = append(out, r.buf.slots[i])
	}
	for i := r2.start; i < r2.end; i++ {
		out = append(out, r.buf.slots[i])
	}
	if len(out) == 0 {
		return 0, 0, nil, false
	}
	return r.buf.offset, r.buf.offset + uint64(len(out)-1), out, true
}
