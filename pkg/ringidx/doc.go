// Package ringidx implements a fixed-capacity circular buffer whose stored
// values are addressed by a monotonically increasing absolute index rather
// than by position within the buffer.
//
// A single constructor call returns three capability-restricted views over
// one shared backing array: a Producer that appends at the tail, a Consumer
// that removes from the head, and a Reader that performs random-access,
// non-destructive reads. Only one Producer and one Consumer may exist per
// buffer; Readers are cheaply duplicable and never contend with each other.
//
// Absolute indices are uint64 and wrap around when the range is exhausted;
// every operation that accepts or returns an index is correct across that
// wraparound. Push, Shift and the Reader methods never block on data
// availability — a full push or an empty shift returns immediately with
// ok == false, and the caller is expected to retry with its own backoff.
package ringidx
