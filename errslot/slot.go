// SPDX-License-Identifier: MIT

package errslot

import (
	"runtime"
	"sync/atomic"
)

// Latch states of a record. The transition empty -> writing is the only
// contended step; writing -> written publishes kind and context.
const (
	latchEmpty   int32 = 0
	latchWriting int32 = 1
	latchWritten int32 = 2
)

// record is the fixed-size layout packed onto shared chunks.
// All fields are atomics so host readers never race with lane writers.
type record struct {
	latch   atomic.Int32
	kind    atomic.Int32
	context atomic.Int64
}

// Slot is a handle to one error record. Copies of the pointer share the
// record; the backing memory is released once no *Slot refers to it.
type Slot struct {
	rec    *record
	shared bool // record lives on a shared mapping
}

// New allocates an empty Slot.
// Complexity: O(1); on unix systems records are packed onto shared chunks,
// so a new mapping is made only when every chunk is full.
func New() *Slot {
	rec, release := allocRecord()
	s := &Slot{rec: rec, shared: release != nil}
	if release != nil {
		// release captures the chunk and index only, never s.
		runtime.AddCleanup(s, func(free func()) { free() }, release)
	}

	return s
}

// Report latches kind and context if the slot is empty. Safe for concurrent
// use; it never blocks. Later reports, and reports of KindNone, are ignored.
func (s *Slot) Report(kind Kind, context int64) {
	if kind == KindNone {
		return
	}
	if !s.rec.latch.CompareAndSwap(latchEmpty, latchWriting) {
		return // someone else won
	}
	s.rec.kind.Store(int32(kind))
	s.rec.context.Store(context)
	s.rec.latch.Store(latchWritten)
	runtime.KeepAlive(s) // the record is recycled once s is collected
}

// Check returns a *SignCheckError when the slot holds a latched error and
// nil otherwise. The latch is left untouched.
func (s *Slot) Check() error {
	kind, context, ok := s.Snapshot()
	if !ok {
		return nil
	}

	return &SignCheckError{Kind: kind, Context: context}
}

// Snapshot reads the latched kind and context. ok is false while the slot is
// empty. A report that is still being written is waited for.
func (s *Slot) Snapshot() (kind Kind, context int64, ok bool) {
	state := s.rec.latch.Load()
	for state == latchWriting {
		runtime.Gosched()
		state = s.rec.latch.Load()
	}
	if state != latchWritten {
		runtime.KeepAlive(s)
		return KindNone, 0, false
	}
	kind, context = Kind(s.rec.kind.Load()), s.rec.context.Load()
	runtime.KeepAlive(s)

	return kind, context, true
}

// Filled reports whether an error is latched.
func (s *Slot) Filled() bool {
	_, _, ok := s.Snapshot()
	return ok
}

// Reset empties the slot so it can latch again. It must not run while
// evaluations are in flight.
func (s *Slot) Reset() {
	s.rec.kind.Store(int32(KindNone))
	s.rec.context.Store(0)
	s.rec.latch.Store(latchEmpty)
	runtime.KeepAlive(s)
}

// Shared reports whether the record lives on a shared memory mapping.
func (s *Slot) Shared() bool { return s.shared }
