// SPDX-License-Identifier: MIT

//go:build unix

package errslot

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// chunkBytes is the size of one shared mapping. Records are packed onto it,
// so live slots cost one mapping per recordsPerChunk rather than one each.
const chunkBytes = 64 << 10

var recordsPerChunk = chunkBytes / int(unsafe.Sizeof(record{}))

// chunk is one anonymous shared mapping carved into records.
type chunk struct {
	mem  []byte
	free []int // indices of unused records
	used int
}

func (c *chunk) at(i int) *record {
	return (*record)(unsafe.Pointer(&c.mem[i*int(unsafe.Sizeof(record{}))]))
}

// recordPool hands out records from shared chunks. A chunk is unmapped once
// its last record is released, except for one spare kept to absorb churn.
type recordPool struct {
	mu      sync.Mutex
	partial []*chunk // chunks with at least one free record
	spare   *chunk   // fully free chunk kept mapped
	mapped  int
}

var pool recordPool

// allocRecord places a record on a shared mapping. If no mapping can be
// made the record falls back to the Go heap and release is nil.
func allocRecord() (*record, func()) {
	c, i, ok := pool.get()
	if !ok {
		return new(record), nil
	}
	rec := c.at(i)
	rec.kind.Store(int32(KindNone))
	rec.context.Store(0)
	rec.latch.Store(latchEmpty)

	return rec, func() { pool.put(c, i) }
}

func (p *recordPool) get() (*chunk, int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.partial) == 0 {
		c := p.spare
		p.spare = nil
		if c == nil {
			var ok bool
			if c, ok = p.mapChunk(); !ok {
				return nil, 0, false
			}
		}
		p.partial = append(p.partial, c)
	}

	last := len(p.partial) - 1
	c := p.partial[last]
	i := c.free[len(c.free)-1]
	c.free = c.free[:len(c.free)-1]
	c.used++
	if len(c.free) == 0 {
		p.partial = p.partial[:last]
	}

	return c, i, true
}

func (p *recordPool) put(c *chunk, i int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A full chunk becomes partial again on its first release.
	if len(c.free) == 0 {
		p.partial = append(p.partial, c)
	}
	c.free = append(c.free, i)
	c.used--
	if c.used > 0 {
		return
	}

	p.dropPartial(c)
	if p.spare == nil {
		p.spare = c
		return
	}
	_ = unix.Munmap(c.mem)
	p.mapped--
}

func (p *recordPool) dropPartial(c *chunk) {
	for k, pc := range p.partial {
		if pc == c {
			last := len(p.partial) - 1
			p.partial[k] = p.partial[last]
			p.partial[last] = nil
			p.partial = p.partial[:last]
			return
		}
	}
}

// mapChunk must be called with mu held.
func (p *recordPool) mapChunk() (*chunk, bool) {
	mem, err := unix.Mmap(-1, 0, chunkBytes, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_ANON)
	if err != nil {
		return nil, false
	}
	c := &chunk{mem: mem, free: make([]int, recordsPerChunk)}
	// Hand out low indices first.
	for k := range c.free {
		c.free[k] = recordsPerChunk - 1 - k
	}
	p.mapped++

	return c, true
}

// mappings returns the number of chunks currently mapped.
func (p *recordPool) mappings() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.mapped
}
