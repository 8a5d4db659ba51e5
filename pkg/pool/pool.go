package pool

import (
	"go.uber.org/zap"

	"github.com/ajitpratap0/opalloc/pkg/errors"
	"github.com/ajitpratap0/opalloc/pkg/metrics"
)

// slot is one logical object storage unit: an occupancy flag plus raw bytes
// sized to the pool's object size. Its identity is the storage address,
// which never changes for the lifetime of the pool.
type slot struct {
	inUse bool
	data  []byte
}

// Pool is a fixed-object-size memory pool. Create one with New; the zero
// value and the nil pointer are invalid handles that fail every operation.
type Pool struct {
	cfg    Config
	stride int // chunk stride; ObjectSize rounded up to slotAlign

	// table is the slot table. A nil entry is empty (no backing storage
	// yet); under AllocIndividual empty entries form a contiguous suffix.
	table []*slot

	// chunks records every owned chunk allocation, in creation order.
	// Only these base buffers are release targets at teardown.
	chunks [][]byte

	alloc  Allocator
	report Reporter
	log    *zap.Logger
	col    *metrics.Collector
	closed bool
}

// Stats is a snapshot of pool occupancy.
type Stats struct {
	// ObjectSize is the fixed size in bytes of every pooled object.
	ObjectSize int
	// MaximumObjects is the current slot-table capacity.
	MaximumObjects int
	// ActiveObjects is the number of acquired-and-not-released objects.
	ActiveObjects int
}

// New creates a pool from cfg. Under AllocChunked the first chunk of
// InitialCount slots is materialized eagerly; under AllocIndividual the
// table starts empty and slots materialize on first acquisition.
//
// On failure the reporter is invoked, any partially-created storage from
// this call is released, and a nil pool plus a structured error is
// returned.
func New(cfg Config, opts ...Option) (*Pool, error) {
	p := &Pool{
		cfg:    cfg,
		stride: alignUp(cfg.ObjectSize),
		alloc:  heapAllocator{},
		report: DefaultReporter,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := cfg.Validate(); err != nil {
		p.report(callsite(0), err.Error())
		return nil, err
	}

	if cfg.Allocation == AllocChunked {
		p.table = make([]*slot, 0, cfg.InitialCount)
		buf, err := p.alloc.Alloc(cfg.InitialCount * p.stride)
		if err != nil {
			return nil, p.failAlloc("could not allocate initial chunk", err)
		}
		p.chunks = append(p.chunks, buf)
		p.bindChunk(buf, cfg.InitialCount)
	} else {
		p.table = make([]*slot, cfg.InitialCount)
	}

	if p.col != nil {
		p.col.SetCapacity(len(p.table))
	}
	p.log.Debug("pool created",
		zap.Int("object_size", cfg.ObjectSize),
		zap.Int("initial_count", cfg.InitialCount),
		zap.Stringer("growth", cfg.Growth),
		zap.Stringer("allocation", cfg.Allocation),
	)
	return p, nil
}

// Acquire returns the address of a zero-filled, exclusively-owned object
// slot. The lowest free slot satisfies the request (first-fit); when every
// slot is occupied the pool grows once and the scan repeats, which is then
// guaranteed to succeed. The returned buffer stays valid, at a stable
// address, until Close.
func (p *Pool) Acquire() ([]byte, error) {
	if p == nil || p.closed {
		return nil, p.failInvalid("acquire on uninitialized pool")
	}

	buf, done, err := p.scan()
	if done {
		return buf, err
	}

	if err := p.grow(); err != nil {
		return nil, err
	}

	// Growth guarantees at least one satisfiable entry, so this second
	// scan cannot exhaust.
	buf, _, err = p.scan()
	return buf, err
}

// scan walks the slot table ascending and claims the first satisfiable
// entry. done is false only when every entry is occupied and the caller
// should grow.
func (p *Pool) scan() (buf []byte, done bool, err error) {
	for i, s := range p.table {
		switch {
		case s == nil:
			// Empty entry: individual mode allocates the slot now.
			b, aerr := p.alloc.Alloc(p.cfg.ObjectSize)
			if aerr != nil {
				return nil, true, p.failAlloc("could not allocate object slot", aerr)
			}
			s = &slot{inUse: true, data: b}
			p.table[i] = s
		case !s.inUse:
			s.inUse = true
		default:
			continue
		}
		clear(s.data)
		if p.col != nil {
			p.col.Acquired()
		}
		return s.data, true, nil
	}
	return nil, false, nil
}

// grow extends the slot table according to the growth mode. It is
// all-or-nothing: on failure, capacity and every existing entry are left
// unchanged and the pending acquisition fails. Existing slots are never
// moved, reordered, or released.
func (p *Pool) grow() error {
	oldCap := len(p.table)
	growSize := oldCap // doubling grows by the current capacity
	if p.cfg.Growth == GrowLinear {
		growSize = p.cfg.InitialCount
	}

	if p.cfg.Allocation == AllocChunked {
		buf, err := p.alloc.Alloc(growSize * p.stride)
		if err != nil {
			return p.failAlloc("unable to grow allocation pool", err)
		}
		p.chunks = append(p.chunks, buf)
		p.bindChunk(buf, growSize)
	} else {
		// Newly appended entries are explicitly empty.
		for i := 0; i < growSize; i++ {
			p.table = append(p.table, nil)
		}
	}

	if p.col != nil {
		p.col.Grew(len(p.table))
	}
	p.log.Debug("pool grown",
		zap.Int("old_capacity", oldCap),
		zap.Int("new_capacity", len(p.table)),
	)
	return nil
}

// bindChunk appends one table entry per slot carved out of buf at the
// pool's stride. Interior slots are non-owning views; only buf itself,
// recorded in p.chunks, is a release target.
func (p *Pool) bindChunk(buf []byte, count int) {
	for i := 0; i < count; i++ {
		off := i * p.stride
		p.table = append(p.table, &slot{data: buf[off : off+p.cfg.ObjectSize : off+p.stride]})
	}
}

// Release marks the slot holding obj free so a future acquisition may
// reuse it. The slot's storage is not released. Releasing an address that
// is already free is an idempotent no-op; releasing an address the pool
// does not own, or releasing into an uninitialized pool, reports
// invalid_handle and leaves the pool unchanged.
func (p *Pool) Release(obj []byte) error {
	if p == nil || p.closed {
		return p.failInvalid("release on uninitialized pool")
	}
	if len(obj) == 0 {
		return p.failInvalid("release of empty address")
	}

	target := &obj[0]
	for _, s := range p.table {
		if s == nil || &s.data[0] != target {
			continue
		}
		if !s.inUse {
			p.log.Debug("double release ignored")
			return nil
		}
		s.inUse = false
		if p.col != nil {
			p.col.Released()
		}
		return nil
	}
	return p.failInvalid("release of address not owned by pool")
}

// Stats returns a snapshot of the pool without mutating it. An
// uninitialized pool yields the zero value.
func (p *Pool) Stats() Stats {
	if p == nil || p.closed {
		return Stats{}
	}
	st := Stats{
		ObjectSize:     p.cfg.ObjectSize,
		MaximumObjects: len(p.table),
	}
	for _, s := range p.table {
		if s == nil {
			// Empty entries form a contiguous suffix; nothing occupied
			// can follow.
			break
		}
		if s.inUse {
			st.ActiveObjects++
		}
	}
	return st
}

// Close releases every resource the pool owns and invalidates the pool.
// The release order mirrors the allocation topology: individual slots are
// freed one by one, chunks once at their base. Any use of the pool or of a
// previously returned address after Close is undefined. Closing an
// uninitialized pool reports invalid_handle and is a no-op.
func (p *Pool) Close() error {
	if p == nil || p.closed {
		return p.failInvalid("teardown of uninitialized pool")
	}
	p.closed = true

	if p.cfg.Allocation == AllocChunked {
		for _, c := range p.chunks {
			p.alloc.Free(c)
		}
	} else {
		for _, s := range p.table {
			if s == nil {
				continue
			}
			p.alloc.Free(s.data)
		}
	}
	p.chunks = nil
	p.table = nil

	p.log.Debug("pool closed")
	return nil
}

// Config returns the pool's immutable configuration.
func (p *Pool) Config() Config {
	if p == nil {
		return Config{}
	}
	return p.cfg
}

func (p *Pool) failInvalid(msg string) error {
	p.reporter()(callsite(1), msg)
	p.colFailed(errors.ErrorTypeInvalidHandle)
	return errors.New(errors.ErrorTypeInvalidHandle, msg)
}

func (p *Pool) failAlloc(msg string, cause error) error {
	p.reporter()(callsite(1), msg)
	p.colFailed(errors.ErrorTypeAllocationFailure)
	return errors.Wrap(cause, errors.ErrorTypeAllocationFailure, msg)
}

func (p *Pool) colFailed(kind errors.ErrorType) {
	if p != nil && p.col != nil {
		p.col.Failed(string(kind))
	}
}
