package pool

import (
	"unsafe"

	"github.com/ajitpratap0/opalloc/pkg/errors"
)

// Typed binds one pool to a concrete element type and exposes type-checked
// acquire and release over it, built strictly on the core engine's four
// operations. The underlying pool is created lazily on first Acquire, so
// the zero value is ready to use with DefaultTypedCount slots, doubling
// growth, and chunked allocation; NewTyped customizes that.
//
// T must not contain pointers: slot storage is raw bytes, invisible to the
// garbage collector, so pointers stored there would not keep their
// referents alive.
//
// Like Pool, a Typed instance is single-writer.
type Typed[T any] struct {
	cfg  Config
	opts []Option
	pool *Pool
}

// DefaultTypedCount is the initial slot count a zero-value Typed uses.
const DefaultTypedCount = 16

// NewTyped creates a typed pool with explicit sizing and modes. ObjectSize
// is derived from T and must not be set in cfg.
func NewTyped[T any](initialCount int, growth GrowthMode, alloc AllocationMode, opts ...Option) *Typed[T] {
	return &Typed[T]{
		cfg: Config{
			InitialCount: initialCount,
			Growth:       growth,
			Allocation:   alloc,
		},
		opts: opts,
	}
}

// Acquire returns a zero-valued *T backed by an exclusively-owned slot.
// The first call creates the underlying pool.
func (t *Typed[T]) Acquire() (*T, error) {
	if t.pool == nil {
		if err := t.init(); err != nil {
			return nil, err
		}
	}
	buf, err := t.pool.Acquire()
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&buf[0])), nil
}

// Release returns obj to the pool. obj must have been returned by Acquire
// on this same instance.
func (t *Typed[T]) Release(obj *T) error {
	if t.pool == nil || obj == nil {
		return t.pool.failInvalid("typed release without matching acquire")
	}
	size := int(unsafe.Sizeof(*obj))
	return t.pool.Release(unsafe.Slice((*byte)(unsafe.Pointer(obj)), size))
}

// Stats returns the underlying pool's snapshot; the zero value before the
// first Acquire.
func (t *Typed[T]) Stats() Stats {
	return t.pool.Stats()
}

// Close tears down the underlying pool. A Typed that never acquired has
// nothing to release and Close is a successful no-op.
func (t *Typed[T]) Close() error {
	if t.pool == nil {
		return nil
	}
	err := t.pool.Close()
	t.pool = nil
	return err
}

// Core exposes the underlying pool for stats, dumps, or mixed typed/raw
// use. It is nil before the first Acquire.
func (t *Typed[T]) Core() *Pool {
	return t.pool
}

func (t *Typed[T]) init() error {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return errors.New(errors.ErrorTypeConfig, "typed pool element type has zero size")
	}
	cfg := t.cfg
	cfg.ObjectSize = size
	if cfg.InitialCount == 0 {
		cfg.InitialCount = DefaultTypedCount
		cfg.Growth = GrowDoubling
		cfg.Allocation = AllocChunked
	}
	p, err := New(cfg, t.opts...)
	if err != nil {
		return err
	}
	t.pool = p
	return nil
}
