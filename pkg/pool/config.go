package pool

import (
	"go.uber.org/zap"

	"github.com/ajitpratap0/opalloc/pkg/errors"
	"github.com/ajitpratap0/opalloc/pkg/metrics"
)

// GrowthMode selects how capacity is computed when the pool is exhausted.
type GrowthMode int

const (
	// GrowDoubling doubles the current capacity.
	GrowDoubling GrowthMode = iota
	// GrowLinear adds InitialCount slots each time.
	GrowLinear
)

// String returns the mode name used in logs, dumps, and config files.
func (m GrowthMode) String() string {
	if m == GrowLinear {
		return "linear"
	}
	return "doubling"
}

// AllocationMode selects how slot storage is provisioned.
type AllocationMode int

const (
	// AllocIndividual allocates each slot lazily, one allocation per slot,
	// on the first acquisition that needs it.
	AllocIndividual AllocationMode = iota
	// AllocChunked eagerly allocates contiguous runs of slots sharing one
	// backing allocation, at initialization and at every growth step.
	AllocChunked
)

// String returns the mode name used in logs, dumps, and config files.
func (m AllocationMode) String() string {
	if m == AllocChunked {
		return "chunked"
	}
	return "individual"
}

// Config describes a pool. It is immutable after New.
type Config struct {
	// ObjectSize is the fixed size in bytes of every pooled object.
	ObjectSize int
	// InitialCount is the starting slot-table capacity; it is also the
	// linear growth increment.
	InitialCount int
	// Growth selects the capacity policy on exhaustion.
	Growth GrowthMode
	// Allocation selects eager chunked or lazy individual provisioning.
	Allocation AllocationMode
}

// Validate reports the first configuration violation, if any.
func (c Config) Validate() error {
	if c.ObjectSize <= 0 {
		return errors.Newf(errors.ErrorTypeConfig, "object size must be positive, got %d", c.ObjectSize)
	}
	if c.InitialCount <= 0 {
		return errors.Newf(errors.ErrorTypeConfig, "initial count must be positive, got %d", c.InitialCount)
	}
	if c.Growth != GrowDoubling && c.Growth != GrowLinear {
		return errors.Newf(errors.ErrorTypeConfig, "unknown growth mode %d", int(c.Growth))
	}
	if c.Allocation != AllocIndividual && c.Allocation != AllocChunked {
		return errors.Newf(errors.ErrorTypeConfig, "unknown allocation mode %d", int(c.Allocation))
	}
	return nil
}

// Option customizes a pool at construction time.
type Option func(*Pool)

// WithReporter installs the failure sink invoked on every failure path.
// The default is DefaultReporter.
func WithReporter(r Reporter) Option {
	return func(p *Pool) {
		if r != nil {
			p.report = r
		}
	}
}

// WithLogger attaches a logger for growth and lifecycle events. The default
// is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.log = l
		}
	}
}

// WithAllocator replaces the backing allocator. The default draws from the
// Go heap.
func WithAllocator(a Allocator) Option {
	return func(p *Pool) {
		if a != nil {
			p.alloc = a
		}
	}
}

// WithCollector attaches Prometheus instrumentation for pool activity.
func WithCollector(c *metrics.Collector) Option {
	return func(p *Pool) {
		p.col = c
	}
}
