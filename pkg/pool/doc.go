// Package pool implements a fixed-object-size memory pool that recycles
// freed slots instead of returning storage to the runtime, growing its
// backing storage only when every slot is in use. It targets workloads where
// interleaved allocation and deallocation of many same-sized objects would
// otherwise fragment the heap: long-running services, embedded targets, and
// hot paths with predictable object churn.
//
// # Architecture
//
// A Pool owns a slot table: an ordered sequence of slots, each one
// fixed-size storage plus an occupancy flag. Acquisition scans the table
// ascending and satisfies the lowest free slot (first-fit); on exhaustion
// the table grows once and the scan repeats, which is then guaranteed to
// succeed. Release flips a slot back to free without touching its storage,
// so the address a caller holds stays valid for the life of the pool.
//
// Two orthogonal strategies shape the pool:
//
//   - Growth: GrowDoubling multiplies capacity by two; GrowLinear adds
//     InitialCount slots each time. Capacity never shrinks.
//   - Allocation: AllocChunked eagerly carves slots out of one contiguous
//     backing allocation per growth step; AllocIndividual allocates each
//     slot lazily on first use.
//
// Teardown walks the ownership topology the allocation strategy built:
// individual slots are freed one by one, chunks are freed once at their
// base. The pool records chunk ownership explicitly, so release is correct
// by construction rather than re-derived from stride arithmetic.
//
// # Failure model
//
// The engine never panics on its own. Every failure is delivered twice: to
// the pool's Reporter (a replaceable sink, no-op by default) and to the
// caller as a structured error from pkg/errors, either invalid_handle or
// allocation_failure. A failed growth leaves capacity and every existing
// slot untouched.
//
// # Usage
//
//	p, err := pool.New(pool.Config{
//		ObjectSize:   128,
//		InitialCount: 32,
//		Growth:       pool.GrowDoubling,
//		Allocation:   pool.AllocChunked,
//	})
//	if err != nil {
//		return err
//	}
//	defer p.Close()
//
//	buf, err := p.Acquire()
//	if err != nil {
//		return err
//	}
//	// buf is zero-filled and exclusively owned until released
//	_ = p.Release(buf)
//
// For type-safe pooling of a concrete element type, see Typed.
//
// # Concurrency
//
// A Pool performs no internal synchronization. Driving the same pool from
// multiple goroutines concurrently is a caller error; distinct pools are
// fully independent.
package pool
