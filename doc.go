// Package opalloc provides a fixed-object-size memory pool manager for
// workloads where fragmentation from interleaved general-purpose allocation
// and deallocation is costly: long-running services, small-heap targets, and
// hot paths that churn through many objects of one size.
//
// Instead of returning storage to the runtime, the pool recycles previously
// freed slots and grows its backing storage only when every slot is in use.
// Allocation cost is amortized across the pool's lifetime, and the number of
// distinct backing allocations stays small and predictable.
//
// # Architecture
//
// The module is organized around a single core engine with thin supporting
// packages:
//
//  1. pool: the engine itself. A slot table of fixed-size storage units,
//     first-fit acquisition, two growth strategies (doubling and linear), two
//     provisioning strategies (eager chunks and lazy individual slots), and
//     topology-aware teardown that frees exactly the allocations it owns.
//
//  2. pool.Typed[T]: a generic, type-safe facade that binds one pool to a
//     concrete element type, built strictly on the engine's four operations.
//
//  3. errors, logger, metrics, config: structured errors with stack capture,
//     zap-based logging, optional Prometheus instrumentation, and YAML pool
//     profiles.
//
// # Quick Start
//
// Create a pool of 64-byte slots that starts at 16 slots and doubles when
// exhausted:
//
//	p, err := pool.New(pool.Config{
//		ObjectSize:   64,
//		InitialCount: 16,
//		Growth:       pool.GrowDoubling,
//		Allocation:   pool.AllocChunked,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer p.Close()
//
//	buf, err := p.Acquire() // zero-filled, exclusively owned
//	if err != nil {
//		log.Fatal(err)
//	}
//	// ... use buf ...
//	_ = p.Release(buf)
//
// Or bind a pool to a concrete type:
//
//	var sessions pool.Typed[Session]
//	s, err := sessions.Acquire()
//	...
//	_ = sessions.Release(s)
//
// # Concurrency
//
// A pool performs no internal locking. Each pool instance must be driven by
// a single goroutine at a time; distinct pool instances are fully independent
// and may be used concurrently without coordination.
package opalloc
