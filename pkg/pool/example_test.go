// Package pool provides example usage of the fixed-object-size pool engine.
package pool_test

import (
	"fmt"

	"github.com/ajitpratap0/opalloc/pkg/pool"
)

// Example demonstrates the acquire/release lifecycle of a chunked pool.
func Example() {
	p, err := pool.New(pool.Config{
		ObjectSize:   64,
		InitialCount: 8,
		Growth:       pool.GrowDoubling,
		Allocation:   pool.AllocChunked,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer p.Close()

	buf, err := p.Acquire()
	if err != nil {
		fmt.Println(err)
		return
	}
	copy(buf, "hello")

	st := p.Stats()
	fmt.Printf("capacity=%d active=%d\n", st.MaximumObjects, st.ActiveObjects)

	_ = p.Release(buf)
	st = p.Stats()
	fmt.Printf("capacity=%d active=%d\n", st.MaximumObjects, st.ActiveObjects)

	// Output:
	// capacity=8 active=1
	// capacity=8 active=0
}

// ExampleTyped shows type-safe pooling of a concrete element type.
func ExampleTyped() {
	type point struct {
		X, Y int64
	}

	var points pool.Typed[point]
	defer points.Close()

	pt, err := points.Acquire()
	if err != nil {
		fmt.Println(err)
		return
	}
	pt.X, pt.Y = 3, 4

	fmt.Printf("point=(%d,%d) object_size=%d\n", pt.X, pt.Y, points.Stats().ObjectSize)
	_ = points.Release(pt)

	// Output:
	// point=(3,4) object_size=16
}

// ExamplePool_Acquire demonstrates growth on exhaustion: acquiring past the
// initial capacity grows the pool exactly once per exhaustion.
func ExamplePool_Acquire() {
	p, _ := pool.New(pool.Config{
		ObjectSize:   32,
		InitialCount: 4,
		Growth:       pool.GrowLinear,
		Allocation:   pool.AllocIndividual,
	})
	defer p.Close()

	for i := 0; i < 5; i++ {
		if _, err := p.Acquire(); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Printf("capacity=%d\n", p.Stats().MaximumObjects)

	// Output:
	// capacity=8
}
