package pool

// Allocator abstracts the backing allocator the pool draws storage from.
// It exists so tests can track and fail allocations, and so embedded
// targets can route pool storage into a reserved region.
//
// Alloc returns a zero-filled buffer of exactly n bytes whose base address
// is 64-bit aligned. Free releases a buffer previously returned by Alloc;
// it is never called twice for the same buffer.
type Allocator interface {
	Alloc(n int) ([]byte, error)
	Free(buf []byte)
}

// heapAllocator is the default Allocator: plain Go heap allocations.
// Free is a no-op since the runtime reclaims unreferenced buffers.
type heapAllocator struct{}

func (heapAllocator) Alloc(n int) ([]byte, error) { return make([]byte, n), nil }

func (heapAllocator) Free([]byte) {}

// slotAlign keeps every slot base 64-bit aligned so callers may reinterpret
// slot storage as typed data (see Typed).
const slotAlign = 8

func alignUp(n int) int {
	return (n + slotAlign - 1) &^ (slotAlign - 1)
}
