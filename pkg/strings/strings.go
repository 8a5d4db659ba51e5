// Package strings provides zero-copy string utilities with pooled builders.
package strings

import (
	"fmt"
	"sync"
	"unsafe"
)

// BytesToString converts a byte slice to a string without allocation.
// WARNING: The returned string shares memory with the byte slice.
// Do not modify the byte slice after calling this function.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// StringToBytes converts a string to a byte slice without allocation.
// WARNING: The returned byte slice shares memory with the string.
// Do not modify the returned slice.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Builder accumulates bytes for string construction. Unlike
// strings.Builder it is reusable after Reset and pool-friendly.
type Builder struct {
	buf []byte
}

// NewBuilder creates a builder with the given initial capacity.
func NewBuilder(capacity int) *Builder {
	return &Builder{buf: make([]byte, 0, capacity)}
}

// WriteString appends a string to the builder.
func (b *Builder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteByte appends a single byte.
func (b *Builder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (n int, err error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// String returns the accumulated contents. The result shares memory with
// the builder; callers that outlive the builder must Clone it.
func (b *Builder) String() string {
	return BytesToString(b.buf)
}

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Reset clears the builder for reuse, keeping its capacity.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

var builderPool = &sync.Pool{
	New: func() interface{} {
		return NewBuilder(256)
	},
}

// GetBuilder retrieves a reset builder from the pool.
func GetBuilder() *Builder {
	b := builderPool.Get().(*Builder)
	b.Reset()
	return b
}

// PutBuilder returns a builder to the pool.
func PutBuilder(b *Builder) {
	if b == nil {
		return
	}
	b.Reset()
	builderPool.Put(b)
}

// Clone returns a copy of s backed by its own storage.
func Clone(s string) string {
	if len(s) == 0 {
		return ""
	}
	b := make([]byte, len(s))
	copy(b, s)
	return BytesToString(b)
}

// Sprintf formats using a pooled builder to avoid the intermediate
// allocations of fmt.Sprintf on hot error paths.
func Sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}
	b := GetBuilder()
	defer PutBuilder(b)
	fmt.Fprintf(b, format, args...)
	return Clone(b.String())
}

// Concat joins strings with a pooled builder.
func Concat(parts ...string) string {
	if len(parts) == 0 {
		return ""
	}
	b := GetBuilder()
	defer PutBuilder(b)
	for _, p := range parts {
		b.WriteString(p)
	}
	return Clone(b.String())
}
