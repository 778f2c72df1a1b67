package json

// Allocator is the caller-supplied allocate/free capability used for all
// transient storage the engine owns, such as the working copy taken by
// Print. Allocate returns nil when storage is exhausted.
type Allocator interface {
	Allocate(n int) []byte
	Free(buf []byte)
}

// HeapAllocator satisfies Allocator with the Go heap. Free is a no-op;
// the collector reclaims released buffers.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(n int) []byte {
	if n <= 0 {
		return nil
	}
	return make([]byte, n)
}

func (HeapAllocator) Free([]byte) {}
