package render

import (
	"fmt"

	"github.com/katalvlaran/heaps/binaryheap"
	"github.com/katalvlaran/heaps/fibheap"
)

// DefaultWidth is the zero-padding width golden fixtures render keys at:
// single-digit keys pad to two digits.
const DefaultWidth = 2

// KeyFormatter renders a single key as text for Binary or Fibonacci.
type KeyFormatter[K any] func(K) string

// IntFormatter zero-pads int keys to width digits.
func IntFormatter(width int) KeyFormatter[int] {
	return func(k int) string { return fmt.Sprintf("%0*d", width, k) }
}

// Int64Formatter zero-pads int64 keys to width digits, for Dijkstra-style
// (vertex, distance) composite keys rendered via a projection.
func Int64Formatter(width int) KeyFormatter[int64] {
	return func(k int64) string { return fmt.Sprintf("%0*d", width, k) }
}

// Binary renders h as a space-separated list of keys in internal array
// order. An empty heap renders as "".
func Binary[K any](h *binaryheap.Heap[K], fmtKey KeyFormatter[K]) string {
	return h.Render(fmtKey)
}

// Fibonacci renders h as root-list-ordered S-expressions, `(KEY[*] child…)`
// per tree, with marked non-roots suffixed "*". An empty heap renders as "".
func Fibonacci[K any](h *fibheap.Heap[K], fmtKey KeyFormatter[K]) string {
	return h.Render(fmtKey)
}
