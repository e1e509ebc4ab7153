// Package render provides the textual pretty-printing boundary contract for
// binaryheap.Heap and fibheap.Heap: a space-separated flat listing for the
// array-backed heap, and an S-expression tree listing for the forest-backed
// one. Both accept a caller-supplied KeyFormatter rather than assuming K is
// printable in any particular way; IntFormatter reproduces the zero-padded,
// fixed-width convention used by this package's own fixture tests.
//
// This package exists purely for tests and diagnostics — it is not on any
// heap operation's hot path, per the library's pretty-printing boundary.
package render
