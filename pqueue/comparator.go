package pqueue

import "reflect"

// SameComparator reports whether a and b were built from the same underlying
// function value, used by Merge implementations as a best-effort fingerprint
// for the "both heaps use the same ordering" precondition. Go cannot check
// comparator equality structurally (func values are not comparable), so this
// is a heuristic: two independently-constructed closures with identical
// behavior but distinct code addresses are NOT detected as equal. Callers
// that build comparators dynamically should share one Comparator value
// across every heap they intend to merge together, rather than relying on
// this check to paper over closures that merely behave the same.
func SameComparator[K any](a, b Comparator[K]) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
