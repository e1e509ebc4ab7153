// errors.go — sentinel errors for graphgen.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - ErrImpossibleParameters is never returned: Generate panics with its
//     message, since it reflects a caller bug rather than a runtime
//     condition worth recovering from (see doc.go's Precondition note).
package graphgen

import "errors"

// ErrImpossibleParameters indicates the requested (numNodes, numEdges)
// violates the simple-graph edge-count bound: neither both are zero, nor
// numEdges <= numNodes*(numNodes-1)/2.
var ErrImpossibleParameters = errors.New("graphgen: impossible (numNodes, numEdges) combination")

// ErrNegativeWeight indicates maxWeight was negative.
var ErrNegativeWeight = errors.New("graphgen: maxWeight must be non-negative")
