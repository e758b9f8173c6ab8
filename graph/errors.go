// errors.go — sentinel errors for the graph package.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is; context is attached with %w at the call site, never baked
// into the sentinel's message.

package graph

import "errors"

// ErrTooFewNodes indicates a graph was constructed with n <= 0.
var ErrTooFewNodes = errors.New("graph: n must be positive")

// ErrEmptyEdgeList indicates a graph was constructed with zero edges. The
// MCMC driver has nothing to propose on an edgeless graph.
var ErrEmptyEdgeList = errors.New("graph: edge list must be non-empty")

// ErrNodeOutOfRange indicates an edge endpoint falls outside [0, n).
var ErrNodeOutOfRange = errors.New("graph: node id out of range")

// ErrEdgeOutOfRange indicates an edge id falls outside [0, m).
var ErrEdgeOutOfRange = errors.New("graph: edge id out of range")
