package mcmc

import "github.com/katalvlaran/negcycle/weight"

// Proposal describes a single accept/reject decision, handed to
// Hooks.OnProposal immediately after the decision is made and any state
// mutation committed. Handlers must not retain slices from the driver's
// internals; Proposal is a plain value, safe to keep.
type Proposal[T weight.Numeric] struct {
	Index      int  // 0-based proposal number within the run
	Edge       int  // edge id sampled
	Tail, Head int  // g.Tail(Edge), g.Head(Edge), for convenience
	Previous   T    // weight before this proposal
	Proposed   T    // the sampled candidate weight w'
	Accepted   bool // whether Proposed was committed
}

// Stats accumulates run-wide counters, reported at Hooks.Every intervals
// and returned by Run on completion.
type Stats[T weight.Numeric] struct {
	Proposals int
	Accepted  int
	Rejected  int
}

// Hooks are observability callbacks invoked synchronously on the driver's
// own goroutine between proposals: they must not block and must not
// mutate the graph, potential, or oracle they are passed
// indirectly via Proposal/Stats values. A zero Hooks value disables all
// callbacks.
type Hooks[T weight.Numeric] struct {
	// OnProposal, if non-nil, is called after every proposal.
	OnProposal func(Proposal[T])
	// OnProgress, if non-nil and Every > 0, is called after every Every'th
	// proposal with the running totals.
	OnProgress func(Stats[T])
	Every      int
}

func (h Hooks[T]) fire(prop Proposal[T], stats Stats[T]) {
	if h.OnProposal != nil {
		h.OnProposal(prop)
	}
	if h.OnProgress != nil && h.Every > 0 && stats.Proposals%h.Every == 0 {
		h.OnProgress(stats)
	}
}
