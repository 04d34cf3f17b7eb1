// Package mdp models a finite Markov Decision Process as an immutable
// bipartite graph of states and actions.
//
// Each action owns a table of weighted outcomes keyed by cumulative
// probability, so a weighted draw reduces to one ordered search. The four
// raw collections (states, actions, state→actions, action→outcomes) are
// validated as a unit by New; after construction the process is read-only
// and safe for concurrent use without locking.
//
// Construction is all-or-nothing. Every violation maps to one of the
// sentinel errors in errors.go, so callers can branch with errors.Is:
//
//	m, err := mdp.New(states, actions, available, outcomes)
//	if errors.Is(err, mdp.ErrProbabilityMass) { ... }
//
// The Builder offers an incremental way to assemble the same collections,
// and Sampler consumes the cumulative tables to draw successors and
// simulate episodes.
package mdp
