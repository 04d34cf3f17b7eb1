package mdp

import (
	"fmt"
	"math"
	"sort"
)

// MassTolerance is the permitted absolute deviation of an action's final
// cumulative probability from 1.0. Callers that compute probabilities
// arithmetically accumulate rounding error, so the terminal check is not an
// exact float comparison.
const MassTolerance = 1e-9

// WeightedOutcome is one entry of an action's outcome table: the running
// cumulative probability, the successor state it selects, and the reward
// for landing there. The entry's own probability mass is its cumulative
// key minus the previous entry's.
type WeightedOutcome struct {
	Cumulative float64
	Target     Identity
	Reward     float64
}

// outcomeTable holds an action's outcomes sorted by cumulative key. Built
// once during construction, never mutated afterwards.
type outcomeTable struct {
	entries []WeightedOutcome
}

// newOutcomeTable sorts the entries by cumulative key and checks the table
// invariants: keys strictly increasing within (0, 1], every target a
// declared state, and the final key equal to 1.0 within MassTolerance.
func newOutcomeTable(action Identity, entries []WeightedOutcome, states map[Identity]struct{}) (*outcomeTable, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s has no outcomes: %w", action, ErrProbabilityMass)
	}

	sorted := make([]WeightedOutcome, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Cumulative < sorted[j].Cumulative
	})

	previous := 0.0
	for _, e := range sorted {
		if e.Cumulative <= previous || e.Cumulative > 1.0+MassTolerance {
			return nil, fmt.Errorf("%s: cumulative key %v outside (%v, 1.0]: %w",
				action, e.Cumulative, previous, ErrProbabilityMass)
		}
		previous = e.Cumulative
		if _, ok := states[e.Target]; !ok {
			return nil, fmt.Errorf("%s targets undeclared %s: %w",
				action, e.Target, ErrDanglingReference)
		}
	}
	if math.Abs(previous-1.0) > MassTolerance {
		return nil, fmt.Errorf("%s: cumulative probabilities end at %v, want 1.0: %w",
			action, previous, ErrProbabilityMass)
	}

	return &outcomeTable{entries: sorted}, nil
}

// locate returns the entry whose cumulative key is the smallest one
// strictly greater than x. Drawing x uniformly from [0, 1) selects each
// entry with its probability mass.
func (t *outcomeTable) locate(x float64) WeightedOutcome {
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].Cumulative > x
	})
	if i == len(t.entries) {
		// x at or beyond the final key; only reachable when x >= 1-MassTolerance.
		i = len(t.entries) - 1
	}
	return t.entries[i]
}
