package mdp

// Builder assembles the four raw collections incrementally. It performs no
// validation of its own; Build hands everything to New, so a Builder can
// be filled in any order.
type Builder struct {
	states      []Identity
	actions     []Identity
	seenStates  map[Identity]struct{}
	seenActions map[Identity]struct{}
	available   map[Identity][]Identity
	outcomes    map[Identity][]WeightedOutcome
}

// NewBuilder creates an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{
		seenStates:  make(map[Identity]struct{}),
		seenActions: make(map[Identity]struct{}),
		available:   make(map[Identity][]Identity),
		outcomes:    make(map[Identity][]WeightedOutcome),
	}
}

// AddState declares a state. Re-adding an existing state is a no-op.
func (b *Builder) AddState(s Identity) *Builder {
	if _, ok := b.seenStates[s]; !ok {
		b.seenStates[s] = struct{}{}
		b.states = append(b.states, s)
		if _, ok := b.available[s]; !ok {
			b.available[s] = []Identity{}
		}
	}
	return b
}

// AddAction declares an action. Re-adding an existing action is a no-op.
func (b *Builder) AddAction(a Identity) *Builder {
	if _, ok := b.seenActions[a]; !ok {
		b.seenActions[a] = struct{}{}
		b.actions = append(b.actions, a)
		if _, ok := b.outcomes[a]; !ok {
			b.outcomes[a] = []WeightedOutcome{}
		}
	}
	return b
}

// Allow records that action may be taken from state. Both identities are
// declared implicitly if they are new.
func (b *Builder) Allow(state, action Identity) *Builder {
	b.AddState(state)
	b.AddAction(action)
	b.available[state] = append(b.available[state], action)
	return b
}

// Outcome appends an entry to action's outcome table: taking action lands
// on target with the given reward, selected when a drawn value falls at or
// below cumulative. Entries may arrive in any order; Build sorts them.
func (b *Builder) Outcome(action Identity, cumulative float64, target Identity, reward float64) *Builder {
	b.AddAction(action)
	b.AddState(target)
	b.outcomes[action] = append(b.outcomes[action], WeightedOutcome{
		Cumulative: cumulative,
		Target:     target,
		Reward:     reward,
	})
	return b
}

// Build validates the accumulated collections and returns the immutable
// process. The builder remains usable afterwards; the MDP holds copies.
func (b *Builder) Build() (*MDP, error) {
	return New(b.states, b.actions, b.available, b.outcomes)
}
