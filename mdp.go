package mdp

import (
	"fmt"
	"sort"
)

// MDP is a validated, immutable Markov Decision Process. All fields are
// frozen by New; accessors return fresh copies, so a single MDP may be
// queried from any number of goroutines without synchronization.
type MDP struct {
	states  map[Identity]struct{}
	actions map[Identity]struct{}

	// Edges from states to their available actions.
	actionsFromState map[Identity][]Identity
	// Edges from actions back to states, keyed by cumulative probability so
	// a weighted draw is one ordered search.
	tables map[Identity]*outcomeTable
}

// New validates the four collections as a unit and freezes them into an
// MDP. Checks run in order: presence, state-domain equality, dangling
// action references, action-domain equality, and per-action outcome
// tables. The first violation aborts construction; no partially valid
// process is observable.
func New(states, actions []Identity, actionsFromState map[Identity][]Identity, statesFromAction map[Identity][]WeightedOutcome) (*MDP, error) {
	if states == nil || actions == nil || actionsFromState == nil || statesFromAction == nil {
		return nil, fmt.Errorf("states, actions and both mappings are required: %w", ErrInvalidArgument)
	}

	stateSet := make(map[Identity]struct{}, len(states))
	for _, s := range states {
		if !s.IsState() {
			return nil, fmt.Errorf("%s declared in the state set: %w", s, ErrInvalidArgument)
		}
		stateSet[s] = struct{}{}
	}
	actionSet := make(map[Identity]struct{}, len(actions))
	for _, a := range actions {
		if !a.IsAction() {
			return nil, fmt.Errorf("%s declared in the action set: %w", a, ErrInvalidArgument)
		}
		actionSet[a] = struct{}{}
	}

	// Every state is represented by actionsFromState, and nothing else is.
	if len(actionsFromState) != len(stateSet) {
		return nil, fmt.Errorf("actionsFromState covers %d states, declared %d: %w",
			len(actionsFromState), len(stateSet), ErrStructuralMismatch)
	}
	for s := range actionsFromState {
		if _, ok := stateSet[s]; !ok {
			return nil, fmt.Errorf("actionsFromState keyed by undeclared %s: %w", s, ErrStructuralMismatch)
		}
	}

	// Every referenced action is declared.
	available := make(map[Identity][]Identity, len(actionsFromState))
	for s, as := range actionsFromState {
		seen := make(map[Identity]struct{}, len(as))
		dedup := make([]Identity, 0, len(as))
		for _, a := range as {
			if _, ok := actionSet[a]; !ok {
				return nil, fmt.Errorf("%s references undeclared %s: %w", s, a, ErrDanglingReference)
			}
			if _, dup := seen[a]; dup {
				continue
			}
			seen[a] = struct{}{}
			dedup = append(dedup, a)
		}
		sortByName(dedup)
		available[s] = dedup
	}

	// Every action is represented by statesFromAction, and nothing else is.
	if len(statesFromAction) != len(actionSet) {
		return nil, fmt.Errorf("statesFromAction covers %d actions, declared %d: %w",
			len(statesFromAction), len(actionSet), ErrStructuralMismatch)
	}
	tables := make(map[Identity]*outcomeTable, len(statesFromAction))
	for a, entries := range statesFromAction {
		if _, ok := actionSet[a]; !ok {
			return nil, fmt.Errorf("statesFromAction keyed by undeclared %s: %w", a, ErrStructuralMismatch)
		}
		table, err := newOutcomeTable(a, entries, stateSet)
		if err != nil {
			return nil, err
		}
		tables[a] = table
	}

	return &MDP{
		states:           stateSet,
		actions:          actionSet,
		actionsFromState: available,
		tables:           tables,
	}, nil
}

// States returns the full state membership, sorted by name.
func (m *MDP) States() []Identity {
	out := make([]Identity, 0, len(m.states))
	for s := range m.states {
		out = append(out, s)
	}
	sortByName(out)
	return out
}

// Actions returns the full action membership, sorted by name.
func (m *MDP) Actions() []Identity {
	out := make([]Identity, 0, len(m.actions))
	for a := range m.actions {
		out = append(out, a)
	}
	sortByName(out)
	return out
}

// HasState reports membership of state in the process.
func (m *MDP) HasState(state Identity) bool {
	_, ok := m.states[state]
	return ok
}

// HasAction reports membership of action in the process.
func (m *MDP) HasAction(action Identity) bool {
	_, ok := m.actions[action]
	return ok
}

// ActionsFromState returns the actions available at state, sorted by name.
func (m *MDP) ActionsFromState(state Identity) ([]Identity, error) {
	if _, ok := m.states[state]; !ok {
		return nil, fmt.Errorf("%s: %w", state, ErrUnknownState)
	}
	edges := m.actionsFromState[state]
	out := make([]Identity, len(edges))
	copy(out, edges)
	return out, nil
}

// StatesFromAction returns the distinct successor states reachable via
// action, sorted by name. Probabilities and rewards are ignored; use
// StateProbabilityMap or StateRewardMap for those.
func (m *MDP) StatesFromAction(action Identity) ([]Identity, error) {
	table, ok := m.tables[action]
	if !ok {
		return nil, fmt.Errorf("%s: %w", action, ErrUnknownAction)
	}
	seen := make(map[Identity]struct{}, len(table.entries))
	out := make([]Identity, 0, len(table.entries))
	for _, e := range table.entries {
		if _, dup := seen[e.Target]; dup {
			continue
		}
		seen[e.Target] = struct{}{}
		out = append(out, e.Target)
	}
	sortByName(out)
	return out, nil
}

// StateRewardMap returns each successor state reachable via action mapped
// to its reward. When an action's table lists the same target at two
// cumulative keys, the later entry wins.
func (m *MDP) StateRewardMap(action Identity) (map[Identity]float64, error) {
	table, ok := m.tables[action]
	if !ok {
		return nil, fmt.Errorf("%s: %w", action, ErrUnknownAction)
	}
	out := make(map[Identity]float64, len(table.entries))
	for _, e := range table.entries {
		out[e.Target] = e.Reward
	}
	return out, nil
}

// StateProbabilityMap returns each successor state reachable via action
// mapped to its per-outcome probability mass, recovered as successive
// differences of the cumulative keys. Duplicate targets resolve like
// StateRewardMap: the later entry wins.
func (m *MDP) StateProbabilityMap(action Identity) (map[Identity]float64, error) {
	table, ok := m.tables[action]
	if !ok {
		return nil, fmt.Errorf("%s: %w", action, ErrUnknownAction)
	}
	out := make(map[Identity]float64, len(table.entries))
	previous := 0.0
	for _, e := range table.entries {
		out[e.Target] = e.Cumulative - previous
		previous = e.Cumulative
	}
	return out, nil
}

// ActionsToState returns every action that can reach state, sorted by
// name. The graph indexes the forward direction only, so this scans all
// actions: O(actions × outcomes).
func (m *MDP) ActionsToState(state Identity) ([]Identity, error) {
	if _, ok := m.states[state]; !ok {
		return nil, fmt.Errorf("%s: %w", state, ErrUnknownState)
	}
	out := make([]Identity, 0)
	for a, table := range m.tables {
		for _, e := range table.entries {
			if e.Target == state {
				out = append(out, a)
				break
			}
		}
	}
	sortByName(out)
	return out, nil
}

// StatesToAction returns every state from which action can be taken,
// sorted by name. Like ActionsToState this runs against the grain of the
// index: O(states × actions).
func (m *MDP) StatesToAction(action Identity) ([]Identity, error) {
	if _, ok := m.actions[action]; !ok {
		return nil, fmt.Errorf("%s: %w", action, ErrUnknownAction)
	}
	out := make([]Identity, 0)
	for s, as := range m.actionsFromState {
		for _, a := range as {
			if a == action {
				out = append(out, s)
				break
			}
		}
	}
	sortByName(out)
	return out, nil
}

func sortByName(ids []Identity) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].name < ids[j].name })
}
