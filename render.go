package mdp

import (
	"fmt"
	"strings"
)

// String renders one line per (state, action, successor) edge:
//
//	State(a) -- (Action(one), P=0.900000, R=3.000000) --> State(a)
//
// Output is newline-terminated and meant for human inspection or log
// capture, not machine parsing. Lines are emitted in name order.
func (m *MDP) String() string {
	var sb strings.Builder
	for _, state := range m.States() {
		actions, err := m.ActionsFromState(state)
		if err != nil {
			continue
		}
		for _, action := range actions {
			probability, _ := m.StateProbabilityMap(action)
			reward, _ := m.StateRewardMap(action)
			targets, _ := m.StatesFromAction(action)
			for _, to := range targets {
				fmt.Fprintf(&sb, "%s -- (%s, P=%f, R=%f) --> %s\n",
					state, action, probability[to], reward[to], to)
			}
		}
	}
	return sb.String()
}
