package graph

import (
	"fmt"
	"strings"

	"github.com/autodidactus/mdp"
)

// GenerateMermaid produces a Mermaid flowchart syntax string for the
// decision graph. It applies semantic styling:
// - State: ((Circle))
// - Action: [[Subroutine]]
// State→action edges are plain; action→state edges carry the probability
// and reward label.
func GenerateMermaid(m *mdp.MDP) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, state := range m.States() {
		sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", stateID(state), state.Name()))
	}
	for _, action := range m.Actions() {
		sb.WriteString(fmt.Sprintf("    %s[[\"%s\"]]\n", actionID(action), action.Name()))
	}

	for _, state := range m.States() {
		actions, err := m.ActionsFromState(state)
		if err != nil {
			continue
		}
		for _, action := range actions {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", stateID(state), actionID(action)))
		}
	}

	for _, action := range m.Actions() {
		probability, err := m.StateProbabilityMap(action)
		if err != nil {
			continue
		}
		reward, _ := m.StateRewardMap(action)
		targets, _ := m.StatesFromAction(action)
		for _, to := range targets {
			arrow := fmt.Sprintf("-- \"P=%.2f R=%.2f\" -->", probability[to], reward[to])
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", actionID(action), arrow, stateID(to)))
		}
	}

	return sb.String()
}

func stateID(id mdp.Identity) string {
	return "s_" + sanitizeMermaidID(id.Name())
}

func actionID(id mdp.Identity) string {
	return "act_" + sanitizeMermaidID(id.Name())
}

// sanitizeMermaidID keeps Mermaid node IDs to alphanumerics and
// underscores.
func sanitizeMermaidID(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
