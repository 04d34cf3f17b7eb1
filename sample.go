package mdp

import (
	"fmt"
	"math/rand"
)

// Policy selects one of the actions available at state. The available
// slice is never empty when a Policy is invoked.
type Policy func(state Identity, available []Identity) Identity

// Sampler draws weighted successors from an MDP. It owns its random
// source, so a Sampler is not safe for concurrent use; the underlying MDP
// is, and several Samplers may share one.
type Sampler struct {
	m   *MDP
	rng *rand.Rand
}

// NewSampler creates a sampler over m seeded with seed. Equal seeds
// reproduce equal draw sequences.
func NewSampler(m *MDP, seed int64) *Sampler {
	return &Sampler{m: m, rng: rand.New(rand.NewSource(seed))}
}

// Draw picks a successor of action by locating a uniform draw in the
// action's cumulative table. O(log n) in the number of outcomes.
func (s *Sampler) Draw(action Identity) (Identity, float64, error) {
	table, ok := s.m.tables[action]
	if !ok {
		return Identity{}, 0, fmt.Errorf("%s: %w", action, ErrUnknownAction)
	}
	out := table.locate(s.rng.Float64())
	return out.Target, out.Reward, nil
}

// UniformPolicy returns a policy that picks uniformly among the available
// actions, drawing from the sampler's own source.
func (s *Sampler) UniformPolicy() Policy {
	return func(_ Identity, available []Identity) Identity {
		return available[s.rng.Intn(len(available))]
	}
}

// Step is one transition of a simulated episode.
type Step struct {
	From   string  `json:"from"`
	Action string  `json:"action"`
	To     string  `json:"to"`
	Reward float64 `json:"reward"`
}

// Episode is an ordered record of sampled transitions, serializable for
// the episode stores.
type Episode struct {
	Start       string  `json:"start"`
	Steps       []Step  `json:"steps"`
	TotalReward float64 `json:"total_reward"`
}

// Run simulates up to maxSteps transitions from start, choosing an
// action with policy and a successor with Draw at each step. Simulation
// stops early at a state with no available actions.
func (s *Sampler) Run(start Identity, policy Policy, maxSteps int) (*Episode, error) {
	if policy == nil {
		policy = s.UniformPolicy()
	}
	if !s.m.HasState(start) {
		return nil, fmt.Errorf("%s: %w", start, ErrUnknownState)
	}

	ep := &Episode{Start: start.Name(), Steps: make([]Step, 0, maxSteps)}
	current := start
	for i := 0; i < maxSteps; i++ {
		available, err := s.m.ActionsFromState(current)
		if err != nil {
			return nil, err
		}
		if len(available) == 0 {
			break
		}
		action := policy(current, available)
		to, reward, err := s.Draw(action)
		if err != nil {
			return nil, err
		}
		ep.Steps = append(ep.Steps, Step{
			From:   current.Name(),
			Action: action.Name(),
			To:     to.Name(),
			Reward: reward,
		})
		ep.TotalReward += reward
		current = to
	}
	return ep, nil
}
