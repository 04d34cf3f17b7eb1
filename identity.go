package mdp

import "fmt"

// Kind tags an Identity as a state or an action.
type Kind int

const (
	// KindState marks a node an agent can occupy.
	KindState Kind = iota
	// KindAction marks a choice available from one or more states.
	KindAction
)

func (k Kind) String() string {
	switch k {
	case KindState:
		return "State"
	case KindAction:
		return "Action"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Identity is an immutable named vertex in the decision graph. Two
// identities are equal iff their kind and name both match: a state and an
// action sharing a name are distinct values. Identity is comparable and
// safe to copy, share, or use as a map key.
type Identity struct {
	name string
	kind Kind
}

// NewState constructs a state identity. The name must be non-empty.
func NewState(name string) (Identity, error) {
	if name == "" {
		return Identity{}, fmt.Errorf("state name is required: %w", ErrInvalidArgument)
	}
	return Identity{name: name, kind: KindState}, nil
}

// NewAction constructs an action identity. The name must be non-empty.
func NewAction(name string) (Identity, error) {
	if name == "" {
		return Identity{}, fmt.Errorf("action name is required: %w", ErrInvalidArgument)
	}
	return Identity{name: name, kind: KindAction}, nil
}

// MustState is NewState for static graph definitions; it panics on an
// empty name.
func MustState(name string) Identity {
	id, err := NewState(name)
	if err != nil {
		panic(err)
	}
	return id
}

// MustAction is NewAction for static graph definitions; it panics on an
// empty name.
func MustAction(name string) Identity {
	id, err := NewAction(name)
	if err != nil {
		panic(err)
	}
	return id
}

// Name returns the identity's name.
func (id Identity) Name() string { return id.name }

// Kind returns the identity's kind tag.
func (id Identity) Kind() Kind { return id.kind }

// IsState reports whether the identity is a state.
func (id Identity) IsState() bool { return id.kind == KindState }

// IsAction reports whether the identity is an action.
func (id Identity) IsAction() bool { return id.kind == KindAction }

// String renders the debug form, e.g. State(a) or Action(one).
func (id Identity) String() string {
	return fmt.Sprintf("%s(%s)", id.kind, id.name)
}
