package mdp

import "errors"

// Construction errors. New reports the first violation it finds; no partial
// process is ever observable.
var (
	// ErrInvalidArgument is returned when a required value (a name, one of
	// the four collections) is absent or of the wrong kind.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrStructuralMismatch is returned when a mapping's key set does not
	// exactly equal the declared state or action set.
	ErrStructuralMismatch = errors.New("structural mismatch")

	// ErrDanglingReference is returned when a mapping's values mention a
	// state or action missing from the corresponding declared set.
	ErrDanglingReference = errors.New("dangling reference")

	// ErrProbabilityMass is returned when an action's cumulative
	// probabilities are not strictly increasing within (0, 1] or do not
	// terminate at 1.0 (within MassTolerance).
	ErrProbabilityMass = errors.New("probability mass invalid")
)

// Query errors. Queries never silently default for unrecognized identities.
var (
	// ErrUnknownState is returned when a query argument is not a member of
	// the process's state set.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownAction is returned when a query argument is not a member of
	// the process's action set.
	ErrUnknownAction = errors.New("unknown action")
)

// ErrEpisodeNotFound is returned by episode stores when the requested ID
// does not exist.
var ErrEpisodeNotFound = errors.New("episode not found")
