package fsm // import "github.com/zenyway/fsm"

import (
	"errors"
	"fmt"
)

// ErrEmptySpec is returned when the spec has no states at all
var ErrEmptySpec = errors.New("empty spec: no states defined")

// ErrUnknownState indicates a state name that is not a key of the spec.  When
// the state was referenced by a transition, From and Command name the state and
// command holding that transition.  Both are empty for an unknown initial state.
type ErrUnknownState struct {
	State   string
	From    string
	Command string
}

func (e ErrUnknownState) Error() string {
	if e.Command == "" && e.From == "" {
		return fmt.Sprintf("unknown state: %q", e.State)
	}
	return fmt.Sprintf("unknown state: %q, referenced by command=%q in state=%q", e.State, e.Command, e.From)
}

// IsUnknownState returns true if the error, or any error it wraps, is an ErrUnknownState
func IsUnknownState(err error) bool {
	var e ErrUnknownState
	return errors.As(err, &e)
}
