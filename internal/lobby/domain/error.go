package domain

import (
	"fmt"

	"github.com/marcodiri/micros-chess/pkg/aggregate"
)

type UnsupportedStateTransitionError struct {
	Current GameProposalState
	Target  GameProposalState
}

func (e UnsupportedStateTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.Current, e.Target)
}

func (e UnsupportedStateTransitionError) Unwrap() error {
	return aggregate.ErrInvalidStateTransition
}
