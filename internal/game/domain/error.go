package domain

import (
	"fmt"

	"github.com/marcodiri/micros-chess/pkg/aggregate"
)

type GameNotInProgressError struct {
	State GameState
}

func (e GameNotInProgressError) Error() string {
	return fmt.Sprintf("game is not in progress, current state %s", e.State)
}

func (e GameNotInProgressError) Unwrap() error {
	return aggregate.ErrInvalidStateTransition
}

type IllegalMoveError struct {
	Move string
}

func (e IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %q", e.Move)
}

func (e IllegalMoveError) Unwrap() error {
	return aggregate.ErrInvalidStateTransition
}
