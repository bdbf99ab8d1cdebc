package Trees

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrEndCursor is reported when the end cursor is used where a node is required.
	ErrEndCursor = errors.New("end cursor does not reference a node")
	// ErrStaleCursor is reported when the node a cursor referenced has been erased,
	// or the tree holding it has been cleared.
	ErrStaleCursor = errors.New("cursor references a node that is no longer in the tree")
	// ErrForeignCursor is reported when a cursor is handed to a tree that doesn't own its node.
	ErrForeignCursor = errors.New("cursor belongs to another tree")
	// ErrArenaFull is raised when the index type S can't address another node.
	ErrArenaFull = errors.New("index type exhausted")
)

// InvalidCursorError is the panic value of operations given a cursor that breaks
// their precondition. Err is one of ErrEndCursor, ErrStaleCursor, ErrForeignCursor.
type InvalidCursorError struct {
	Slot uint64
	Err  error
}

func (e *InvalidCursorError) Error() string {
	return fmt.Sprintf("invalid cursor at slot %d: %v", e.Slot, e.Err)
}

func (e *InvalidCursorError) Unwrap() error {
	return e.Err
}

func invalidCursor[S constraints.Unsigned](slot S, err error) error {
	return errors.WithStack(&InvalidCursorError{uint64(slot), err})
}
