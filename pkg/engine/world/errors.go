package world

import "fmt"

// InvariantError reports a broken structural invariant of the maze model.
// It is raised with panic: reaching one means the generator itself is wrong.
type InvariantError struct {
	Op     string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("world: %s: %s", e.Op, e.Reason)
}

func invariant(op, format string, a ...any) {
	panic(&InvariantError{Op: op, Reason: fmt.Sprintf(format, a...)})
}
