package appointment

import "fmt"

// SlotConflictError signals that a requested slot is not available. Motivo is
// the exact message shown to the user.
type SlotConflictError struct {
	Motivo string
}

func (e SlotConflictError) Error() string {
	return e.Motivo
}

// NotFoundError signals that a referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Resource, e.ID)
}

// ValidationError signals a request the caller can correct.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
