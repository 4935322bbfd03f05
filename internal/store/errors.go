// package store provides data access for todo items
package store

import (
	"fmt"
)

// ErrTodoNotFound is returned when a todo with the given id does not exist
type ErrTodoNotFound struct {
	ID int
}

// Error implements the error interface
func (e ErrTodoNotFound) Error() string {
	return fmt.Sprintf("todo with id %d not found", e.ID)
}
