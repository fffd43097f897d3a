package domain

import (
	"fmt"
	"time"
)

// Event is a recurring category of occasions (e.g. an annual exhibition).
// Concrete dated occurrences are Holdings; the checklist template attached
// to an Event is its set of DefaultTasks.
type Event struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *Event) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: event name is required", ErrInvalid)
	}
	return nil
}
