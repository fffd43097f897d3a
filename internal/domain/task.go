package domain

import (
	"fmt"
	"time"
)

// DefaultTask is a checklist template item attached to an Event. When a
// Holding is created from the Event, each DefaultTask is copied into an
// independent HoldingTask.
type DefaultTask struct {
	ID          string
	EventID     string
	Name        string
	DaysBefore  int // lead time in calendar days; at least 1 for templates
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *DefaultTask) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: task name is required", ErrInvalid)
	}
	if t.DaysBefore < 1 {
		return fmt.Errorf("%w: days_before must be a positive number of days", ErrInvalid)
	}
	return nil
}

// HoldingTask is a checklist item attached to one concrete Holding. Cloned
// tasks are independent copies: edits to the source DefaultTask never
// propagate here, and vice versa.
type HoldingTask struct {
	ID          string
	HoldingID   string
	Name        string
	DaysBefore  int // lead time in calendar days; zero means due on the day
	Description string
	Reminded    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t *HoldingTask) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: task name is required", ErrInvalid)
	}
	if t.DaysBefore < 0 {
		return fmt.Errorf("%w: days_before must not be negative", ErrInvalid)
	}
	return nil
}

// DueDate derives the task's reminder date from the owning Holding's date.
// The due date is not stored; it is always holding date minus the lead time.
func (t *HoldingTask) DueDate(holdingDate time.Time) time.Time {
	return DueDate(holdingDate, t.DaysBefore)
}

// DueDate returns holdingDate minus daysBefore calendar days.
func DueDate(holdingDate time.Time, daysBefore int) time.Time {
	return holdingDate.AddDate(0, 0, -daysBefore)
}
