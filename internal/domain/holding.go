package domain

import (
	"fmt"
	"time"
)

// Holding is one concrete, dated occurrence of an Event. EventID records the
// origin Event and may be nil for freestanding holdings; it only matters at
// creation time, when the origin's DefaultTasks are cloned.
type Holding struct {
	ID        string
	EventID   *string
	Name      string
	Date      time.Time
	ChannelID string
	Mention   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (h *Holding) Validate() error {
	if h.Name == "" {
		return fmt.Errorf("%w: holding name is required", ErrInvalid)
	}
	if h.Date.IsZero() {
		return fmt.Errorf("%w: holding date is required", ErrInvalid)
	}
	if h.ChannelID == "" {
		return fmt.Errorf("%w: channel is required", ErrInvalid)
	}
	if h.Mention == "" {
		return fmt.Errorf("%w: mention is required", ErrInvalid)
	}
	return nil
}

// IsUpcoming reports whether the holding falls on or after today. Only the
// calendar date is compared; time-of-day components are ignored.
func (h *Holding) IsUpcoming(today time.Time) bool {
	return !truncateToDate(h.Date).Before(truncateToDate(today))
}

// PartitionHoldings splits holdings into an upcoming group (date >= today)
// and a past group (date < today). Every holding lands in exactly one group
// and relative order is preserved within each.
func PartitionHoldings(holdings []*Holding, today time.Time) (upcoming, past []*Holding) {
	for _, h := range holdings {
		if h.IsUpcoming(today) {
			upcoming = append(upcoming, h)
		} else {
			past = append(past, h)
		}
	}
	return upcoming, past
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
