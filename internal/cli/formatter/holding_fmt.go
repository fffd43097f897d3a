package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stagehand/internal/domain"
)

// FormatHoldingList renders holdings in two sections, upcoming first and
// past after, each as a table. Event names are looked up from eventNames
// by origin event ID; freestanding holdings show a dash.
func FormatHoldingList(holdings []*domain.Holding, eventNames map[string]string, now time.Time) string {
	upcoming, past := domain.PartitionHoldings(holdings, now)

	var b strings.Builder
	b.WriteString(Header("Upcoming"))
	b.WriteString("\n")
	if len(upcoming) == 0 {
		b.WriteString(Dim("No upcoming holdings.") + "\n")
	} else {
		b.WriteString(holdingTable(upcoming, eventNames, now))
	}

	if len(past) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Past"))
		b.WriteString("\n")
		b.WriteString(holdingTable(past, eventNames, now))
	}
	return b.String()
}

func holdingTable(holdings []*domain.Holding, eventNames map[string]string, now time.Time) string {
	rows := make([][]string, len(holdings))
	for i, h := range holdings {
		event := "-"
		if h.EventID != nil {
			if name, ok := eventNames[*h.EventID]; ok {
				event = name
			} else {
				event = ShortID(*h.EventID)
			}
		}
		rows[i] = []string{
			Dim(ShortID(h.ID)),
			h.Name,
			h.Date.Format("2006-01-02"),
			Dim(RelativeDateFrom(h.Date, now)),
			event,
			h.Mention,
		}
	}
	return RenderTable([]string{"ID", "NAME", "DATE", "WHEN", "EVENT", "MENTION"}, rows)
}

// FormatHoldingInspect renders one holding with its task checklist. Tasks
// show their derived due date colored by urgency.
func FormatHoldingInspect(h *domain.Holding, tasks []*domain.HoldingTask, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(h.Name), Dim(ShortID(h.ID))))
	b.WriteString(fmt.Sprintf("Date:     %s (%s)\n", h.Date.Format("2006-01-02"), RelativeDateFrom(h.Date, now)))
	b.WriteString(fmt.Sprintf("Channel:  %s\n", h.ChannelID))
	b.WriteString(fmt.Sprintf("Mention:  %s\n", h.Mention))

	b.WriteString("\n")
	b.WriteString(Header("Tasks"))
	b.WriteString("\n")
	if len(tasks) == 0 {
		b.WriteString(Dim("No tasks.") + "\n")
		return b.String()
	}

	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		due := t.DueDate(h.Date)
		style := DueStyle(due, now, t.Reminded)
		mark := " "
		if t.Reminded {
			mark = "✓"
		}
		rows[i] = []string{
			Dim(ShortID(t.ID)),
			mark,
			style.Render(t.Name),
			style.Render(due.Format("2006-01-02")),
			fmt.Sprintf("%dd before", t.DaysBefore),
		}
	}
	b.WriteString(RenderTable([]string{"ID", "", "TASK", "DUE", "LEAD"}, rows))
	return b.String()
}

// FormatEventList renders events as a table.
func FormatEventList(events []*domain.Event) string {
	rows := make([][]string, len(events))
	for i, e := range events {
		rows[i] = []string{Dim(ShortID(e.ID)), e.Name}
	}
	return RenderTable([]string{"ID", "NAME"}, rows)
}

// FormatDefaultTaskList renders an event's template tasks as a table.
func FormatDefaultTaskList(tasks []*domain.DefaultTask) string {
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{
			Dim(ShortID(t.ID)),
			t.Name,
			fmt.Sprintf("%dd before", t.DaysBefore),
			Dim(t.Description),
		}
	}
	return RenderTable([]string{"ID", "NAME", "LEAD", "DESCRIPTION"}, rows)
}

// FormatChannelList renders chat channels as a table.
func FormatChannelList(channels []domain.Channel) string {
	rows := make([][]string, len(channels))
	for i, c := range channels {
		rows[i] = []string{Dim(ShortID(c.ID)), c.Name}
	}
	return RenderTable([]string{"ID", "CHANNEL"}, rows)
}
