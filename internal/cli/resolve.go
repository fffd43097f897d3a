package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/stagehand/internal/domain"
)

// resolveEventID resolves an event reference which can be an exact name
// (case-insensitive), a full UUID, or a UUID prefix.
func resolveEventID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("event is required")
	}

	events, err := app.Events.List(ctx, "")
	if err != nil {
		return "", err
	}

	for _, e := range events {
		if strings.EqualFold(e.Name, input) {
			return e.ID, nil
		}
	}
	for _, e := range events {
		if e.ID == input {
			return e.ID, nil
		}
	}

	var matches []string
	for _, e := range events {
		if strings.HasPrefix(e.ID, input) {
			matches = append(matches, e.ID)
		}
	}
	return onePrefixMatch("event", input, matches)
}

// resolveHoldingID resolves a holding reference the same way: exact name,
// full UUID, or UUID prefix.
func resolveHoldingID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("holding is required")
	}

	holdings, err := app.Holdings.List(ctx)
	if err != nil {
		return "", err
	}

	for _, h := range holdings {
		if strings.EqualFold(h.Name, input) {
			return h.ID, nil
		}
	}
	for _, h := range holdings {
		if h.ID == input {
			return h.ID, nil
		}
	}

	var matches []string
	for _, h := range holdings {
		if strings.HasPrefix(h.ID, input) {
			matches = append(matches, h.ID)
		}
	}
	return onePrefixMatch("holding", input, matches)
}

func onePrefixMatch(kind, input string, matches []string) (string, error) {
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q: %w", kind, input, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}
