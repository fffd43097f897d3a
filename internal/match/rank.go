// Package match ranks selectable options against an incremental search
// query. It is pure: callers own all widget state (highlight, open/closed)
// and re-rank on every keystroke.
package match

import "strings"

// Option is one selectable (value, label) pair. Ranking looks only at the
// label; the value is an opaque identifier carried through.
type Option struct {
	Value string
	Label string
}

// Rank filters options to those whose label contains query
// (case-insensitively) and orders them by match quality: exact matches
// first, then prefix matches, then substring matches. Within a tier the
// original relative order is preserved. An empty query returns the input
// unchanged.
func Rank(query string, options []Option) []Option {
	if query == "" {
		return options
	}

	q := strings.ToLower(query)
	var exact, prefix, substring []Option
	for _, opt := range options {
		label := strings.ToLower(opt.Label)
		switch {
		case label == q:
			exact = append(exact, opt)
		case strings.HasPrefix(label, q):
			prefix = append(prefix, opt)
		case strings.Contains(label, q):
			substring = append(substring, opt)
		}
	}

	ranked := make([]Option, 0, len(exact)+len(prefix)+len(substring))
	ranked = append(ranked, exact...)
	ranked = append(ranked, prefix...)
	ranked = append(ranked, substring...)
	return ranked
}
