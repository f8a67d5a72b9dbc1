package ui

import (
	"strings"
	"time"
)

const untitled = "Untitled"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// displayTitle collapses a title to one line and substitutes a placeholder
// for blank ones.
func displayTitle(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return untitled
	}
	return title
}

// formatUpdated renders a note timestamp in local time, or "" when the store
// sent none or it cannot be parsed.
func formatUpdated(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Local().Format("Jan 2, 2006 3:04 PM")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
