package commands

import (
	"strings"

	"github.com/wizzomafizzo/ficedit/internal/settings"
)

// Summary is the one-line view of a command used in listings.
type Summary struct {
	Key          string
	Title        string
	Description  string
	FindCount    int
	ReplaceCount int
	IsRegex      bool
}

// Summarize builds the listing view of rec.
func Summarize(key string, rec settings.CommandRecord) Summary {
	title := rec.Title
	if title == "" {
		title = UntitledTitle
	}

	description := NoDescription
	if trimmed := strings.TrimSpace(rec.Description); trimmed != "" {
		description, _, _ = strings.Cut(trimmed, "\n")
		description = strings.TrimSpace(description)
	}

	return Summary{
		Key:          key,
		Title:        title,
		Description:  description,
		FindCount:    len(rec.Find),
		ReplaceCount: len(rec.Replace),
		IsRegex:      rec.IsRegex,
	}
}

// Summaries returns the listing view of every command in key order.
func (e *Editor) Summaries() []Summary {
	keys := e.Keys()
	out := make([]Summary, 0, len(keys))
	for _, key := range keys {
		out = append(out, Summarize(key, e.commands[key]))
	}
	return out
}
