// Package commands implements the editing rules for the find/replace
// command collection: unique keys, pair reconciliation and record
// normalisation.
package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wizzomafizzo/ficedit/internal/settings"
)

const (
	// UntitledTitle replaces a blank title on save.
	UntitledTitle = "(no title)"
	// NoDescription is shown for records without a description.
	NoDescription = "(no description)"
)

// Editor mutates a command collection in memory. Callers persist the
// result through settings.Store.
type Editor struct {
	commands map[string]settings.CommandRecord
}

// NewEditor wraps commands. The map is modified in place.
func NewEditor(commands map[string]settings.CommandRecord) *Editor {
	if commands == nil {
		commands = map[string]settings.CommandRecord{}
	}
	return &Editor{commands: commands}
}

// Commands returns the underlying collection.
func (e *Editor) Commands() map[string]settings.CommandRecord {
	return e.commands
}

// Keys returns the command keys in sorted order.
func (e *Editor) Keys() []string {
	keys := make([]string, 0, len(e.commands))
	for key := range e.commands {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Get returns the record stored under key.
func (e *Editor) Get(key string) (settings.CommandRecord, error) {
	rec, ok := e.commands[key]
	if !ok {
		return settings.CommandRecord{}, fmt.Errorf("command '%s': %w", key, settings.ErrNotFound)
	}
	return rec, nil
}

// Add inserts a new record. Blank and duplicate keys are rejected.
func (e *Editor) Add(key string, rec settings.CommandRecord) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return &settings.ValidationError{Message: "command key cannot be empty"}
	}
	if _, exists := e.commands[key]; exists {
		return &settings.ValidationError{Key: key, Message: "command key already exists"}
	}
	e.commands[key] = rec
	return nil
}

// Update replaces an existing record.
func (e *Editor) Update(key string, rec settings.CommandRecord) error {
	if _, exists := e.commands[key]; !exists {
		return fmt.Errorf("command '%s': %w", key, settings.ErrNotFound)
	}
	e.commands[key] = rec
	return nil
}

// Delete removes a record.
func (e *Editor) Delete(key string) error {
	if _, exists := e.commands[key]; !exists {
		return fmt.Errorf("command '%s': %w", key, settings.ErrNotFound)
	}
	delete(e.commands, key)
	return nil
}

// NewTemplate returns the record offered when creating a command.
func NewTemplate() settings.CommandRecord {
	return settings.CommandRecord{
		Title:       "New Command",
		Description: "Describe what this does",
		Find:        []string{"old text"},
		Replace:     []string{"new text"},
	}
}

// Normalize trims text fields and gives blank titles a placeholder.
func Normalize(rec settings.CommandRecord) settings.CommandRecord {
	rec.Title = strings.TrimSpace(rec.Title)
	if rec.Title == "" {
		rec.Title = UntitledTitle
	}
	rec.Description = strings.TrimSpace(rec.Description)
	if rec.Find == nil {
		rec.Find = []string{}
	}
	if rec.Replace == nil {
		rec.Replace = []string{}
	}
	return rec
}

// ParseLines splits multi-line input into trimmed, non-blank entries.
func ParseLines(text string) []string {
	lines := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
