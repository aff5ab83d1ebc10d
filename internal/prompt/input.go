// Package prompt collects command records from the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/wizzomafizzo/ficedit/internal/commands"
	"github.com/wizzomafizzo/ficedit/internal/settings"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() Prompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// TextInputWithPrompter asks for one line. An empty answer keeps current.
func TextInputWithPrompter(prompter Prompter, label, current string) (string, error) {
	coloredPrompt := color.CyanString("%s [%s]: ", label, current)
	result, err := prompter.Prompt(coloredPrompt)
	if err != nil {
		return "", wrapPromptError("text input", err)
	}
	if strings.TrimSpace(result) == "" {
		return current, nil
	}
	return strings.TrimSpace(result), nil
}

// ConfirmWithPrompter asks a yes/no question; anything but y/yes is no.
func ConfirmWithPrompter(prompter Prompter, question string) (bool, error) {
	result, err := prompter.Prompt(color.YellowString("%s [y/N]: ", question))
	if err != nil {
		return false, wrapPromptError("confirmation", err)
	}
	switch strings.ToLower(strings.TrimSpace(result)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// MultiLineInputWithPrompter reads lines until an empty one. An empty
// first line keeps current; a lone "-" clears the list.
func MultiLineInputWithPrompter(prompter Prompter, label string, current []string) ([]string, error) {
	color.Cyan("%s (one per line, empty line to finish, '-' to clear)", label)
	for _, line := range current {
		_, _ = fmt.Fprintln(color.Output, color.HiBlackString("  current: %s", line))
	}

	var lines []string
	for {
		input, err := prompter.Prompt(color.YellowString("  > "))
		if err != nil {
			return nil, wrapPromptError("multi-line input", err)
		}

		if strings.TrimSpace(input) == "" {
			break
		}
		if len(lines) == 0 && strings.TrimSpace(input) == "-" {
			return []string{}, nil
		}
		lines = append(lines, input)
	}

	if len(lines) == 0 {
		return current, nil
	}
	return commands.ParseLines(strings.Join(lines, "\n")), nil
}

// RecordWithPrompter walks the user through every field of rec.
func RecordWithPrompter(prompter Prompter, key string, rec settings.CommandRecord) (settings.CommandRecord, error) {
	color.Green("Editing command '%s'", key)

	title, err := TextInputWithPrompter(prompter, "Title", rec.Title)
	if err != nil {
		return rec, err
	}

	description, err := TextInputWithPrompter(prompter, "Description", rec.Description)
	if err != nil {
		return rec, err
	}

	isRegex, err := ConfirmWithPrompter(prompter, fmt.Sprintf("Use regular expressions (currently %t)?", rec.IsRegex))
	if err != nil {
		return rec, err
	}

	find, err := MultiLineInputWithPrompter(prompter, "Find patterns", rec.Find)
	if err != nil {
		return rec, err
	}

	replace, err := MultiLineInputWithPrompter(prompter, "Replace with (same count as find)", rec.Replace)
	if err != nil {
		return rec, err
	}

	rec.Title = title
	rec.Description = description
	rec.IsRegex = isRegex
	rec.Find = find
	rec.Replace = replace
	return rec, nil
}

func wrapPromptError(what string, err error) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return ErrCancelled
	}
	return fmt.Errorf("%s failed: %w", what, err)
}
