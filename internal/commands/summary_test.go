package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wizzomafizzo/ficedit/internal/settings"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	summary := Summarize("dates", settings.CommandRecord{
		Title:       "Dates",
		Description: "\n  Swap day and month  \nsecond line",
		Find:        []string{"a", "b", "c"},
		Replace:     []string{"x"},
		IsRegex:     true,
	})

	assert.Equal(t, Summary{
		Key:          "dates",
		Title:        "Dates",
		Description:  "Swap day and month",
		FindCount:    3,
		ReplaceCount: 1,
		IsRegex:      true,
	}, summary)
}

func TestSummarize_Placeholders(t *testing.T) {
	t.Parallel()

	summary := Summarize("blank", settings.CommandRecord{})
	assert.Equal(t, UntitledTitle, summary.Title)
	assert.Equal(t, NoDescription, summary.Description)
}

func TestEditor_SummariesInKeyOrder(t *testing.T) {
	t.Parallel()

	summaries := NewEditor(sampleCommands()).Summaries()
	if assert.Len(t, summaries, 2) {
		assert.Equal(t, "fixDates", summaries[0].Key)
		assert.Equal(t, "trim", summaries[1].Key)
	}
}
