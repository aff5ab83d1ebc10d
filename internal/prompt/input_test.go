package prompt

import (
	"errors"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/ficedit/internal/settings"
)

// scriptedPrompter answers prompts from a fixed list, then returns io.EOF.
type scriptedPrompter struct {
	answers []string
	prompts []string
}

func (s *scriptedPrompter) Prompt(p string) (string, error) {
	s.prompts = append(s.prompts, p)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (*scriptedPrompter) Close() error { return nil }

func TestTextInputWithPrompter(t *testing.T) {
	t.Parallel()

	value, err := TextInputWithPrompter(&scriptedPrompter{answers: []string{"  New  "}}, "Title", "Old")
	require.NoError(t, err)
	assert.Equal(t, "New", value)

	value, err = TextInputWithPrompter(&scriptedPrompter{answers: []string{""}}, "Title", "Old")
	require.NoError(t, err)
	assert.Equal(t, "Old", value)
}

func TestTextInputWithPrompter_Cancelled(t *testing.T) {
	t.Parallel()

	_, err := TextInputWithPrompter(&scriptedPrompter{}, "Title", "")
	require.ErrorIs(t, err, ErrCancelled)
}

func TestConfirmWithPrompter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		answer string
		want   bool
	}{
		{answer: "y", want: true},
		{answer: "YES", want: true},
		{answer: "n", want: false},
		{answer: "", want: false},
		{answer: "maybe", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.answer, func(t *testing.T) {
			t.Parallel()

			got, err := ConfirmWithPrompter(&scriptedPrompter{answers: []string{tt.answer}}, "Delete?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultiLineInputWithPrompter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		answers []string
		current []string
		want    []string
	}{
		{name: "new lines replace current", answers: []string{"a", " b ", ""}, current: []string{"x"}, want: []string{"a", "b"}},
		{name: "empty first line keeps current", answers: []string{""}, current: []string{"x", "y"}, want: []string{"x", "y"}},
		{name: "dash clears", answers: []string{"-"}, current: []string{"x"}, want: []string{}},
		{name: "dash after entries is literal", answers: []string{"a", "-", ""}, current: nil, want: []string{"a", "-"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := MultiLineInputWithPrompter(&scriptedPrompter{answers: tt.answers}, "Find", tt.current)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordWithPrompter(t *testing.T) {
	t.Parallel()

	prompter := &scriptedPrompter{answers: []string{
		"Fix dates",      // title
		"",               // description keeps current
		"y",              // regex
		`(\d+)/(\d+)`, "", // find
		"$2/$1", "", // replace
	}}
	current := settings.CommandRecord{
		Title:       "New Command",
		Description: "Swap day and month",
		Find:        []string{"old text"},
		Replace:     []string{"new text"},
		Extra:       map[string]any{"restrictFind": "line"},
	}

	rec, err := RecordWithPrompter(prompter, "fixDates", current)
	require.NoError(t, err)

	assert.Equal(t, settings.CommandRecord{
		Title:       "Fix dates",
		Description: "Swap day and month",
		IsRegex:     true,
		Find:        []string{`(\d+)/(\d+)`},
		Replace:     []string{"$2/$1"},
		Extra:       map[string]any{"restrictFind": "line"},
	}, rec)
}

func TestRecordWithPrompter_CancelMidway(t *testing.T) {
	t.Parallel()

	_, err := RecordWithPrompter(&scriptedPrompter{answers: []string{"Title only"}}, "k", settings.CommandRecord{})
	require.ErrorIs(t, err, ErrCancelled)
}

func TestWrapPromptError(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, wrapPromptError("x", liner.ErrPromptAborted), ErrCancelled)
	require.ErrorIs(t, wrapPromptError("x", io.EOF), ErrCancelled)

	other := errors.New("terminal gone")
	err := wrapPromptError("text input", other)
	require.ErrorIs(t, err, other)
	assert.Equal(t, "text input failed: terminal gone", err.Error())
}
