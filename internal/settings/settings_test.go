package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRecord_UnmarshalAcceptsSingleStrings(t *testing.T) {
	t.Parallel()

	var rec CommandRecord
	err := json.Unmarshal([]byte(`{"title":"Trim","find":"\\s+$","replace":"","isRegex":true}`), &rec)
	require.NoError(t, err)

	assert.Equal(t, "Trim", rec.Title)
	assert.True(t, rec.IsRegex)
	assert.Equal(t, []string{`\s+$`}, rec.Find)
	assert.Equal(t, []string{""}, rec.Replace)
	assert.Equal(t, []Pair{{Find: `\s+$`, Replace: ""}}, rec.Pairs())
}

func TestCommandRecord_UnmarshalNullAndMissingFields(t *testing.T) {
	t.Parallel()

	var rec CommandRecord
	err := json.Unmarshal([]byte(`{"title":null,"find":null}`), &rec)
	require.NoError(t, err)

	assert.Empty(t, rec.Title)
	assert.Equal(t, []string{}, rec.Find)
	assert.Nil(t, rec.Replace)
	assert.False(t, rec.IsRegex)
}

func TestCommandRecord_UnmarshalRejectsWrongTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "numeric title", input: `{"title":5}`},
		{name: "string regex flag", input: `{"isRegex":"yes"}`},
		{name: "numeric find list", input: `{"find":[1,2]}`},
		{name: "object replace", input: `{"replace":{}}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var rec CommandRecord
			require.Error(t, json.Unmarshal([]byte(tt.input), &rec))
		})
	}
}

func TestCommandRecord_ExtraFieldsRoundTrip(t *testing.T) {
	t.Parallel()

	input := `{"title":"Dates","find":["a"],"replace":["b"],"restrictFind":"selections","cursorMoveSelect":"<b>","matchCase":true}`

	var rec CommandRecord
	require.NoError(t, json.Unmarshal([]byte(input), &rec))
	assert.Equal(t, map[string]any{
		"restrictFind":     "selections",
		"cursorMoveSelect": "<b>",
		"matchCase":        true,
	}, rec.Extra)

	out, err := marshalJSON(rec)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"restrictFind":"selections"`)
	assert.Contains(t, string(out), `"cursorMoveSelect":"<b>"`)

	var again CommandRecord
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, rec, again)
}

func TestCommandRecord_MarshalWritesEmptyLists(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(CommandRecord{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"","description":"","isRegex":false,"find":[],"replace":[]}`, string(out))
}

func TestCommandRecord_PairsKeepOrder(t *testing.T) {
	t.Parallel()

	rec := CommandRecord{
		Find:    []string{"one", "two", "three"},
		Replace: []string{"1", "2", "3"},
	}

	assert.Equal(t, []Pair{
		{Find: "one", Replace: "1"},
		{Find: "two", Replace: "2"},
		{Find: "three", Replace: "3"},
	}, rec.Pairs())
}

func TestCommandRecord_PairsUnequalLengths(t *testing.T) {
	t.Parallel()

	rec := CommandRecord{Find: []string{"a", "b"}, Replace: []string{"x"}}
	assert.Equal(t, []Pair{{Find: "a", Replace: "x"}, {Find: "b"}}, rec.Pairs())
}

func TestRoot_CommandsMissingSection(t *testing.T) {
	t.Parallel()

	cmds, err := Root{"editor.tabSize": json.Number("4")}.Commands("findInCurrentFile")
	require.NoError(t, err)
	assert.Empty(t, cmds)
	assert.NotNil(t, cmds)
}

func TestRoot_CommandsSectionNotObject(t *testing.T) {
	t.Parallel()

	_, err := Root{"findInCurrentFile": []any{"oops"}}.Commands("findInCurrentFile")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode findInCurrentFile section")
}

func TestRoot_SetCommandsThenCommands(t *testing.T) {
	t.Parallel()

	root := Root{}
	want := map[string]CommandRecord{
		"upper": {Title: "Upper", Find: []string{"a"}, Replace: []string{"A"}},
	}
	root.SetCommands("custom", want)

	got, err := root.Commands("custom")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
