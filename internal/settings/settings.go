// Package settings reads and writes the editor's settings.json and the
// find/replace command section stored inside it.
package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/wizzomafizzo/ficedit/internal/constants"
)

// Root is the full parsed settings document. Numbers are kept as
// json.Number so they are written back exactly as read.
type Root map[string]any

// CommandRecord is one find/replace command definition.
type CommandRecord struct {
	// Extra holds fields the extension understands but ficedit does not edit.
	Extra       map[string]any `json:"-"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Find        []string       `json:"find"`
	Replace     []string       `json:"replace"`
	IsRegex     bool           `json:"isRegex"` //nolint:tagliatelle // extension settings format
}

// Pair is a single find pattern with its replacement.
type Pair struct {
	Find    string
	Replace string
}

// Commands decodes the command section addressed by sectionKey. A missing
// section reads as an empty collection.
func (r Root) Commands(sectionKey string) (map[string]CommandRecord, error) {
	raw, ok := r[sectionKey]
	if !ok || raw == nil {
		return map[string]CommandRecord{}, nil
	}

	data, err := marshalJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s section: %w", sectionKey, err)
	}

	var commands map[string]CommandRecord
	if err := decodeJSON(data, &commands); err != nil {
		return nil, fmt.Errorf("failed to decode %s section: %w", sectionKey, err)
	}
	if commands == nil {
		commands = map[string]CommandRecord{}
	}
	return commands, nil
}

// SetCommands replaces the command section addressed by sectionKey.
func (r Root) SetCommands(sectionKey string, commands map[string]CommandRecord) {
	if commands == nil {
		commands = map[string]CommandRecord{}
	}
	r[sectionKey] = commands
}

// UnmarshalJSON accepts find and replace either as a list or as a single
// string, and keeps unknown fields in Extra.
func (c *CommandRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err //nolint:wrapcheck // decoder error carries position
	}

	*c = CommandRecord{}
	for key, value := range fields {
		var err error
		switch key {
		case constants.FieldTitle:
			err = decodeOptionalString(value, &c.Title)
		case constants.FieldDescription:
			err = decodeOptionalString(value, &c.Description)
		case constants.FieldIsRegex:
			err = decodeOptionalBool(value, &c.IsRegex)
		case constants.FieldFind:
			c.Find, err = decodeStringList(value)
		case constants.FieldReplace:
			c.Replace, err = decodeStringList(value)
		default:
			var extra any
			err = decodeJSON(value, &extra)
			if err == nil {
				if c.Extra == nil {
					c.Extra = map[string]any{}
				}
				c.Extra[key] = extra
			}
		}
		if err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
	}
	return nil
}

// MarshalJSON always writes find and replace as lists.
func (c CommandRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+5)
	for key, value := range c.Extra {
		out[key] = value
	}

	find := c.Find
	if find == nil {
		find = []string{}
	}
	replace := c.Replace
	if replace == nil {
		replace = []string{}
	}

	out[constants.FieldTitle] = c.Title
	out[constants.FieldDescription] = c.Description
	out[constants.FieldIsRegex] = c.IsRegex
	out[constants.FieldFind] = find
	out[constants.FieldReplace] = replace

	return marshalJSON(out)
}

// Pairs zips find and replace in order. Surplus entries on either side
// are paired with an empty string.
func (c CommandRecord) Pairs() []Pair {
	n := max(len(c.Find), len(c.Replace))
	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		var p Pair
		if i < len(c.Find) {
			p.Find = c.Find[i]
		}
		if i < len(c.Replace) {
			p.Replace = c.Replace[i]
		}
		pairs = append(pairs, p)
	}
	return pairs
}

func decodeOptionalString(data json.RawMessage, dst *string) error {
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, dst) //nolint:wrapcheck // wrapped by caller
}

func decodeOptionalBool(data json.RawMessage, dst *bool) error {
	if string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, dst) //nolint:wrapcheck // wrapped by caller
}

func decodeStringList(data json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return []string{}, nil
	}

	if trimmed[0] == '"' {
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, err //nolint:wrapcheck // wrapped by caller
		}
		return []string{single}, nil
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, err //nolint:wrapcheck // wrapped by caller
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// decodeJSON decodes a single strict JSON value, keeping numbers as json.Number.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err //nolint:wrapcheck // wrapped by caller
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected content after top-level value")
	}
	return nil
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err //nolint:wrapcheck // wrapped by caller
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// encodeIndented renders the document as strict, indented JSON.
func encodeIndented(root Root) ([]byte, error) {
	if root == nil {
		root = Root{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(root); err != nil {
		return nil, err //nolint:wrapcheck // wrapped by caller
	}
	return buf.Bytes(), nil
}
