package variants

import (
	"strings"
)

// OptionRow is a single editable option name / option values pair.
type OptionRow struct {
	ID     int
	Name   string
	Values string
}

// Option is a named axis of variation with its ordered list of values.
type Option struct {
	Name   string
	Values []string
}

// ParseValues splits a comma separated list, trimming each entry and discarding empties.
// Repeated values are collapsed onto their first occurrence so every combination label is unique.
func ParseValues(raw string) []string {
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		value := strings.TrimSpace(part)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	return values
}

// ParseOptions collects the participating names and value lists from the rows.
// Names and value lists are gathered independently; ok is false when either list is
// empty or their lengths differ, which happens while a row is only half filled in.
func ParseOptions(rows []OptionRow) (names []string, values [][]string, ok bool) {
	for _, row := range rows {
		if name := strings.TrimSpace(row.Name); name != "" {
			names = append(names, name)
		}
		if parsed := ParseValues(row.Values); len(parsed) > 0 {
			values = append(values, parsed)
		}
	}
	if len(names) == 0 || len(values) == 0 || len(names) != len(values) {
		return nil, nil, false
	}
	return names, values, true
}

// Options pairs names and values positionally.
func Options(names []string, values [][]string) []Option {
	options := make([]Option, 0, len(names))
	for i, name := range names {
		if i >= len(values) {
			break
		}
		options = append(options, Option{Name: name, Values: values[i]})
	}
	return options
}
