package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contents string
		expected []string
	}{
		{
			name:     "one result",
			query:    "duct",
			contents: "Rust:\nsafe, fast, productive.\nPick three.",
			expected: []string{"safe, fast, productive."},
		},
		{
			name:     "multiple results in document order",
			query:    "st",
			contents: "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.",
			expected: []string{"Rust:", "safe, fast, productive.", "Trust me."},
		},
		{
			name:     "no match",
			query:    "xyz123",
			contents: "abc\ndef",
			expected: []string{},
		},
		{
			name:     "empty query matches every line",
			query:    "",
			contents: "one\ntwo\nthree",
			expected: []string{"one", "two", "three"},
		},
		{
			name:     "empty contents",
			query:    "anything",
			contents: "",
			expected: []string{},
		},
		{
			name:     "case sensitive misses differently cased line",
			query:    "rUsT",
			contents: "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.",
			expected: []string{},
		},
		{
			name:     "trailing newline produces no empty match",
			query:    "",
			contents: "alpha\nbeta\n",
			expected: []string{"alpha", "beta"},
		},
		{
			name:     "blank line in the middle is a line",
			query:    "",
			contents: "alpha\n\nbeta",
			expected: []string{"alpha", "", "beta"},
		},
		{
			name:     "crlf line endings",
			query:    "fast",
			contents: "Rust:\r\nsafe, fast, productive.\r\nPick three.\r\n",
			expected: []string{"safe, fast, productive."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Search(tt.query, tt.contents))
		})
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contents string
		expected []string
	}{
		{
			name:     "mixed case query",
			query:    "rUsT",
			contents: "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.",
			expected: []string{"Rust:", "Trust me."},
		},
		{
			name:     "mixed case contents",
			query:    "brown",
			contents: "the quick bRoWn fox\njumps over",
			expected: []string{"the quick bRoWn fox"},
		},
		{
			name:     "no match",
			query:    "xyz123",
			contents: "abc\ndef",
			expected: []string{},
		},
		{
			name:     "empty query matches every line",
			query:    "",
			contents: "One\nTwo",
			expected: []string{"One", "Two"},
		},
		{
			name:     "empty contents",
			query:    "query",
			contents: "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SearchCaseInsensitive(tt.query, tt.contents))
		})
	}
}

// Every case-sensitive match must also be a case-insensitive match, in the
// same relative order.
func TestCaseInsensitiveIsSuperset(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\nRUST forever"

	for _, query := range []string{"", "Rust", "st", "three", "nothing-here"} {
		sensitive := Search(query, contents)
		insensitive := SearchCaseInsensitive(query, contents)

		i := 0
		for _, line := range insensitive {
			if i < len(sensitive) && line == sensitive[i] {
				i++
			}
		}
		assert.Equal(t, len(sensitive), i,
			"query %q: case-sensitive matches missing from case-insensitive results", query)
	}
}

// Matched lines must be subslices of the input, not copies.
func TestSearchReturnsSubslices(t *testing.T) {
	contents := "Rust:\nsafe, fast, productive.\nPick three."

	for _, line := range Search("t", contents) {
		assert.True(t, strings.Contains(contents, line))
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		expected []string
	}{
		{"empty", "", []string{}},
		{"single line no terminator", "alpha", []string{"alpha"}},
		{"single line with terminator", "alpha\n", []string{"alpha"}},
		{"lone newline is one empty line", "\n", []string{""}},
		{"interior empty line survives", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf stripped", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lines(tt.contents))
		})
	}
}
