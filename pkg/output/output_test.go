package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteLines(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected string
	}{
		{
			name:     "lines in order, one per record",
			lines:    []string{"Rust:", "Trust me."},
			expected: "Rust:\nTrust me.\n",
		},
		{
			name:     "no lines, no output",
			lines:    []string{},
			expected: "",
		},
		{
			name:     "empty line is still a record",
			lines:    []string{""},
			expected: "\n",
		},
		{
			name:     "lines are not trimmed",
			lines:    []string{"  indented\t"},
			expected: "  indented\t\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, WriteLines(&buf, tt.lines))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteLinesPropagatesWriteError(t *testing.T) {
	err := WriteLines(failingWriter{}, []string{"a line"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
