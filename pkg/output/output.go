/*
Package output writes search results to the process output stream.

Matched lines are written exactly as they appeared in the source file, one
per output line, with no annotation, trimming or coloring. Writes go through
a single buffered writer that is flushed before returning, so every line is
on the stream once WriteLines succeeds.
*/
package output

import (
	"bufio"
	"fmt"
	"io"
)

// WriteLines writes each line to w followed by a newline, preserving order.
// The first write failure aborts with the underlying error.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)

	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
