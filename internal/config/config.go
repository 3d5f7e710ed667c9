package config

import (
	"fmt"
	"os"
)

const (
	// FlagIgnoreCase is the literal token enabling case-insensitive search.
	FlagIgnoreCase = "--ignore-case"

	// EnvIgnoreCase enables case-insensitive search when set in the
	// environment. Presence alone decides; the value is never inspected.
	EnvIgnoreCase = "IGNORE_CASE"
)

// Config holds the three run-time parameters of a single search run. It is
// built once from the command line and consumed once by the runner.
type Config struct {
	// Query is the text to search for. An empty query matches every line.
	Query string

	// FilePath is the path of the file to search.
	FilePath string

	// IgnoreCase selects case-insensitive matching.
	IgnoreCase bool
}

// Build constructs a Config from raw command-line tokens. The first token is
// the program invocation name and is always skipped. The next two tokens
// become the query and the file path; a remaining token equal to
// "--ignore-case" enables case-insensitive search, and failing that the
// IGNORE_CASE environment variable being set does the same.
//
// Build never touches the filesystem. A missing or unreadable file surfaces
// later, when the runner reads it.
func Build(args []string) (Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}

	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	query := args[0]

	if len(args) < 2 {
		return Config{}, ErrMissingFilePath
	}
	filePath := args[1]

	ignoreCase := false
	for _, arg := range args[2:] {
		if arg == FlagIgnoreCase {
			ignoreCase = true
			break
		}
	}
	if !ignoreCase {
		_, ignoreCase = os.LookupEnv(EnvIgnoreCase)
	}

	return Config{
		Query:      query,
		FilePath:   filePath,
		IgnoreCase: ignoreCase,
	}, nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf("Config{Query: %q, FilePath: %q, IgnoreCase: %v}",
		c.Query, c.FilePath, c.IgnoreCase)
}
