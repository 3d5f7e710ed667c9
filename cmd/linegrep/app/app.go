/*
Package app wires the components of linegrep together and drives a single
search run: read the target file, select the matching lines, write them to
the output stream.

Usage:

	application := app.New(log)
	if err := application.Run(cfg); err != nil {
	    // read failure, nothing was written
	}
*/
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/sonemaro/linegrep/internal/config"
	"github.com/sonemaro/linegrep/pkg/logger"
	"github.com/sonemaro/linegrep/pkg/output"
	"github.com/sonemaro/linegrep/pkg/search"
)

// App holds the dependencies of a single search run.
type App struct {
	fs  afero.Fs
	out io.Writer
	log logger.Logger
}

// New creates an application instance backed by the real filesystem and
// standard output.
func New(log logger.Logger) *App {
	return NewWithDeps(afero.NewOsFs(), os.Stdout, log)
}

// NewWithDeps creates an application instance with explicit dependencies.
// Tests use it to substitute an in-memory filesystem and an output buffer.
func NewWithDeps(fs afero.Fs, out io.Writer, log logger.Logger) *App {
	return &App{
		fs:  fs,
		out: out,
		log: log,
	}
}

// Run executes the search described by cfg. The whole file is read into
// memory, its lines are filtered and every match is written to the output
// stream in file order, without any transformation or reordering.
//
// The file read is the only failure mode: a failed read (not found,
// permission, path is a directory) is returned wrapped with its cause and
// nothing is written. Zero matches is a success with no output.
func (a *App) Run(cfg config.Config) error {
	a.log.WithFields(logger.Fields{
		"query":      cfg.Query,
		"file":       cfg.FilePath,
		"ignoreCase": cfg.IgnoreCase,
	}).Debug("Starting search run")

	data, err := afero.ReadFile(a.fs, cfg.FilePath)
	if err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
			"file":  cfg.FilePath,
		}).Error("Failed to read file")

		return fmt.Errorf("failed to read %s: %w", cfg.FilePath, err)
	}

	contents := string(data)

	var results []string
	if cfg.IgnoreCase {
		results = search.SearchCaseInsensitive(cfg.Query, contents)
	} else {
		results = search.Search(cfg.Query, contents)
	}

	a.log.WithFields(logger.Fields{
		"matches": len(results),
		"bytes":   len(data),
	}).Debug("Search completed")

	if err := output.WriteLines(a.out, results); err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to write results")

		return err
	}

	return nil
}
