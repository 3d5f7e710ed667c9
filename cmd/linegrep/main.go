package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sonemaro/linegrep/cmd/linegrep/app"
	"github.com/sonemaro/linegrep/internal/config"
	"github.com/sonemaro/linegrep/internal/version"
	"github.com/sonemaro/linegrep/pkg/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("Error:"), err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "linegrep <query> <file_path> [--ignore-case]",
	Short: "Print every line of a file containing a query string",
	Long: `linegrep v` + version.Version + `
========================================

Reads a file and prints every line containing the query, in file order.

Arguments are positional: the first token is the query, the second the file
path. A --ignore-case token after those two (or the IGNORE_CASE environment
variable being set, to any value) switches to case-insensitive matching. A
--ignore-case in the query or file path position is taken literally as that
positional value.

Environment Variables:
  IGNORE_CASE        Case-insensitive search when set
  LINEGREP_VERBOSE   Diagnostic verbosity (number of 'v's)
  LINEGREP_NO_COLOR  Disable colored error output

Examples:
  linegrep duct poem.txt
  linegrep rUsT poem.txt --ignore-case
  IGNORE_CASE= linegrep rUsT poem.txt`,
	// Raw tokens must reach config.Build untouched so that a --ignore-case
	// in a positional slot stays positional data.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               run,
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		switch args[0] {
		case "--version":
			fmt.Println(version.Version)
			return nil
		case "--version-full":
			fmt.Print(version.FullVersion())
			return nil
		case "--help", "-h":
			return cmd.Help()
		}
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if settings.NoColor {
		color.NoColor = true
	}

	log := logger.NewLogger(logger.Config{
		Verbosity: settings.Verbose,
		Output:    os.Stderr,
	})

	cfg, err := config.Build(append([]string{"linegrep"}, args...))
	if err != nil {
		return fmt.Errorf("problem parsing arguments: %w", err)
	}

	log.WithFields(logger.Fields{
		"query":      cfg.Query,
		"file":       cfg.FilePath,
		"ignoreCase": cfg.IgnoreCase,
	}).Debug("Configuration parsed")

	return app.New(log).Run(cfg)
}
