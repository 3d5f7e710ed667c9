// Package config turns the raw command line and the process environment into
// the immutable run configuration of linegrep.
//
// # Argument Parsing
//
// Build consumes tokens positionally: the program name is skipped, the next
// token is the query and the one after it the file path. Only tokens after
// those two are scanned for the --ignore-case flag, so a "--ignore-case" in
// the query or file-path position is ordinary positional data.
//
//	cfg, err := config.Build(os.Args)
//	if err != nil {
//	    // ErrMissingQuery or ErrMissingFilePath
//	}
//
// # Environment Variables
//
// Search behavior:
//
//	IGNORE_CASE         Case-insensitive search when set, to any value
//
// Diagnostics (loaded separately via LoadSettings, never affect matching):
//
//	LINEGREP_VERBOSE    Verbosity level (number of 'v's)
//	LINEGREP_NO_COLOR   Disable colored error output (true/false)
package config
