/*
Package logger provides a structured logging solution for the linegrep
application. It wraps uber-go/zap to provide a simpler interface with support
for verbosity levels and structured fields.

All diagnostic output goes to stderr so that stdout stays reserved for the
matched lines themselves.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 0,  // Default level (INFO)
	})

	log.Info("Run started")
	log.Debug("Parsed configuration") // Only shown with verbosity >= 1

Verbosity Levels:

	0: Info, Warn, Error (default)
	1+: Debug + Level 0

Structured Logging:

	log.WithFields(logger.Fields{
	    "query": "duct",
	    "file":  "poem.txt",
	}).Debug("Starting search")

Output Example (JSON):

	{
	    "level": "debug",
	    "ts": "2024-06-11T15:04:05.000Z",
	    "message": "Starting search",
	    "query": "duct",
	    "file": "poem.txt"
	}
*/
package logger
