// Package quiver implements the functionality of the program, the CLI in
// package cmd is simply the entrypoint to exported functions and methods in
// this package.
package quiver

import (
	"io"
	"time"

	"github.com/charmbracelet/log/v2"
)

// Defaults for generation, matching the file layout of the collection exports
// this tool is normally pointed at.
const (
	// DefaultCollection is the collection file read when none is given.
	DefaultCollection = "postman_collection.json"

	// DefaultOutput is the directory generated Dart files are written to
	// when no --output flag is given.
	DefaultOutput = "generated_dart_requests"
)

// Quiver represents the quiver program.
type Quiver struct {
	stdin  io.Reader   // Interactive prompts read from here
	stdout io.Writer   // Normal program output is written here
	stderr io.Writer   // Logs and errors are written here
	logger *log.Logger // The logger for the application
}

// New returns a new [Quiver].
func New(debug bool, stdin io.Reader, stdout, stderr io.Writer) Quiver {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(stderr, log.Options{
		TimeFormat:      time.RFC3339Nano,
		Level:           level,
		Prefix:          "quiver",
		ReportTimestamp: true,
	})

	logger.SetStyles(defaultLogStyles())

	return Quiver{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}
