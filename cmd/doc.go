// Package cmd implements the command-line interface for recordingpage.
//
// This package provides the following commands:
//   - serve: Start the HTTP server that renders the recordings page per request
//   - render: Fetch and render the page once to stdout or a file
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
