// Package cli implements the command-line interface for mlb-gamedata.
//
// The cli package provides the Cobra-based root command that takes a date and
// an output file, loads configuration, and coordinates the scraper, export and
// storage packages to write one day of MLB games to CSV. Errors are mapped to
// distinct exit codes by ExitCode.
package cli
