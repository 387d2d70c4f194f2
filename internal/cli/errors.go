package cli

import (
	"errors"

	"github.com/pfrederiksen/mlb-gamedata/internal/gameday"
	"github.com/pfrederiksen/mlb-gamedata/internal/scraper"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitUsage       = 2
	ExitInvalidDate = 3
	ExitFetch       = 4
)

// ArgumentCountError reports a wrong number of positional arguments.
type ArgumentCountError struct {
	Got  int
	Want int
}

func (e *ArgumentCountError) Error() string {
	if e.Got < e.Want {
		return "too few arguments"
	}
	return "too many arguments"
}

// usageError wraps flag parsing failures.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var argErr *ArgumentCountError
	var flagErr *usageError
	switch {
	case errors.As(err, &argErr), errors.As(err, &flagErr):
		return ExitUsage
	case errors.Is(err, gameday.ErrInvalidDate):
		return ExitInvalidDate
	}
	if _, ok := scraper.AsFetchError(err); ok {
		return ExitFetch
	}
	return ExitError
}

// showsHelp reports whether the help text should follow the error message.
func showsHelp(err error) bool {
	switch ExitCode(err) {
	case ExitUsage, ExitInvalidDate:
		return true
	default:
		return false
	}
}
