package scraper

import (
	"errors"
	"fmt"
)

// FetchError reports a failed request to the grid endpoint.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("error connecting to %s: unexpected status code: %d", e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("error connecting to %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("error connecting to %s", e.URL)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}
