package network

import (
	"errors"
	"fmt"
)

var ErrEmptyBody = errors.New("empty response body")

// FetchError is the typed failure of a single fetch. Status is zero for
// transport-level failures (timeout, DNS, connection reset) where no HTTP
// response was received.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 && e.Err == nil {
		return fmt.Sprintf("fetch %s: http %d", e.URL, e.Status)
	}
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: http %d: %v", e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Blocked reports whether the failure looks like defensive blocking by
// the host (401/403/429) rather than a missing page or server fault.
func (e *FetchError) Blocked() bool {
	switch e.Status {
	case 401, 403, 429:
		return true
	}
	return false
}

// Transport reports whether the failure happened before any HTTP response.
func (e *FetchError) Transport() bool {
	return e.Status == 0
}
