package registry

import (
	"errors"
	"fmt"
	"net/http"
)

// FetchError reports a failed fetch of a registry artifact: a transport
// failure, a timeout, a non-success status, or a malformed payload.
type FetchError struct {
	Path       string // registry-relative artifact path
	StatusCode int    // HTTP status, zero when no response was received
	Timeout    bool   // the request exceeded its deadline
	Malformed  bool   // the payload was received but could not be parsed
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.Timeout:
		return fmt.Sprintf("fetching %s: request timed out", e.Path)
	case e.Malformed:
		return fmt.Sprintf("fetching %s: malformed payload: %v", e.Path, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("fetching %s: server returned %d %s", e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	default:
		return fmt.Sprintf("fetching %s: %v", e.Path, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a FetchError for a missing artifact.
func IsNotFound(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.StatusCode == http.StatusNotFound
}
