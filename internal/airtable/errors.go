package airtable

import (
	"errors"
	"fmt"
)

// ErrMissingConfig is returned by NewClient when the token or base ID is
// absent. There is no runtime recovery; callers should fail fast.
var ErrMissingConfig = errors.New("airtable: missing token or base id")

// ErrUnreachable wraps transport-level failures where no response was
// received at all. Callers can distinguish it from an APIError to tell
// "remote unreachable" apart from "remote rejected".
var ErrUnreachable = errors.New("airtable: upstream unreachable")

// APIError is a non-2xx response from the Airtable API. The upstream status
// and raw error body are preserved so callers never lose detail.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("airtable: api error: status=%d body=%s", e.StatusCode, e.Body)
}
