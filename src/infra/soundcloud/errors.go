package soundcloud

import (
	"fmt"
	"net/http"
)

// StatusError is a non-200 response from the API. Callers treat every
// status the same way; the subdivision only shapes the human-facing
// message.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	switch {
	case e.Code == http.StatusNotFound:
		return "[404] nothing lives at that reference"
	case e.Code == http.StatusUnauthorized:
		return "[401] the client id was not accepted"
	case e.Code >= 500 && e.Code < 600:
		return fmt.Sprintf("[%d] the service fell over, probably not your fault", e.Code)
	default:
		return fmt.Sprintf("unexpected status %d from the API", e.Code)
	}
}
