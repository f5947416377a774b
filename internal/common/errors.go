package common

import (
	"errors"
	"fmt"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrInternalServerError  = errors.New("internal server error")
	ErrNetworkUnreachable   = errors.New("network unreachable")
	ErrMalformedResponse    = errors.New("malformed response")
	ErrUnknownCategory      = errors.New("unknown product category")
	ErrUnableToPersist      = errors.New("unable to persist data")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// ServerError is returned when the API answered with a non-2xx status.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server responded with status %d: %s", e.StatusCode, e.Message)
}

// StatusCode returns the HTTP status carried by err, or 0 when the request never got a response.
func StatusCode(err error) int {
	var se *ServerError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
