package clients

import (
	"errors"
	"fmt"
)

// DataMalformedMessage is shown to users whenever a response body cannot be decoded.
const DataMalformedMessage = "We couldn’t load the recipes at this time. Please refresh or try again later."

var (
	// ErrInvalidURL is returned when the base URL and endpoint do not form a usable URL.
	ErrInvalidURL = errors.New("invalid url")
	// ErrDecoding is returned when a 2xx body does not match the requested type.
	// The parser diagnostic is logged, never returned.
	ErrDecoding = errors.New("decode response")
)

// ServerError reports a response status outside [200,299].
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// CustomError carries a transport-level failure. Err, when set, is the
// underlying cause and is reachable through errors.Is / errors.As.
type CustomError struct {
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// UserMessage renders err as the text shown in an error alert.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var serverErr *ServerError
	var customErr *CustomError
	switch {
	case errors.Is(err, ErrInvalidURL):
		return "The URL is invalid."
	case errors.Is(err, ErrDecoding):
		return DataMalformedMessage
	case errors.As(err, &serverErr):
		return fmt.Sprintf("Server returned an error with status code %d.", serverErr.StatusCode)
	case errors.As(err, &customErr):
		return customErr.Message
	default:
		return err.Error()
	}
}

// ErrorKind classifies err for metric labels. A nil error is "ok".
func ErrorKind(err error) string {
	if err == nil {
		return "ok"
	}
	var serverErr *ServerError
	var customErr *CustomError
	switch {
	case errors.Is(err, ErrInvalidURL):
		return "invalid_url"
	case errors.Is(err, ErrDecoding):
		return "decoding_error"
	case errors.As(err, &serverErr):
		return "server_error"
	case errors.As(err, &customErr):
		return "transport_error"
	default:
		return "unknown"
	}
}
