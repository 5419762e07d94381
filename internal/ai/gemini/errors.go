package gemini

import (
	"context"
	"errors"
	"net"

	"google.golang.org/genai"
)

var (
	// ErrMissingCredential is returned before any network attempt when no API key is configured.
	ErrMissingCredential = errors.New("gemini api key is not configured")
	// ErrTransport covers transport failures and non-success responses.
	ErrTransport = errors.New("gemini request failed")
	// ErrMalformedResponse is returned when the reply carries no text part.
	ErrMalformedResponse = errors.New("unexpected gemini response")
	// ErrTimeout is returned when the request exceeds the configured timeout.
	ErrTimeout = errors.New("gemini request timed out")
)

// Kind is a coarse classification of gateway errors used for logging.
type Kind string

const (
	KindNone          Kind = ""
	KindConfiguration Kind = "configuration"
	KindTransport     Kind = "transport"
	KindMalformed     Kind = "malformed_response"
	KindTimeout       Kind = "timeout"
	KindUnknown       Kind = "unknown"
)

// Classify maps an error returned by the gateway to its Kind.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrMissingCredential):
		return KindConfiguration
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformed
	case errors.Is(err, ErrTransport):
		return KindTransport
	default:
		return KindUnknown
	}
}

// Recoverable reports whether the conversation can continue after err.
// Only configuration errors require intervention outside the chat.
func Recoverable(err error) bool {
	return Classify(err) != KindConfiguration
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// statusCode extracts the HTTP status from a genai API error, or 0.
func statusCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code
	}

	return 0
}
