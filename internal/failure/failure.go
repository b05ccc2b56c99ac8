// Package failure classifies errors raised while searching and loading images
// into a small closed set of kinds, and renders the user-facing log text for
// each kind. Every call site shares the same mapping.
package failure

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"syscall"

	"github.com/cockroachdb/errors"
)

// Kind is the category of a classified failure
type Kind int

const (
	KindUnexpected Kind = iota
	KindHTTP
	KindConnection
	KindTimeout
	KindDecode
	KindRequest
)

// String returns the category name used in diagnostic logs
func (k Kind) String() string {
	switch k {
	case KindHTTP:
		return "HttpError"
	case KindConnection:
		return "ConnectionError"
	case KindTimeout:
		return "TimeoutError"
	case KindDecode:
		return "DecodeError"
	case KindRequest:
		return "GenericRequestError"
	default:
		return "UnexpectedError"
	}
}

// Marks attached by transports and decoders so classification survives wrapping.
var (
	ErrRequest = errors.New("request failed")
	ErrDecode  = errors.New("image decoding failed")
)

// MarkRequest tags err as a request-layer failure.
func MarkRequest(err error) error {
	return errors.Mark(err, ErrRequest)
}

// MarkDecode tags err as an image decoding failure.
func MarkDecode(err error) error {
	return errors.Mark(err, ErrDecode)
}

// StatusError reports an HTTP response whose status indicates an error.
type StatusError struct {
	Code   int
	Reason string
	URL    string
}

// NewStatusError builds a StatusError using the canonical reason phrase for code.
func NewStatusError(code int, rawURL string) *StatusError {
	return &StatusError{
		Code:   code,
		Reason: http.StatusText(code),
		URL:    rawURL,
	}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s for url: %s", e.Code, e.Reason, e.URL)
}

// Failure is a classified error.
type Failure struct {
	Kind   Kind
	Status int    // HTTP status, KindHTTP only
	Reason string // HTTP reason phrase, KindHTTP only
	Detail string
	Err    error
}

func (f *Failure) Error() string {
	return f.Kind.String() + ": " + f.Detail
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Message renders the log line for the failure. context names the operation
// in progress, e.g. "searching" or "loading image 'Apollo 11'".
func (f *Failure) Message(context string) string {
	switch f.Kind {
	case KindHTTP:
		return fmt.Sprintf("HTTP error while %s: %d - %s", context, f.Status, f.Reason)
	case KindConnection:
		return fmt.Sprintf("Connection error while %s: cannot connect to server.", context)
	case KindTimeout:
		return fmt.Sprintf("Error: time limit exceeded while %s.", context)
	case KindDecode:
		return fmt.Sprintf("Decode error while %s: %s", context, f.Detail)
	case KindRequest:
		return fmt.Sprintf("Request error while %s: %s", context, f.Detail)
	default:
		return fmt.Sprintf("Unexpected error while %s: %s", context, f.Detail)
	}
}

// Classify maps err onto a Failure. It returns nil for a nil error.
func Classify(err error) *Failure {
	if err == nil {
		return nil
	}

	f := &Failure{Err: err, Detail: err.Error()}

	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		f.Kind = KindHTTP
		f.Status = statusErr.Code
		f.Reason = statusErr.Reason
	case isConnection(err):
		f.Kind = KindConnection
	case isTimeout(err):
		f.Kind = KindTimeout
	case errors.Is(err, ErrDecode):
		f.Kind = KindDecode
	case isRequest(err):
		f.Kind = KindRequest
	default:
		f.Kind = KindUnexpected
	}

	return f
}

// Describe classifies err and renders its log line in one call.
func Describe(err error, context string) string {
	f := Classify(err)
	if f == nil {
		return ""
	}
	return f.Message(context)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnection(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	// A dial that timed out never reached the server.
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET)
}

func isRequest(err error) bool {
	if errors.Is(err, ErrRequest) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
