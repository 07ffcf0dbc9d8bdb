package espn

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrAuth means the league requires credentials this client was not
	// constructed with, or the cookies have expired. Callers should prompt
	// for fresh SWID/espn_s2 values.
	ErrAuth = errors.New("espn: not authorized for league")

	// ErrNotFound means the league id and season combination does not exist.
	ErrNotFound = errors.New("espn: league not found")
)

// TransportError wraps a failure to complete the underlying HTTP call.
// It is never retried at this layer.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("espn: transport error for %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means the response arrived but did not match the expected
// structure. Path names where decoding diverged, to help diagnose upstream
// schema drift.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("espn: error decoding response at %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decodeError builds a DecodeError rooted at the named document. The json
// package reports the failing field path for type mismatches; for malformed
// bodies the root is all we have.
func decodeError(root string, err error) error {
	path := root
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		path = fmt.Sprintf("%s.%s", root, typeErr.Field)
	}
	return &DecodeError{Path: path, Err: err}
}

// MissingError means the envelope decoded fine but the sub-document the
// requested view should have populated was absent. The server is not
// expected to ever do this, so it is surfaced rather than defaulted.
type MissingError struct {
	View  string
	Field string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("espn: response is missing %q even though view %s was requested", e.Field, e.View)
}
