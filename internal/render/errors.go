package render

import (
	"fmt"
	"strings"

	"github.com/umltools/uml-mcp/internal/diagram"
	"github.com/umltools/uml-mcp/internal/encoding"
)

// EncodingError reports a compression-stream failure while producing a
// backend payload. It is fatal: the same source will fail the same way, so
// the dispatcher never retries it against another candidate.
type EncodingError struct {
	Scheme encoding.Scheme
	Err    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode %s payload: %v", e.Scheme, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// BackendError reports a single failed render attempt against one candidate
// endpoint. Connection failures, timeouts, and non-success HTTP statuses all
// surface here uniformly; the dispatcher treats them identically and moves on
// to the next candidate.
type BackendError struct {
	Endpoint Endpoint
	Err      error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("render via %s %s: %v", e.Endpoint.Kind, e.Endpoint.BaseURL, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Attempt records one candidate failure for diagnostics.
type Attempt struct {
	Endpoint Endpoint
	Err      error
}

// AllBackendsFailedError is the terminal failure after every candidate for a
// request has been tried. Attempts holds exactly one entry per candidate, in
// the order they were tried.
type AllBackendsFailedError struct {
	Type     diagram.Type
	Attempts []Attempt
}

func (e *AllBackendsFailedError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s %s: %v", a.Endpoint.Kind, a.Endpoint.BaseURL, a.Err))
	}
	return fmt.Sprintf("all %d backend(s) failed for %s diagram: %s",
		len(e.Attempts), e.Type, strings.Join(parts, "; "))
}

// PersistenceError reports that rendering succeeded but the artifact could
// not be written to disk. The render result is still usable through its URL;
// callers should surface the result alongside this error rather than discard
// it.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save artifact to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// UnsupportedFormatError reports a requested output format outside the
// diagram type's supported set. Like an unknown type, it is a caller error
// and is rejected before any network call.
type UnsupportedFormatError struct {
	Type   diagram.Type
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("output format %q is not supported for %s diagrams", e.Format, e.Type)
}
