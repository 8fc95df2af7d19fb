// Package render implements the rendering dispatch core: candidate endpoint
// resolution with deterministic local-then-remote fallback, the HTTP render
// client, artifact persistence, and the result record returned to callers.
//
// # Dispatch Flow
//
// A request flows through a small state machine:
//
//	Resolving -> TryingCandidate(i) -> Succeeded | Exhausted
//
// Resolving looks up the diagram type in the registry and asks the resolver
// for the ordered candidate endpoints. Each candidate is then tried in turn,
// sequentially, until one succeeds. Backend failures (connection errors,
// timeouts, non-success statuses) advance to the next candidate; running out
// of candidates terminates with *AllBackendsFailedError carrying the full
// attempt list.
//
// # Fallback Policy
//
// When a family's local renderer is enabled and configured, it is tried
// first; the remote (hosted) renderer is always the final candidate. The
// order is stable for unchanged configuration, so fallback behavior is
// predictable and the first success is deterministic.
//
// # Error Taxonomy
//
//   - *diagram.UnknownTypeError: caller error, no retry, no network call
//   - *UnsupportedFormatError: caller error, no retry, no network call
//   - *EncodingError: corrupt compression stream, fatal
//   - *BackendError: one failed candidate, triggers fallback
//   - *AllBackendsFailedError: terminal, lists every attempt
//   - *PersistenceError: terminal after a successful render; the result URL
//     is still returned and usable
//
// # Concurrency
//
// Dispatchers hold no per-request state. Concurrent requests are independent
// units of work; the only shared data is the read-only registry and the
// configuration loaded at startup.
package render
