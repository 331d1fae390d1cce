// Package errors provides structured domain errors shared by the content layer
// and the web service.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeConfiguration marks a missing or unresolvable identifier or
	// credential. It is fatal and never retried.
	CodeConfiguration Code = "CONFIGURATION"

	// CodeFetch marks a failed remote call (network, auth, rate limit,
	// malformed response). It propagates to the page render unretried.
	CodeFetch Code = "FETCH"

	// CodeNotFound marks a route or resource that does not exist.
	CodeNotFound Code = "NOT_FOUND"
)

// Fatal reports whether the code describes a deployment problem that retrying
// or serving stale content cannot fix.
func (c Code) Fatal() bool {
	return c == CodeConfiguration
}
