package schema

import "errors"

// Sentinel errors for the non-keyword error classes spec.md §7 calls
// "I/O failure" and "Cancelled": these propagate unchanged from the
// byte-stream layer rather than being wrapped in a MalformedError or
// EvaluationError.
var (
	// ErrRootNotObject is returned by Load when the top-level JSON value
	// is not an object (spec.md §4.6, §6).
	ErrRootNotObject = errors.New("schema: root JSON value is not an object")

	// ErrMalformedJSON is returned by Load when the input is not
	// well-formed JSON.
	ErrMalformedJSON = errors.New("schema: malformed JSON")

	// ErrCancelled is returned when a context passed to LoadContext is
	// cancelled before loading completes.
	ErrCancelled = errors.New("schema: load cancelled")
)

// MalformedError reports that a keyword's value violates its
// validation contract (spec.md §7 "Malformed schema"). It names the
// offending keyword and carries a human-readable message with a
// draft-04 section reference, matching the EvaluationError shape used
// for instance-validation failures so both error classes render the
// same way in CLI output.
type MalformedError struct {
	Keyword string
	Section string
	Message string
}

func (e *MalformedError) Error() string {
	if e.Section != "" {
		return e.Keyword + ": " + e.Message + " (" + e.Section + ")"
	}
	return e.Keyword + ": " + e.Message
}

func newMalformed(keyword, section, message string) *MalformedError {
	return &MalformedError{Keyword: keyword, Section: section, Message: message}
}
