package envarify

import (
	"errors"
	"strings"
)

// Sentinel errors surfaced through [AggregateError] and schema declaration
// failures. Match them with errors.Is.
var (
	// ErrMissing indicates a required variable absent from the source with
	// no declared default.
	ErrMissing = errors.New("required environment variable is not set")
	// ErrInvalid indicates a present value that failed coercion into the
	// declared type.
	ErrInvalid = errors.New("environment variable value is invalid")
	// ErrSchema indicates an invalid schema declaration (empty key, unknown
	// type, non-scalar sequence element, non-conforming default, ...).
	ErrSchema = errors.New("invalid schema declaration")
)

// FieldError describes a single field's failure within one build attempt.
// It wraps either [ErrMissing] or [ErrInvalid].
type FieldError struct {
	// Key is the offending source key: the environment variable name, or
	// the field name on the direct-values path.
	Key string
	// Reason is the specific constraint violated; empty for missing keys.
	Reason string

	kind error
}

func newMissing(key string) *FieldError {
	return &FieldError{Key: key, kind: ErrMissing}
}

func newInvalid(key, reason string) *FieldError {
	return &FieldError{Key: key, Reason: reason, kind: ErrInvalid}
}

// Error returns "KEY is not set" for missing keys and "KEY: reason" for
// invalid values.
func (e *FieldError) Error() string {
	if e.kind == ErrMissing {
		return e.Key + " is not set"
	}
	return e.Key + ": " + e.Reason
}

// Unwrap exposes the sentinel kind for errors.Is.
func (e *FieldError) Unwrap() error { return e.kind }

// AggregateError is the single failure raised by a build. It collects every
// missing and invalid field of the whole walk, nested schemas included, in
// schema declaration order. It is never raised empty.
type AggregateError struct {
	// Schema is the name of the top-level schema being built.
	Schema string
	// Fields holds one entry per offending field, in declaration order
	// (depth-first through nested schemas).
	Fields []*FieldError
}

// Error lists every offending source key with its reason, comma-joined, in
// the order encountered.
func (e *AggregateError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "envarify: cannot build " + e.Schema + ": " + strings.Join(parts, ", ")
}

// Unwrap exposes the individual field errors, so errors.Is(err, ErrMissing)
// and errors.Is(err, ErrInvalid) report whether any field failed that way.
func (e *AggregateError) Unwrap() []error {
	errs := make([]error, len(e.Fields))
	for i, f := range e.Fields {
		errs[i] = f
	}
	return errs
}

// Keys returns the offending source keys in the order encountered.
func (e *AggregateError) Keys() []string {
	keys := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		keys[i] = f.Key
	}
	return keys
}
