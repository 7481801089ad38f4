package geojson

import (
	"fmt"

	"github.com/juju/errors"
)

// Decode failure kinds. A *DecodeError matches exactly one of them with
// errors.Is.
const (
	ErrMalformedJSON       = errors.ConstError("malformed JSON")
	ErrMissingDiscriminant = errors.ConstError("missing discriminant")
	ErrUnknownVariant      = errors.ConstError("unknown variant")
	ErrSchemaMismatch      = errors.ConstError("schema mismatch")
	ErrTooDeeplyNested     = errors.ConstError("too deeply nested")
)

// DecodeError describes why a document could not be decoded.
type DecodeError struct {
	// Cause is one of the Err* constants above.
	Cause error

	// Path locates the offending value, rooted at "$", e.g.
	// "$.features[2].geometry.coordinates[0]".
	Path string

	// Tag is the unrecognised discriminant for ErrUnknownVariant.
	Tag string

	// Expected and Actual describe the shapes involved in ErrSchemaMismatch.
	Expected string
	Actual   string

	// Offset is the byte offset reported by the JSON parser for
	// ErrMalformedJSON, or -1 when unknown.
	Offset int64

	// Err is the underlying parser error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	switch e.Cause {
	case ErrMalformedJSON:
		if e.Offset >= 0 {
			return fmt.Sprintf("geojson: %s at offset %d: %v", e.Cause, e.Offset, e.Err)
		}
		return fmt.Sprintf("geojson: %s: %v", e.Cause, e.Err)
	case ErrMissingDiscriminant:
		return fmt.Sprintf("geojson: %s: no \"type\" string at %s", e.Cause, e.Path)
	case ErrUnknownVariant:
		return fmt.Sprintf("geojson: %s %q at %s", e.Cause, e.Tag, e.Path)
	case ErrSchemaMismatch:
		return fmt.Sprintf("geojson: %s at %s: expected %s, got %s", e.Cause, e.Path, e.Expected, e.Actual)
	}
	return fmt.Sprintf("geojson: %s at %s", e.Cause, e.Path)
}

// Is reports whether target is the failure kind of e.
func (e *DecodeError) Is(target error) bool {
	return target == e.Cause
}

// Unwrap returns the underlying parser error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

func mismatch(path, expected, actual string) error {
	return &DecodeError{Cause: ErrSchemaMismatch, Path: path, Expected: expected, Actual: actual, Offset: -1}
}
