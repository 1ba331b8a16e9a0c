// Package errs defines the sentinel errors shared across csvstream packages.
//
// Callers can match them with errors.Is after any amount of %w wrapping.
package errs

import "errors"

var (
	// ErrInvalidUTF8 is returned when a decoded field contains bytes that are
	// not valid UTF-8. The wrapping error carries the field position.
	ErrInvalidUTF8 = errors.New("field is not valid UTF-8")

	// ErrSessionFinished is returned when Push or Finalize is called on a
	// session that has already been finalized.
	ErrSessionFinished = errors.New("session already finalized")

	// ErrUnknownCompression is returned when a compression type has no codec.
	ErrUnknownCompression = errors.New("unknown compression type")

	// ErrNilReader is returned when a nil reader or source is supplied.
	ErrNilReader = errors.New("nil reader")

	// ErrInvalidOption is returned when a session option carries an invalid value.
	ErrInvalidOption = errors.New("invalid option value")
)
