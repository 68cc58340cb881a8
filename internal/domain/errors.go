package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel all URL validation errors wrap.
// Callers use errors.Is(err, ErrValidation) (or IsValidationError)
// to map these to the validation exit code.
var ErrValidation = errors.New("validation error")

// UnsupportedHostError indicates the URL host is not a known YouTube domain.
type UnsupportedHostError struct {
	URL  string
	Host string
}

func (e *UnsupportedHostError) Error() string {
	return fmt.Sprintf("unsupported host %q in URL %q", e.Host, e.URL)
}

func (e *UnsupportedHostError) Unwrap() error { return ErrValidation }

// UnrecognizedPathError indicates a supported host with a path shape
// that maps to neither a single video nor a playlist.
type UnrecognizedPathError struct {
	URL  string
	Path string
}

func (e *UnrecognizedPathError) Error() string {
	return fmt.Sprintf("unrecognized path %q in URL %q", e.Path, e.URL)
}

func (e *UnrecognizedPathError) Unwrap() error { return ErrValidation }

// IsValidationError reports whether err is a URL validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
