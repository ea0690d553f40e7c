package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable means the underlying file or network source could not be read.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrMalformedSource means the source was read but did not have the expected shape.
	ErrMalformedSource = errors.New("malformed source")
)

// LoadError reports a failed collection load. It matches both its Kind
// and its cause with errors.Is.
type LoadError struct {
	Collection Collection
	Kind       error
	Err        error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load %s: %v", e.Collection, e.Kind)
	}
	return fmt.Sprintf("load %s: %v: %v", e.Collection, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func SourceUnavailable(c Collection, err error) error {
	return &LoadError{Collection: c, Kind: ErrSourceUnavailable, Err: err}
}

func MalformedSource(c Collection, err error) error {
	return &LoadError{Collection: c, Kind: ErrMalformedSource, Err: err}
}

// IsLoadFailure reports whether err is one of the two load failure kinds.
func IsLoadFailure(err error) bool {
	return errors.Is(err, ErrSourceUnavailable) || errors.Is(err, ErrMalformedSource)
}
