package component

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound indicates no template file exists for an identity
	// on any search location.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrNilComponent is returned when a nil value is rendered without an
	// explicit identity.
	ErrNilComponent = errors.New("nil component")

	// ErrAnonymousComponent is returned when a component's type has no name
	// to derive an identity from.
	ErrAnonymousComponent = errors.New("anonymous component type")
)

// NotFoundError reports the identity and computed path of a missing template.
type NotFoundError struct {
	Identity string
	Path     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template file not found for component %s (%s)", e.Identity, e.Path)
}

// Is lets errors.Is match ErrTemplateNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

// ExecutionError wraps a failure raised while parsing or executing a
// resolved template file.
type ExecutionError struct {
	Path string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execute template %s: %v", e.Path, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// DataError is implemented by data-access failures (store lookups, queries)
// raised from inside a template. Diagnostic shows only their message.
type DataError interface {
	error
	DataError() bool
}

// isDataError returns the first error in the chain whose DataError method
// reports true. Joined errors are searched depth first.
func isDataError(err error) (DataError, bool) {
	for err != nil {
		if de, ok := err.(DataError); ok && de.DataError() {
			return de, true
		}
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			for _, e := range u.Unwrap() {
				if de, ok := isDataError(e); ok {
					return de, true
				}
			}
			return nil, false
		default:
			return nil, false
		}
	}
	return nil, false
}
