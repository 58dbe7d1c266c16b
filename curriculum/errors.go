package curriculum

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotConfirmed is returned when a destructive action was not confirmed
	ErrNotConfirmed = errors.New("curriculum: action not confirmed")

	// ErrReorderInProgress is returned for a drag on a section whose previous
	// reorder has not been persisted yet
	ErrReorderInProgress = errors.New("curriculum: reorder already in progress for section")

	ErrUnknownContentType = errors.New("curriculum: unknown content type")
	ErrUnknownSection     = errors.New("curriculum: unknown section")
	ErrIndexOutOfRange    = errors.New("curriculum: index out of range")
	ErrClosed             = errors.New("curriculum: manager closed")
	ErrWrongQuiz          = errors.New("curriculum: question belongs to another quiz")
)

// ValidationError is a local rejection; no request was sent
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "curriculum: invalid input: " + strings.Join(parts, "; ")
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// RequestError wraps a failed call to the curriculum API
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string { return fmt.Sprintf("curriculum: %s: %v", e.Op, e.Err) }

func (e *RequestError) Unwrap() error { return e.Err }

// PartialLoadError lists the sections whose content could not be fetched.
// Those sections are empty in the store; every other section loaded normally.
type PartialLoadError struct {
	Sections map[uint]error
}

func (e *PartialLoadError) Error() string {
	return fmt.Sprintf("curriculum: %d section(s) failed to load", len(e.Sections))
}

func (e *PartialLoadError) Unwrap() []error {
	errs := make([]error, 0, len(e.Sections))
	for _, err := range e.Sections {
		errs = append(errs, err)
	}
	return errs
}
