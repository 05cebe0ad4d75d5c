package core

import (
	"errors"
	"fmt"
)

// Code is a machine-readable fault code
type Code string

const (
	CodeInvalidSelection     Code = "INVALID_SELECTION"
	CodeInsufficientCarriers Code = "INSUFFICIENT_CARRIERS"
	CodeMissingCollaborator  Code = "MISSING_COLLABORATOR"
	CodeEmptyCentroid        Code = "EMPTY_CENTROID"
)

// Sentinel faults, all recoverable: the frame loop logs them and continues
var (
	ErrInvalidSelection     = errors.New("invalid selection")
	ErrInsufficientCarriers = errors.New("insufficient carriers")
	ErrMissingCollaborator  = errors.New("missing collaborator")
	ErrEmptyCentroid        = errors.New("empty centroid set")
)

// Fault ties a sentinel to the entity it concerns
type Fault struct {
	Code   Code
	Entity Entity
	Detail string
	Err    error
}

// NewFault builds a Fault whose Code is derived from the sentinel
func NewFault(err error, e Entity, detail string) *Fault {
	return &Fault{Code: CodeOf(err), Entity: e, Detail: detail, Err: err}
}

func (f *Fault) Error() string {
	if f.Detail == "" {
		return fmt.Sprintf("%s: entity %d", f.Err, f.Entity)
	}
	return fmt.Sprintf("%s: entity %d: %s", f.Err, f.Entity, f.Detail)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// CodeOf maps a sentinel to its Code
func CodeOf(err error) Code {
	switch {
	case errors.Is(err, ErrInvalidSelection):
		return CodeInvalidSelection
	case errors.Is(err, ErrInsufficientCarriers):
		return CodeInsufficientCarriers
	case errors.Is(err, ErrMissingCollaborator):
		return CodeMissingCollaborator
	case errors.Is(err, ErrEmptyCentroid):
		return CodeEmptyCentroid
	}
	return ""
}
