package model

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFile       = errors.New("missing file")
	ErrInsufficientData  = errors.New("insufficient data")
	ErrUnknownInstrument = errors.New("unknown instrument")
	ErrInvalidInput      = errors.New("invalid input")
	ErrRemoteLookup      = errors.New("remote lookup failed")
	ErrMalformedRecord   = errors.New("malformed record")
)

// MalformedRecordError describes a line that was skipped while parsing.
type MalformedRecordError struct {
	File   string
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.File, e.Line, e.Reason, e.Text)
}

// Is reports ErrMalformedRecord as a match.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
