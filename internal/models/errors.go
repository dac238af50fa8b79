package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	ErrMissingSeparator = errors.New("expected home and away sides separated by a comma")
	ErrMissingGoals     = errors.New("missing goal count")
	ErrInvalidGoals     = errors.New("invalid goal count")
	ErrNegativeGoals    = errors.New("goal count is negative")
	ErrEmptyTeamName    = errors.New("team name is empty")
	ErrSameTeam         = errors.New("home and away team are identical")
)

// ParseError represents a malformed input line
type ParseError struct {
	LineNum int
	Line    string
	Reason  string
	Cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d: %s: %q", e.LineNum, e.Reason, e.Line)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// InputError represents a failure opening or reading the input source
type InputError struct {
	Path  string
	Cause error
}

func (e *InputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("input error: %v", e.Cause)
	}
	return fmt.Sprintf("input error reading %s: %v", e.Path, e.Cause)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new parse error
func NewParseError(lineNum int, line, reason string, cause error) *ParseError {
	return &ParseError{
		LineNum: lineNum,
		Line:    line,
		Reason:  reason,
		Cause:   cause,
	}
}

// NewInputError creates a new input error
func NewInputError(path string, cause error) *InputError {
	return &InputError{
		Path:  path,
		Cause: cause,
	}
}
