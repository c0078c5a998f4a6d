package lib

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned by NewScanner for empty input.
	ErrInvalidArgument = errors.New("expression is empty")

	// ErrNoMoreTokens is returned by NextToken once the source is exhausted.
	// It marks a clean end of stream, not a failure.
	ErrNoMoreTokens = errors.New("no more tokens")
)

// InvalidTokenError means a run of characters could not be read as a number.
type InvalidTokenError struct {
	Offset int
	Char   byte
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q at offset %d", string(e.Char), e.Offset)
}

// InvalidExpressionError means a token appeared where the grammar forbids it.
type InvalidExpressionError struct {
	Offset int
}

func (e *InvalidExpressionError) Error() string {
	return fmt.Sprintf("invalid expression at offset %d", e.Offset)
}

// InvalidBraceSequenceError means one or more open parens were never closed.
// Offset is the innermost unmatched one.
type InvalidBraceSequenceError struct {
	Offset int
}

func (e *InvalidBraceSequenceError) Error() string {
	return fmt.Sprintf("unclosed paren at offset %d", e.Offset)
}
