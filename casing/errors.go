package casing

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by errors.Is against an *Error.
var (
	ErrNoMatch          = errors.New("no casing style matches")
	ErrTokenizeMismatch = errors.New("identifier does not tokenize under style")
)

// ErrorKind categorizes a casing failure.
type ErrorKind int

const (
	KindNoMatch ErrorKind = iota + 1
	KindTokenizeMismatch
)

// String returns a human-readable kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindNoMatch:
		return "no_match"
	case KindTokenizeMismatch:
		return "tokenize_mismatch"
	default:
		return "unknown"
	}
}

// Error describes why an identifier could not be classified or tokenized.
type Error struct {
	Kind  ErrorKind
	Input string
	// Style is the style tokenization was attempted under (TokenizeMismatch only).
	Style Style
	// Offset is the byte offset of the first unconsumed rune (TokenizeMismatch only).
	Offset int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNoMatch:
		return fmt.Sprintf("could not determine case for %q", e.Input)
	case KindTokenizeMismatch:
		return fmt.Sprintf("%q does not tokenize as %s: unconsumed input at offset %d",
			e.Input, e.Style, e.Offset)
	default:
		return fmt.Sprintf("casing error for %q", e.Input)
	}
}

// Unwrap returns the sentinel for the error kind.
func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindNoMatch:
		return ErrNoMatch
	case KindTokenizeMismatch:
		return ErrTokenizeMismatch
	default:
		return nil
	}
}

func noMatch(input string) error {
	return &Error{Kind: KindNoMatch, Input: input}
}

func mismatch(input string, style Style, offset int) error {
	return &Error{Kind: KindTokenizeMismatch, Input: input, Style: style, Offset: offset}
}
