package lambda

import (
	"fmt"
	"strings"
)

// SystemErrorKind tells why a node could not be constructed.
type SystemErrorKind int

const (
	// ErrMaxLimitIdx is returned when a De Bruijn index would go over its limit.
	ErrMaxLimitIdx SystemErrorKind = iota
	// ErrMaxLimitUnv is returned when a universe level would overflow.
	ErrMaxLimitUnv
	// ErrRejectedBinder is returned when a binding policy refused a binder.
	ErrRejectedBinder
)

// SystemError indicates a situation that the system is not designed to
// handle. It is raised while constructing a node, after the syntax around it
// was found to be correct.
type SystemError struct {
	Kind  SystemErrorKind
	Limit uint64
	// Binder and Err are only set for ErrRejectedBinder
	Binder string
	Err    error
}

// NewSystemError creates an error for a limit that has been reached
func NewSystemError(kind SystemErrorKind, limit uint64) error {
	return &SystemError{Kind: kind, Limit: limit}
}

// NewRejectedBinderError creates an error for a binder refused by a policy
func NewRejectedBinderError(kind BinderKind, sym Symbol, reason error) error {
	return &SystemError{
		Kind:   ErrRejectedBinder,
		Binder: kind.String() + sym.String(),
		Err:    reason,
	}
}

func (err *SystemError) Error() string {
	switch err.Kind {
	case ErrMaxLimitIdx:
		return fmt.Sprintf("max limit %d for indices has been reached", err.Limit)
	case ErrMaxLimitUnv:
		return fmt.Sprintf("max limit %d for universe levels has been reached", err.Limit)
	}
	return fmt.Sprintf("binder %s rejected: %v", err.Binder, err.Err)
}

func (err *SystemError) Unwrap() error {
	return err.Err
}

// ParseErrorKind discriminates syntax errors from lifted system errors.
type ParseErrorKind int

const (
	// ErrEndOfStream means more tokens were expected but the stream ended.
	ErrEndOfStream ParseErrorKind = iota
	// ErrInvalidToken means the scanner could not make sense of a rune.
	ErrInvalidToken
	// ErrUnexpectedToken means a valid token was found but a different one
	// (or none at all) was expected.
	ErrUnexpectedToken
	// ErrSystem means the syntax was fine but a binder could not be built.
	ErrSystem
)

// ParseError indicates a syntactic or semantic error decoding a token stream
// into an expression.
type ParseError struct {
	Kind ParseErrorKind
	// Token is the offending token. For ErrEndOfStream it is the last consumed
	// token, for ErrSystem the keyword of the rejected binder.
	Token    *Token
	Start    int
	End      int
	Expected []string
	Err      error
}

// NewParseError creates a syntax error located at the given token
func NewParseError(kind ParseErrorKind, token *Token, expected []string) error {
	err := &ParseError{Kind: kind, Token: token, Expected: expected}
	if token != nil {
		err.Start, err.End = token.Offset, token.End()
		if kind == ErrEndOfStream {
			err.Start = err.End
		}
	}
	return err
}

// NewSystemParseError lifts an error raised while building a binder into the
// parser's error channel, located at the binder's keyword.
func NewSystemParseError(keyword *Token, err error) error {
	return &ParseError{
		Kind:  ErrSystem,
		Token: keyword,
		Start: keyword.Offset,
		End:   keyword.End(),
		Err:   err,
	}
}

// IsSyntax reports whether the error comes from the grammar rather than from
// the construction of a node.
func (err *ParseError) IsSyntax() bool {
	return err.Kind != ErrSystem
}

func (err *ParseError) Error() string {
	switch err.Kind {
	case ErrEndOfStream:
		return fmt.Sprintf(
			"unexpected end of stream, at location: %d, expected: %s",
			err.Start,
			strings.Join(err.Expected, " | "),
		)
	case ErrInvalidToken:
		return fmt.Sprintf("invalid token, at location %d", err.Start)
	case ErrUnexpectedToken:
		expected := "none"
		if len(err.Expected) != 0 {
			expected = strings.Join(err.Expected, " | ")
		}
		return fmt.Sprintf(
			"unexpected token: %s, at location: %d..%d, expected: %s",
			err.Token,
			err.Start,
			err.End,
			expected,
		)
	}
	return fmt.Sprintf("%v, at location: %d", err.Err, err.Start)
}

func (err *ParseError) Unwrap() error {
	return err.Err
}
