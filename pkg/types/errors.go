package types

import "fmt"

// ErrorCode represents a GoAbacus error code.
//
// Codes follow the convention S = syntax (lexer/parser), D = evaluation.
type ErrorCode string

const (
	// S01xx: Lexer errors
	ErrInvalidCharacter ErrorCode = "S0101"
	ErrNumberOutOfRange ErrorCode = "S0102"

	// S02xx: Parser errors
	ErrSyntaxError    ErrorCode = "S0201"
	ErrExpectedToken  ErrorCode = "S0202"
	ErrUnmatchedParen ErrorCode = "S0203"
	ErrMissingOperand ErrorCode = "S0204"
	ErrDepthExceeded  ErrorCode = "S0205"

	// D1xxx: Evaluation errors
	ErrOverflow          ErrorCode = "D1001"
	ErrStackOverflow     ErrorCode = "D1002"
	ErrInvalidExpression ErrorCode = "D1003"
)

// ErrorKind classifies errors into the coarse taxonomy callers branch on.
type ErrorKind uint8

const (
	// KindUnknown is returned for codes this package does not define.
	KindUnknown ErrorKind = iota
	// KindInvalidCharacter: the lexer met a character outside the
	// supported set (digits, '+', '-', '(', ')').
	KindInvalidCharacter
	// KindMalformedExpression: structurally invalid token sequence —
	// unmatched parenthesis, missing operand or operator, trailing tokens.
	KindMalformedExpression
	// KindOutOfRange: a literal or an arithmetic result does not fit in
	// the int64 result type.
	KindOutOfRange
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidCharacter:
		return "InvalidCharacter"
	case KindMalformedExpression:
		return "MalformedExpression"
	case KindOutOfRange:
		return "OutOfRange"
	default:
		return "Unknown"
	}
}

// Error represents a structured GoAbacus error.
//
// Position is the byte offset in the source expression, or -1 when no
// position applies. Token holds the offending source text, if any.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new error with the given code, message and position.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Kind maps the error code to its taxonomy kind.
func (e *Error) Kind() ErrorKind {
	switch e.Code {
	case ErrInvalidCharacter:
		return KindInvalidCharacter
	case ErrSyntaxError, ErrExpectedToken, ErrUnmatchedParen, ErrMissingOperand, ErrDepthExceeded, ErrStackOverflow, ErrInvalidExpression:
		return KindMalformedExpression
	case ErrNumberOutOfRange, ErrOverflow:
		return KindOutOfRange
	default:
		return KindUnknown
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds the offending source text to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
