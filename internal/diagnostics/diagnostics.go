package diagnostics

import (
	"fmt"

	"github.com/hazel-lang/hazel/internal/token"
)

// ErrorCode is a stable, user-visible identifier for a diagnostic kind.
// Codes are never reused or renumbered; tooling keys off them.
type ErrorCode string

// Naming-phase codes (type-parameter declaration and scoping).
const (
	ErrN001 ErrorCode = "N001" // shadowed type parameter
	ErrN002 ErrorCode = "N002" // non-shadowing reuse of a type parameter name
	ErrN003 ErrorCode = "N003" // 'this' is reserved and cannot name a type parameter
	ErrN004 ErrorCode = "N004" // wildcard type parameter not allowed here
	ErrN005 ErrorCode = "N005" // type parameter name must start with T
	ErrN006 ErrorCode = "N006" // feature unsupported in combination with higher-kinded type parameters
)

// Structure-check codes (declaration shape, independent of naming).
const (
	ErrS001 ErrorCode = "S001" // interface uses a trait
	ErrS002 ErrorCode = "S002" // interface declares an instance member variable
	ErrS003 ErrorCode = "S003" // interface declares a static member variable
	ErrS004 ErrorCode = "S004" // interface method must be abstract
)

// RelatedInformation points at a second source location that explains a
// diagnostic, e.g. the previous declaration a name shadows.
type RelatedInformation struct {
	Token   token.Token
	Message string
}

// DiagnosticError is a single finding produced by a front-end stage.
// It is accumulated, never thrown: stages append these to a shared slice
// and always run to completion.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
	Related []RelatedInformation
}

func (e *DiagnosticError) Error() string {
	if e.Token.Line > 0 {
		return fmt.Sprintf("[%s] line %d:%d: %s", e.Code, e.Token.Line, e.Token.Column, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewError creates a diagnostic at the given token.
func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{
		Code:    code,
		Token:   tok,
		Message: message,
	}
}

// NewNamingError creates a naming-phase diagnostic (N-codes).
// Identical to NewError today; kept separate so naming diagnostics can grow
// phase-specific fields without touching call sites.
func NewNamingError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return NewError(code, tok, message)
}

// NewStructureError creates a structure-check diagnostic (S-codes).
func NewStructureError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return NewError(code, tok, message)
}

// WithRelated attaches a secondary location and returns the receiver,
// so constructors can be chained at the append site.
func (e *DiagnosticError) WithRelated(tok token.Token, message string) *DiagnosticError {
	e.Related = append(e.Related, RelatedInformation{Token: tok, Message: message})
	return e
}
