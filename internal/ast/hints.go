package ast

import (
	"github.com/hazel-lang/hazel/internal/token"
)

// AppliedRef is a reference to a named type, optionally applied to type
// arguments, e.g. `Map<TKey, TVal>`. Before elaboration this form also
// covers references whose head names a bound type parameter; a preceding
// pass rewrites those into AbstractRef.
type AppliedRef struct {
	Token token.Token // the name token
	Name  *Identifier
	Args  []Hint
}

func (ar *AppliedRef) hintNode()            {}
func (ar *AppliedRef) TokenLiteral() string { return ar.Token.Lexeme }
func (ar *AppliedRef) GetToken() token.Token {
	if ar == nil {
		return token.Token{}
	}
	return ar.Token
}

// AbstractRef is the canonical reference to an in-scope type parameter,
// produced by the reference-elaboration pass. Args are present when a
// higher-kinded parameter is applied.
type AbstractRef struct {
	Token token.Token
	Name  string
	Args  []Hint
}

func (ar *AbstractRef) hintNode()            {}
func (ar *AbstractRef) TokenLiteral() string { return ar.Token.Lexeme }
func (ar *AbstractRef) GetToken() token.Token {
	if ar == nil {
		return token.Token{}
	}
	return ar.Token
}

// PrimRef is a reference to a builtin primitive type, e.g. `int`, `string`.
type PrimRef struct {
	Token token.Token
	Name  string
}

func (pr *PrimRef) hintNode()            {}
func (pr *PrimRef) TokenLiteral() string { return pr.Token.Lexeme }
func (pr *PrimRef) GetToken() token.Token {
	if pr == nil {
		return token.Token{}
	}
	return pr.Token
}

// WildcardHint is the `_` placeholder in hint position.
type WildcardHint struct {
	Token token.Token
}

func (wh *WildcardHint) hintNode()            {}
func (wh *WildcardHint) TokenLiteral() string { return wh.Token.Lexeme }
func (wh *WildcardHint) GetToken() token.Token {
	if wh == nil {
		return token.Token{}
	}
	return wh.Token
}
