package ast

import (
	"github.com/hazel-lang/hazel/internal/token"
)

// ClassKind distinguishes the class-like declaration forms.
type ClassKind string

const (
	ClassKindClass     ClassKind = "class"
	ClassKindInterface ClassKind = "interface"
	ClassKindTrait     ClassKind = "trait"
	ClassKindEnum      ClassKind = "enum"
)

// IsInterface reports whether the kind is an interface declaration.
func (k ClassKind) IsInterface() bool { return k == ClassKindInterface }

// Variance is a type parameter's declared variance marker.
type Variance string

const (
	Invariant     Variance = ""
	Covariant     Variance = "covariant"
	Contravariant Variance = "contravariant"
)

// IsInvariant reports whether the parameter has no variance marker.
func (v Variance) IsInvariant() bool { return v == Invariant }

// ReifyKind is a type parameter's reification marker.
type ReifyKind string

const (
	Erased      ReifyKind = ""
	SoftReified ReifyKind = "soft_reified"
	Reified     ReifyKind = "reified"
)

// IsErased reports whether the parameter carries no reification marker.
func (r ReifyKind) IsErased() bool { return r == Erased }

// ConstraintKind relates two types in a constraint clause.
type ConstraintKind string

const (
	ConstraintAs    ConstraintKind = "as"    // subtype
	ConstraintSuper ConstraintKind = "super" // supertype
	ConstraintEqual ConstraintKind = "eq"    // equality
)

// TypeParameter is a generic parameter declared on a class, typedef,
// function, or method. A non-empty Parameters list makes it higher-kinded:
// the parameter stands for a type constructor, not a concrete type.
type TypeParameter struct {
	Token          token.Token // the name token
	Name           *Identifier
	Variance       Variance
	Parameters     []*TypeParameter // nested list; non-empty => higher-kinded
	Constraints    []*TypeConstraint
	Reify          ReifyKind
	UserAttributes []*UserAttribute
}

func (tp *TypeParameter) TokenLiteral() string { return tp.Token.Lexeme }
func (tp *TypeParameter) GetToken() token.Token {
	if tp == nil {
		return token.Token{}
	}
	return tp.Token
}

// IsHigherKinded reports whether the parameter declares parameters of its own.
func (tp *TypeParameter) IsHigherKinded() bool {
	return tp != nil && len(tp.Parameters) > 0
}

// TypeConstraint is a single constraint clause on a type parameter,
// e.g. `as Comparable<T>`.
type TypeConstraint struct {
	Token token.Token // the 'as'/'super'/'eq' token
	Kind  ConstraintKind
	Type  Hint
}

func (tc *TypeConstraint) TokenLiteral() string { return tc.Token.Lexeme }
func (tc *TypeConstraint) GetToken() token.Token {
	if tc == nil {
		return token.Token{}
	}
	return tc.Token
}

// UserAttribute is a user-supplied attribute attached to a declaration,
// e.g. `@Memoize`. Attribute arguments are not modeled at this stage.
type UserAttribute struct {
	Token token.Token
	Name  *Identifier
}

func (ua *UserAttribute) TokenLiteral() string { return ua.Token.Lexeme }
func (ua *UserAttribute) GetToken() token.Token {
	if ua == nil {
		return token.Token{}
	}
	return ua.Token
}

// WhereConstraint is a clause on a function or method restricting the
// relationship between two type hints, e.g. `where T as Arraykey`.
// Distinct from class-level constraint clauses.
type WhereConstraint struct {
	Token token.Token // the 'where' keyword or clause start
	Left  Hint
	Kind  ConstraintKind
	Right Hint
}

func (wc *WhereConstraint) TokenLiteral() string { return wc.Token.Lexeme }
func (wc *WhereConstraint) GetToken() token.Token {
	if wc == nil {
		return token.Token{}
	}
	return wc.Token
}

// Parameter is a value parameter of a function or method.
type Parameter struct {
	Token token.Token // the name token
	Name  *Identifier
	Type  Hint // optional
}

func (p *Parameter) TokenLiteral() string { return p.Token.Lexeme }
func (p *Parameter) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// MemberVariable is a property declared on a class-like declaration.
type MemberVariable struct {
	Token  token.Token // the name token
	Name   *Identifier
	Static bool
	Type   Hint // optional
}

func (mv *MemberVariable) TokenLiteral() string { return mv.Token.Lexeme }
func (mv *MemberVariable) GetToken() token.Token {
	if mv == nil {
		return token.Token{}
	}
	return mv.Token
}

// MethodDeclaration is a method on a class-like declaration. A nil or
// empty Body marks the method abstract.
type MethodDeclaration struct {
	Token            token.Token // the name token
	Name             *Identifier
	Static           bool
	Abstract         bool
	TypeParams       []*TypeParameter
	WhereConstraints []*WhereConstraint
	Params           []*Parameter
	ReturnType       Hint // optional
	Body             *Block
}

func (md *MethodDeclaration) declarationNode()     {}
func (md *MethodDeclaration) TokenLiteral() string { return md.Token.Lexeme }
func (md *MethodDeclaration) GetToken() token.Token {
	if md == nil {
		return token.Token{}
	}
	return md.Token
}

// FunctionDeclaration is a free (top-level) function.
type FunctionDeclaration struct {
	Token            token.Token // the name token
	Name             *Identifier
	TypeParams       []*TypeParameter
	WhereConstraints []*WhereConstraint
	Params           []*Parameter
	ReturnType       Hint // optional
	Body             *Block
}

func (fd *FunctionDeclaration) declarationNode()     {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDeclaration) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

// ClassDeclaration is a class, interface, trait, or enum declaration.
type ClassDeclaration struct {
	Token            token.Token // the name token
	Kind             ClassKind
	Name             *Identifier
	TypeParams       []*TypeParameter
	Extends          []Hint
	Implements       []Hint
	Uses             []Hint // trait-use clauses, one hint per clause
	WhereConstraints []*WhereConstraint
	Vars             []*MemberVariable
	Methods          []*MethodDeclaration
}

func (cd *ClassDeclaration) declarationNode()     {}
func (cd *ClassDeclaration) TokenLiteral() string { return cd.Token.Lexeme }
func (cd *ClassDeclaration) GetToken() token.Token {
	if cd == nil {
		return token.Token{}
	}
	return cd.Token
}

// TypedefDeclaration is a top-level type alias, e.g.
// `type Pair<T> = (T, T)`.
type TypedefDeclaration struct {
	Token      token.Token // the name token
	Name       *Identifier
	TypeParams []*TypeParameter
	Aliased    Hint
}

func (td *TypedefDeclaration) declarationNode()     {}
func (td *TypedefDeclaration) TokenLiteral() string { return td.Token.Lexeme }
func (td *TypedefDeclaration) GetToken() token.Token {
	if td == nil {
		return token.Token{}
	}
	return td.Token
}
