package ast

import (
	"github.com/hazel-lang/hazel/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Declaration is a top-level or class-level declaration node.
type Declaration interface {
	Node
	declarationNode()
}

// Statement is a Node inside a function or method body. The elaboration
// stage never looks inside statements; it only distinguishes empty bodies
// from non-empty ones.
type Statement interface {
	Node
	statementNode()
}

// Hint is a type hint node: a reference to a type in annotation position.
type Hint interface {
	Node
	hintNode()
}

// Identifier is a simple name with its source token.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// Name returns the identifier's value, tolerating nil.
func (i *Identifier) Name() string {
	if i == nil {
		return ""
	}
	return i.Value
}

// Program is the root node of a single elaborated source file.
type Program struct {
	File         string // source file path
	Declarations []Declaration
}

func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	return ""
}

func (p *Program) GetToken() token.Token {
	if p == nil || len(p.Declarations) == 0 {
		return token.Token{}
	}
	return p.Declarations[0].GetToken()
}

// OpaqueStatement is a body statement carried through elaboration without
// interpretation. Dumps elide statement contents down to their source text.
type OpaqueStatement struct {
	Token token.Token
	Text  string
}

func (os *OpaqueStatement) statementNode()       {}
func (os *OpaqueStatement) TokenLiteral() string { return os.Token.Lexeme }
func (os *OpaqueStatement) GetToken() token.Token {
	if os == nil {
		return token.Token{}
	}
	return os.Token
}

// Block is a sequence of statements forming a function or method body.
type Block struct {
	Token      token.Token // the '{' token
	Statements []Statement
}

func (b *Block) TokenLiteral() string { return b.Token.Lexeme }
func (b *Block) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// IsEmpty reports whether the block has no statements. A nil block counts
// as empty; abstract methods have no body at all.
func (b *Block) IsEmpty() bool {
	return b == nil || len(b.Statements) == 0
}
