package token

// TokenType identifies the lexical class of a token.
type TokenType string

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers
	IDENT TokenType = "IDENT"

	// Keywords that anchor declarations this stage cares about
	CLASS     TokenType = "CLASS"
	INTERFACE TokenType = "INTERFACE"
	TRAIT     TokenType = "TRAIT"
	ENUM      TokenType = "ENUM"
	TYPEDEF   TokenType = "TYPEDEF"
	FUN       TokenType = "FUN"
	WHERE     TokenType = "WHERE"
	USE       TokenType = "USE"
	STATIC    TokenType = "STATIC"
	VAR       TokenType = "VAR"
)

// Token is a single lexical token with its source position.
// The front-end attaches a token to every AST node it produces; later
// stages use it only for positions in diagnostics.
type Token struct {
	Type    TokenType
	Lexeme  string      // exact source text
	Literal interface{} // parsed value, when meaningful
	Line    int         // 1-based
	Column  int         // 1-based
}

// IsZero reports whether the token carries no position information.
// Dump files may omit positions for synthesized nodes.
func (t Token) IsZero() bool {
	return t.Line == 0 && t.Column == 0 && t.Lexeme == ""
}
