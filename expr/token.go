package expr

import (
	"fmt"
)

// TokenType is the lexical class of a token.
type TokenType int

//go:generate go tool stringer -linecomment -type=TokenType
const (
	TOKEN_EOF     = TokenType(0) // eof
	TOKEN_INTEGER = TokenType(1) // integer
	TOKEN_PLUS    = TokenType(2) // +
	TOKEN_MINUS   = TokenType(3) // -
	TOKEN_MUL     = TokenType(4) // *
	TOKEN_DIV     = TokenType(5) // /
	TOKEN_LPAREN  = TokenType(6) // (
	TOKEN_RPAREN  = TokenType(7) // )
)

// Token is a single lexical token.
type Token struct {
	Type  TokenType
	Text  string // Source text of the token.
	Value int64  // Numeric value, for TOKEN_INTEGER.
}

// String returns the token as source text with its class.
func (tok Token) String() string {
	return fmt.Sprintf("%v '%v'", tok.Type, tok.Text)
}
