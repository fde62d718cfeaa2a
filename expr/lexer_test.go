package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexer(t *testing.T) {
	assert := assert.New(t)

	lexer := NewLexer(" 12 + (34*5) ")

	expected := []Token{
		{Type: TOKEN_INTEGER, Text: "12", Value: 12},
		{Type: TOKEN_PLUS, Text: "+"},
		{Type: TOKEN_LPAREN, Text: "("},
		{Type: TOKEN_INTEGER, Text: "34", Value: 34},
		{Type: TOKEN_MUL, Text: "*"},
		{Type: TOKEN_INTEGER, Text: "5", Value: 5},
		{Type: TOKEN_RPAREN, Text: ")"},
		{Type: TOKEN_EOF},
	}

	for _, want := range expected {
		tok, err := lexer.Next()
		assert.NoError(err)
		assert.Equal(want, tok)
	}

	// EOF repeats once the input is consumed.
	tok, err := lexer.Next()
	assert.NoError(err)
	assert.Equal(TOKEN_EOF, tok.Type)
}

func TestLexerErrors(t *testing.T) {
	assert := assert.New(t)

	lexer := NewLexer("2 & 3")
	_, err := lexer.Next()
	assert.NoError(err)
	_, err = lexer.Next()
	assert.ErrorIs(err, ErrLexical('&'))

	lexer = NewLexer("99999999999999999999")
	_, err = lexer.Next()
	assert.ErrorIs(err, ErrNumberRange("99999999999999999999"))
}

func TestTokenString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("integer '42'", Token{Type: TOKEN_INTEGER, Text: "42", Value: 42}.String())
	assert.Equal("+ '+'", Token{Type: TOKEN_PLUS, Text: "+"}.String())
}
