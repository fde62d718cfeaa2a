package expr

import (
	"strconv"
	"unicode"
)

// Lexer splits an input string into tokens.
type Lexer struct {
	runes []rune
	pos   int
}

// NewLexer creates a lexer over the input text.
func NewLexer(input string) *Lexer {
	return &Lexer{runes: []rune(input)}
}

var symbolMap = map[rune]TokenType{
	'+': TOKEN_PLUS,
	'-': TOKEN_MINUS,
	'*': TOKEN_MUL,
	'/': TOKEN_DIV,
	'(': TOKEN_LPAREN,
	')': TOKEN_RPAREN,
}

// Next returns the next token from the input.
func (lx *Lexer) Next() (tok Token, err error) {
	for lx.pos < len(lx.runes) && unicode.IsSpace(lx.runes[lx.pos]) {
		lx.pos++
	}

	if lx.pos >= len(lx.runes) {
		tok = Token{Type: TOKEN_EOF}
		return
	}

	r := lx.runes[lx.pos]

	if unicode.IsDigit(r) {
		start := lx.pos
		for lx.pos < len(lx.runes) && unicode.IsDigit(lx.runes[lx.pos]) {
			lx.pos++
		}
		text := string(lx.runes[start:lx.pos])
		var value int64
		value, err = strconv.ParseInt(text, 10, 64)
		if err != nil {
			err = ErrNumberRange(text)
			return
		}
		tok = Token{Type: TOKEN_INTEGER, Text: text, Value: value}
		return
	}

	tt, ok := symbolMap[r]
	if !ok {
		err = ErrLexical(r)
		return
	}

	lx.pos++
	tok = Token{Type: tt, Text: string(r)}

	return
}
