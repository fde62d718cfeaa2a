package expr

// Parser builds an expression tree with the usual precedence:
//
//	factor := INTEGER | '(' expr ')'
//	term   := factor (('*' | '/') factor)*
//	expr   := term (('+' | '-') term)*
type Parser struct {
	lexer   *Lexer
	current Token
}

// NewParser creates a parser over a lexer, priming the first token.
func NewParser(lexer *Lexer) (p *Parser, err error) {
	p = &Parser{lexer: lexer}
	p.current, err = lexer.Next()
	return
}

// eat consumes the current token if it matches the expected type.
func (p *Parser) eat(tt TokenType) (err error) {
	if p.current.Type != tt {
		err = ErrUnexpectedToken(p.current)
		return
	}
	p.current, err = p.lexer.Next()
	return
}

func (p *Parser) factor() (node Node, err error) {
	tok := p.current
	switch tok.Type {
	case TOKEN_INTEGER:
		err = p.eat(TOKEN_INTEGER)
		if err != nil {
			return
		}
		node = &Num{Token: tok, Value: tok.Value}
	case TOKEN_LPAREN:
		err = p.eat(TOKEN_LPAREN)
		if err != nil {
			return
		}
		node, err = p.expr()
		if err != nil {
			return
		}
		err = p.eat(TOKEN_RPAREN)
	default:
		err = ErrUnexpectedToken(tok)
	}

	return
}

func (p *Parser) term() (node Node, err error) {
	node, err = p.factor()
	if err != nil {
		return
	}

	for p.current.Type == TOKEN_MUL || p.current.Type == TOKEN_DIV {
		tok := p.current
		err = p.eat(tok.Type)
		if err != nil {
			return
		}

		var right Node
		right, err = p.factor()
		if err != nil {
			return
		}

		node = &BinOp{Left: node, Op: tok, Right: right}
	}

	return
}

func (p *Parser) expr() (node Node, err error) {
	node, err = p.term()
	if err != nil {
		return
	}

	for p.current.Type == TOKEN_PLUS || p.current.Type == TOKEN_MINUS {
		tok := p.current
		err = p.eat(tok.Type)
		if err != nil {
			return
		}

		var right Node
		right, err = p.term()
		if err != nil {
			return
		}

		node = &BinOp{Left: node, Op: tok, Right: right}
	}

	return
}

// Parse parses a complete expression, requiring all input to be consumed.
func (p *Parser) Parse() (node Node, err error) {
	node, err = p.expr()
	if err != nil {
		return
	}

	err = p.eat(TOKEN_EOF)
	if err != nil {
		node = nil
	}

	return
}
