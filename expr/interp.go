package expr

// Eval walks the expression tree and computes its value. Division is true
// division, so the result is floating point.
func Eval(node Node) (value float64, err error) {
	switch n := node.(type) {
	case *Num:
		value = float64(n.Value)
	case *BinOp:
		var left, right float64
		left, err = Eval(n.Left)
		if err != nil {
			return
		}
		right, err = Eval(n.Right)
		if err != nil {
			return
		}

		switch n.Op.Type {
		case TOKEN_PLUS:
			value = left + right
		case TOKEN_MINUS:
			value = left - right
		case TOKEN_MUL:
			value = left * right
		case TOKEN_DIV:
			if right == 0 {
				err = ErrDivideByZero
				return
			}
			value = left / right
		default:
			err = ErrUnexpectedToken(n.Op)
		}
	default:
		err = ErrNodeUnknown
	}

	return
}

// Interpret lexes, parses, and evaluates an expression in one call.
func Interpret(input string) (value float64, err error) {
	parser, err := NewParser(NewLexer(input))
	if err != nil {
		return
	}

	node, err := parser.Parse()
	if err != nil {
		return
	}

	return Eval(node)
}
