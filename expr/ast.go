package expr

// Node is a node of the expression tree.
type Node interface {
	node()
}

// Num is an integer literal.
type Num struct {
	Token Token
	Value int64
}

// BinOp is a binary operation over two subtrees.
type BinOp struct {
	Left  Node
	Op    Token
	Right Node
}

func (*Num) node()   {}
func (*BinOp) node() {}
