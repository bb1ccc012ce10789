package exprcalc

// Eval reduces the expression tree to a single value. Evaluation is pure:
// it reads the tree, touches no shared state, and needs nothing from the
// original source text.
func (e *Expr) Eval() (Value, error) {
	return e.n.eval()
}

func (n *numberNode) eval() (Value, error) {
	return n.val, nil
}

func (n *negateNode) eval() (Value, error) {
	v, err := n.x.eval()
	if err != nil {
		return Value{}, err
	}
	return v.neg(), nil
}

func (n *powerNode) eval() (Value, error) {
	base, err := n.base.eval()
	if err != nil {
		return Value{}, err
	}
	exp, err := n.exp.eval()
	if err != nil {
		return Value{}, err
	}
	return base.pow(exp)
}

func (n *quotientNode) eval() (Value, error) {
	return foldChain(n.factors, Value.quo)
}

func (n *productNode) eval() (Value, error) {
	return foldChain(n.factors, func(v, w Value) (Value, error) {
		return v.mul(w), nil
	})
}

func (n *differenceNode) eval() (Value, error) {
	return foldChain(n.terms, func(v, w Value) (Value, error) {
		return v.sub(w), nil
	})
}

func (n *sumNode) eval() (Value, error) {
	return foldChain(n.terms, func(v, w Value) (Value, error) {
		return v.add(w), nil
	})
}

// foldChain reduces a flattened operand list as a strict left fold, in
// list order. List order is the evaluation order; it is never treated as a
// set.
func foldChain(operands []node, op func(Value, Value) (Value, error)) (Value, error) {
	acc, err := operands[0].eval()
	if err != nil {
		return Value{}, err
	}
	for _, x := range operands[1:] {
		w, err := x.eval()
		if err != nil {
			return Value{}, err
		}
		acc, err = op(acc, w)
		if err != nil {
			return Value{}, err
		}
	}
	return acc, nil
}

// DivideByZeroError is an evaluation error: a quotient operand evaluated
// to exactly zero.
type DivideByZeroError struct {
	// X is the dividend.
	X Value
}

func (err *DivideByZeroError) Error() string {
	return "division of " + err.X.String() + " by zero"
}

// DomainError is an evaluation error: an operation has no real result for
// its operands, e.g. a negative base raised to a fractional exponent.
type DomainError struct {
	// X is the out-of-domain operand.
	X Value
	// Op is the operator.
	Op string
}

func (err *DomainError) Error() string {
	return err.X.String() + " outside domain of " + err.Op
}
