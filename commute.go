package exprcalc

// Commutations returns every expression equivalent to e under commutation:
// the operands of a sum or product chain may appear in any order, while
// difference, quotient, and power operands keep their positions. Operands
// are commuted recursively, so "2*3 + 4" yields four expressions. The
// result includes e itself and is free of duplicates, but its size grows
// factorially with chain length.
func (e *Expr) Commutations() []*Expr {
	seen := make(map[string]bool)
	var out []*Expr
	for _, n := range commutations(e.n) {
		c := &Expr{n: n}
		s := c.String()
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, c)
	}
	return out
}

// Equivalent reports whether two expressions are equal up to commutation of
// sums and products, e.g. "2*3 + 4*5" and "5*4 + 2*3". Redundant
// parentheses are insignificant; numeric leaves must match in value and
// tag. Both arguments must parse.
func Equivalent(target, checked string, opts ...ParseOption) (bool, error) {
	t, err := Parse(target, opts...)
	if err != nil {
		return false, err
	}
	c, err := Parse(checked, opts...)
	if err != nil {
		return false, err
	}
	for _, e := range t.Commutations() {
		if equalTrees(e.n, c.n) {
			return true, nil
		}
	}
	return false, nil
}

func commutations(n node) []node {
	switch n := n.(type) {
	case *numberNode:
		return []node{n}
	case *negateNode:
		xs := commutations(n.x)
		out := make([]node, len(xs))
		for i, x := range xs {
			out[i] = &negateNode{x: x}
		}
		return out
	case *powerNode:
		var out []node
		for _, base := range commutations(n.base) {
			for _, exp := range commutations(n.exp) {
				out = append(out, &powerNode{base: base, exp: exp})
			}
		}
		return out
	case *quotientNode:
		return wrapChains(operandChoices(n.factors), func(factors []node) node {
			return &quotientNode{factors: factors}
		})
	case *differenceNode:
		return wrapChains(operandChoices(n.terms), func(terms []node) node {
			return &differenceNode{terms: terms}
		})
	case *productNode:
		var out []node
		for _, p := range permutations(n.factors) {
			out = append(out, wrapChains(operandChoices(p), func(factors []node) node {
				return &productNode{factors: factors}
			})...)
		}
		return out
	case *sumNode:
		var out []node
		for _, p := range permutations(n.terms) {
			out = append(out, wrapChains(operandChoices(p), func(terms []node) node {
				return &sumNode{terms: terms}
			})...)
		}
		return out
	default:
		panic("unknown node type")
	}
}

// operandChoices returns every way to pick one commutation of each operand,
// keeping operand order.
func operandChoices(operands []node) [][]node {
	rows := [][]node{nil}
	for _, op := range operands {
		cs := commutations(op)
		next := make([][]node, 0, len(rows)*len(cs))
		for _, row := range rows {
			for _, c := range cs {
				next = append(next, append(append([]node(nil), row...), c))
			}
		}
		rows = next
	}
	return rows
}

// permutations returns every ordering of operands.
func permutations(operands []node) [][]node {
	if len(operands) <= 1 {
		return [][]node{append([]node(nil), operands...)}
	}
	var out [][]node
	for i, op := range operands {
		rest := make([]node, 0, len(operands)-1)
		rest = append(rest, operands[:i]...)
		rest = append(rest, operands[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]node{op}, p...))
		}
	}
	return out
}

func wrapChains(chains [][]node, wrap func([]node) node) []node {
	out := make([]node, len(chains))
	for i, ops := range chains {
		out[i] = wrap(ops)
	}
	return out
}

// equalTrees reports whether two trees have the same shape, with numeric
// leaves equal in value and tag. Literal spelling is insignificant, so the
// leaves of "2.0 + 1" and "2.00 + 1" match.
func equalTrees(a, b node) bool {
	switch a := a.(type) {
	case *numberNode:
		b, ok := b.(*numberNode)
		return ok && a.val.IsDecimal() == b.val.IsDecimal() && a.val.Cmp(b.val) == 0
	case *negateNode:
		b, ok := b.(*negateNode)
		return ok && equalTrees(a.x, b.x)
	case *powerNode:
		b, ok := b.(*powerNode)
		return ok && equalTrees(a.base, b.base) && equalTrees(a.exp, b.exp)
	case *quotientNode:
		b, ok := b.(*quotientNode)
		return ok && equalChains(a.factors, b.factors)
	case *productNode:
		b, ok := b.(*productNode)
		return ok && equalChains(a.factors, b.factors)
	case *differenceNode:
		b, ok := b.(*differenceNode)
		return ok && equalChains(a.terms, b.terms)
	case *sumNode:
		b, ok := b.(*sumNode)
		return ok && equalChains(a.terms, b.terms)
	default:
		panic("unknown node type")
	}
}

func equalChains(a, b []node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalTrees(a[i], b[i]) {
			return false
		}
	}
	return true
}
