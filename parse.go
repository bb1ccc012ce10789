package exprcalc

import (
	"math/big"
	"strings"
)

// Grammar, loosest to tightest binding:
//
//	expression  = sum
//	sum         = difference {'+' difference}
//	difference  = product {'-' product}
//	product     = quotient {('*'|'×') quotient}
//	quotient    = power {('/'|'÷') power}
//	power       = value {'^' value}
//	value       = parenthesis | number
//	parenthesis = [sign] '(' expression ')'
//	number      = scientific | decimal | integer
//	integer     = [sign] digit+
//	decimal     = [sign] digit* '.' digit+
//	scientific  = (integer | decimal) ('e'|'E') [sign] digit+
//	sign        = '-'
//
// Each rule takes the source text and a cursor and returns its node with
// the cursor advanced past what it consumed, or a positional error. A rule
// that fails consumes nothing; callers keep their own cursor.

// Expr is a parsed expression that can be evaluated.
type Expr struct {
	n node
}

// Parse parses an expression into a tree. The given options are applied in
// order. Input remaining after a complete expression is an error.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := parsectx{prec: DefaultPrec}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, pos, err := parseExpression(src, 0, &p)
	if err != nil {
		return nil, err
	}
	pos = skipSpace(src, pos)
	if pos < len(src) {
		return nil, &TrailingError{Col: pos, Text: src[pos:]}
	}
	return &Expr{n: n}, nil
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (Value, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return Value{}, err
	}
	return e.Eval()
}

// String renders the parse tree in a fully parenthesized form. Parsing the
// result yields a structurally identical tree.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.writeTo(&b)
	return b.String()
}

// rule is the signature shared by every grammar rule.
type rule func(src string, pos int, p *parsectx) (node, int, error)

func parseExpression(src string, pos int, p *parsectx) (node, int, error) {
	return parseSum(src, pos, p)
}

func parseSum(src string, pos int, p *parsectx) (node, int, error) {
	return parseChain(src, pos, p, parseDifference, func(terms []node) node {
		return &sumNode{terms: terms}
	}, "+")
}

func parseDifference(src string, pos int, p *parsectx) (node, int, error) {
	return parseChain(src, pos, p, parseProduct, func(terms []node) node {
		return &differenceNode{terms: terms}
	}, "-")
}

func parseProduct(src string, pos int, p *parsectx) (node, int, error) {
	return parseChain(src, pos, p, parseQuotient, func(factors []node) node {
		return &productNode{factors: factors}
	}, "*", "×")
}

func parseQuotient(src string, pos int, p *parsectx) (node, int, error) {
	return parseChain(src, pos, p, parsePower, func(factors []node) node {
		return &quotientNode{factors: factors}
	}, "/", "÷")
}

// parseChain matches one sub-expression, then greedily repeats operator
// plus sub-expression, collecting every operand into one flattened list. A
// single operand collapses to the operand's own node.
func parseChain(src string, pos int, p *parsectx, sub rule, wrap func([]node) node, ops ...string) (node, int, error) {
	first, pos, err := sub(src, pos, p)
	if err != nil {
		return nil, 0, err
	}
	operands := []node{first}
	for {
		after, ok := scanAnyLiteral(src, skipSpace(src, pos), ops...)
		if !ok {
			break
		}
		rhs, next, err := sub(src, after, p)
		if err != nil {
			return nil, 0, err
		}
		operands = append(operands, rhs)
		pos = next
	}
	if len(operands) == 1 {
		return first, pos, nil
	}
	return wrap(operands), pos, nil
}

// parsePower matches value {'^' value}. Each additional exponent nests the
// pair parsed so far as the base of the next, consuming left-to-right.
func parsePower(src string, pos int, p *parsectx) (node, int, error) {
	left, pos, err := parseValue(src, pos, p)
	if err != nil {
		return nil, 0, err
	}
	for {
		after, ok := scanLiteral(src, skipSpace(src, pos), "^")
		if !ok {
			return left, pos, nil
		}
		exp, next, err := parseValue(src, after, p)
		if err != nil {
			return nil, 0, err
		}
		left = &powerNode{base: left, exp: exp}
		pos = next
	}
}

// parseValue matches a parenthesized expression or a numeric literal. A
// sign before "(" negates the whole group; a sign before digits belongs to
// the literal.
func parseValue(src string, pos int, p *parsectx) (node, int, error) {
	mark := skipSpace(src, pos)
	after, neg := scanLiteral(src, mark, "-")
	if open, ok := scanLiteral(src, skipSpace(src, after), "("); ok {
		inner, next, err := parseExpression(src, open, p)
		if err != nil {
			return nil, 0, err
		}
		closeAt := skipSpace(src, next)
		end, ok := scanLiteral(src, closeAt, ")")
		if !ok {
			return nil, 0, &BracketError{Col: closeAt, Open: open - 1}
		}
		if neg {
			return &negateNode{x: inner}, end, nil
		}
		return inner, end, nil
	}
	return parseNumber(src, mark, p)
}

// parseNumber matches one numeric literal starting exactly at pos, sign
// included. Whitespace never occurs inside a literal. A decimal point or
// exponent marker commits the literal to the decimal tag.
func parseNumber(src string, pos int, p *parsectx) (node, int, error) {
	start := pos
	pos, _ = scanLiteral(src, pos, "-")
	pos, digits := scanDigits(src, pos)
	decimal := false
	if after, ok := scanLiteral(src, pos, "."); ok {
		next, frac := scanDigits(src, after)
		if !frac {
			return nil, 0, numberError(src, start, next)
		}
		pos, decimal = next, true
	}
	if !digits && !decimal {
		return nil, 0, numberError(src, start, pos)
	}
	if after, ok := scanAnyLiteral(src, pos, "e", "E"); ok {
		signed, _ := scanLiteral(src, after, "-")
		next, exp := scanDigits(src, signed)
		if !exp {
			return nil, 0, numberError(src, start, next)
		}
		pos, decimal = next, true
	}
	lit := src[start:pos]
	if decimal {
		f, _, err := big.ParseFloat(lit, 10, p.prec, big.ToNearestEven)
		if err != nil {
			return nil, 0, &NumberError{Col: start}
		}
		return &numberNode{lit: lit, val: decValue(f)}, pos, nil
	}
	i, ok := new(big.Int).SetString(lit, 10)
	if !ok {
		return nil, 0, &NumberError{Col: start}
	}
	return &numberNode{lit: lit, val: intValue(i, p.prec)}, pos, nil
}

// numberError reports end of input when the scan ran out of source, and a
// number error at the literal's start otherwise.
func numberError(src string, start, at int) error {
	if at >= len(src) {
		return &EndOfInputError{Col: len(src)}
	}
	return &NumberError{Col: start}
}
