package exprcalc

import "strings"

// Scanning primitives. Each takes the source text and a cursor, which is a
// byte offset into the text, and returns the advanced cursor. A cursor is
// never mutated in place; a rule that fails to match reports the cursor it
// was given, so backtracking is by value.

// skipSpace advances pos past any whitespace.
func skipSpace(src string, pos int) int {
	for pos < len(src) && isSpace(src[pos]) {
		pos++
	}
	return pos
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// scanLiteral matches lit at pos. On a match it returns the cursor advanced
// past lit and true; otherwise the original cursor and false.
func scanLiteral(src string, pos int, lit string) (int, bool) {
	if strings.HasPrefix(src[pos:], lit) {
		return pos + len(lit), true
	}
	return pos, false
}

// scanAnyLiteral matches the first of lits at pos.
func scanAnyLiteral(src string, pos int, lits ...string) (int, bool) {
	for _, lit := range lits {
		if p, ok := scanLiteral(src, pos, lit); ok {
			return p, true
		}
	}
	return pos, false
}

// scanDigits advances pos past a run of ASCII digits. ok reports whether at
// least one digit was consumed.
func scanDigits(src string, pos int) (_ int, ok bool) {
	start := pos
	for pos < len(src) && '0' <= src[pos] && src[pos] <= '9' {
		pos++
	}
	return pos, pos > start
}
