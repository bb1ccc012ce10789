package exprcalc

import "strconv"

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the byte offset in the source at which the error was
	// detected.
	Pos() int
}

// NumberError indicates a malformed or missing numeric literal, e.g. a bare
// sign with no digits, a decimal point with no fractional digits, or an
// exponent marker with no exponent.
type NumberError struct {
	// Col is the offset at which a number was expected.
	Col int
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "expected a number")
}

func (err *NumberError) Pos() int {
	return err.Col
}

// EndOfInputError indicates that the source ended where the grammar
// required more input.
type EndOfInputError struct {
	// Col is the offset of the end of the source.
	Col int
}

func (err *EndOfInputError) Error() string {
	return errpos(err.Col, "unexpected end of input")
}

func (err *EndOfInputError) Pos() int {
	return err.Col
}

// BracketError indicates a parenthesized group with no closing parenthesis.
type BracketError struct {
	// Col is the offset at which ")" was expected.
	Col int
	// Open is the offset of the unmatched "(".
	Open int
}

func (err *BracketError) Error() string {
	return errpos(err.Col, `expected ")" to close "(" at offset `+strconv.Itoa(err.Open))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingError indicates input remaining after a complete expression.
type TrailingError struct {
	// Col is the offset of the first unconsumed significant character.
	Col int
	// Text is the unconsumed remainder of the source.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected trailing input "+strconv.Quote(err.Text))
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*EndOfInputError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingError)(nil)
)
