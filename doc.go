// Package exprcalc parses and evaluates four-operator arithmetic with
// exponentiation.
//
// The grammar separates sums from differences and products from quotients,
// so operands joined by one operator collect into a single flattened list
// instead of a nested binary tree. "10 - 3 - 2" parses to one Difference
// node with three operands, evaluated as a strict left fold. That keeps
// reorderings permitted by commutativity and associativity a list
// operation rather than a tree rotation.
//
// Values are tagged as integer or decimal by the lexical form of the
// literal that produced them. Integers stay exact until an operation
// cannot, such as mixing with a decimal, dividing unevenly, or raising to
// a negative exponent; then the result promotes to decimal.
package exprcalc
