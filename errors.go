package pegstream

import (
	"fmt"
	"strings"
)

// ParseError is the error a rule session fails with. It is recoverable by
// an enclosing Or or Opt; fatal otherwise. Got is the offending character
// (or "<EOF>", or a semantic tag such as "result"); Expected lists what
// would have let the rule succeed at that position.
type ParseError struct {
	Got      string
	Expected []string
}

func (e *ParseError) Error() string {
	switch len(e.Expected) {
	case 0:
		return fmt.Sprintf("unexpected: %s", e.Got)
	case 1:
		return fmt.Sprintf("got: %s, expected: %s", e.Got, e.Expected[0])
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "got: %s, expected one of:", e.Got)
		for _, exp := range e.Expected {
			fmt.Fprintf(&b, "\n- %s", exp)
		}
		return b.String()
	}
}

// CombineParseErrors flattens every failed alternative's Expected list
// into one error, pairing each expectation with the Got of the error it
// came from ("<expected> but got '<got>' instead"). Used by Or once every
// live alternative has failed.
func CombineParseErrors(errs []*ParseError) *ParseError {
	var expected []string
	for _, e := range errs {
		for _, exp := range e.Expected {
			expected = append(expected, fmt.Sprintf("%s but got '%s' instead", exp, e.Got))
		}
	}
	return &ParseError{Expected: expected}
}

// BadRuleError is raised at compile time when a RuleExpression has an
// unrecognizable shape.
type BadRuleError struct {
	Value any
}

func (e *BadRuleError) Error() string {
	return fmt.Sprintf("pegstream: rule has invalid type: %#v", e.Value)
}

// EmptyRuleError is raised when a rule is declared with zero children
// (e.g. Seq() at the top level).
type EmptyRuleError struct{}

func (e *EmptyRuleError) Error() string {
	return "pegstream: cannot supply an empty rule"
}

// NotARuleError is raised when a name given as a rule does not refer to a
// defined rule; the binder package returns it for unknown rule names.
// Parse reports an expression of unrecognizable shape as a *BadRuleError.
type NotARuleError struct {
	Value any
}

func (e *NotARuleError) Error() string {
	return fmt.Sprintf("pegstream: not a rule: %#v", e.Value)
}
