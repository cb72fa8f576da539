package pegstream

// Session is one live instance of a Rule: created when the rule begins a
// match attempt, resumed once per offered Char, and discarded on Success
// or Failure. A Session never observes a character other than through the
// Char it's handed by Resume.
type Session interface {
	Resume(c Char) RuleResult
}

// Rule is a compiled rule primitive: a factory that starts a fresh
// Session. The interface is sealed (its start method is unexported) because every
// Rule is built by one of this package's combinators; callers only ever
// hold and pass around the values those combinators return.
type Rule interface {
	start() Session
}

// Alt is a RuleExpression spelling an unordered ordered-choice list (the
// literal-list form of Or) without calling Or directly, mirroring
// pegasus's bare Python list rule shape.
type Alt []any

// Tuple is a RuleExpression spelling an ordered sequence (the literal
// tuple form of Seq) without calling Seq directly, mirroring pegasus's
// bare Python tuple rule shape.
type Tuple []any

// Compile normalizes a RuleExpression into a Rule: a Rule passes through
// unchanged, a string becomes Literal(s), an Alt becomes Or(...), and a
// Tuple becomes Seq(...). Anything else is a *BadRuleError.
func Compile(expr any) (Rule, error) {
	switch v := expr.(type) {
	case Rule:
		return v, nil
	case string:
		return Literal(v), nil
	case Alt:
		return Or(v...)
	case Tuple:
		return Seq(v...)
	default:
		return nil, &BadRuleError{Value: expr}
	}
}

// Must panics if compiling r failed; useful for building rule tables at
// package init time, the way regexp.MustCompile is used for patterns that
// are known-good at compile time.
func Must(r Rule, err error) Rule {
	if err != nil {
		panic(err)
	}
	return r
}

// compileChildren normalizes a combinator's variadic RuleExpression
// arguments in order, stopping at the first BadRuleError.
func compileChildren(exprs []any) ([]Rule, error) {
	children := make([]Rule, len(exprs))
	for i, e := range exprs {
		r, err := Compile(e)
		if err != nil {
			return nil, err
		}
		children[i] = r
	}
	return children, nil
}

// compileOne is used by Opt/Plus/Star/Discard: a single RuleExpression
// compiles directly, while more than one is implicitly wrapped in a Seq
// (mirroring pegasus.rules' `Seq(*rules) if len(rules) > 1 else
// _build_rule(*rules)`).
func compileOne(exprs []any) (Rule, error) {
	if len(exprs) == 0 {
		return nil, &EmptyRuleError{}
	}
	if len(exprs) == 1 {
		return Compile(exprs[0])
	}
	return Seq(exprs...)
}
