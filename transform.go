package pegstream

// Transform wraps expr so that, once it succeeds, fn runs on its captured
// ResultTuple and the returned value replaces it as a single spliced
// element. This is what lets a rule that already has domain meaning (a
// parsed number, a resolved boolean) be referenced from a parent rule the
// way a plain Literal or ChrRange would be, rather than forcing every
// parent to re-derive that meaning from the raw tuple. It generalizes the
// effect original_source/pegasus/parser.py's @rule decorator has on every
// rule method: the method's return value, not its raw capture, is what
// composes into the rules that reference it.
func Transform(expr any, fn func(ResultTuple) (any, error)) (Rule, error) {
	inner, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return &transformRule{inner: inner, fn: fn}, nil
}

type transformRule struct {
	inner Rule
	fn    func(ResultTuple) (any, error)
}

func (r *transformRule) start() Session {
	return &transformSession{fn: r.fn, child: r.inner.start()}
}

type transformSession struct {
	fn    func(ResultTuple) (any, error)
	child Session
}

func (s *transformSession) Resume(c Char) RuleResult {
	res := s.child.Resume(c)
	if res.Outcome != Success {
		return res
	}
	value, err := s.fn(res.Value)
	if err != nil {
		return failureResult(&ParseError{Got: c.got(), Expected: []string{err.Error()}})
	}
	return successResult(ResultTuple{value}, res.Reconsume)
}
