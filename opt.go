package pegstream

// Opt makes its inner rule optional: a Success passes through verbatim, a
// Failure is swallowed and turned into a zero-match Success that always
// reconsumes, since no input was committed. Opt never fails.
func Opt(exprs ...any) (Rule, error) {
	inner, err := compileOne(exprs)
	if err != nil {
		return nil, err
	}
	return &optRule{inner: inner}, nil
}

type optRule struct {
	inner Rule
}

func (r *optRule) start() Session {
	return &optSession{child: r.inner.start()}
}

type optSession struct {
	child Session
}

func (s *optSession) Resume(c Char) RuleResult {
	res := s.child.Resume(c)
	if res.Outcome == Failure {
		return successResult(ResultTuple{}, true)
	}
	return res
}
