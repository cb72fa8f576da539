package pegstream

// Discard runs its inner rule faithfully but rewrites every Success to
// carry an empty ResultTuple, keeping only the Reconsume flag. Used for
// syntactic noise (punctuation, whitespace) that should be matched but
// not captured.
func Discard(exprs ...any) (Rule, error) {
	inner, err := compileOne(exprs)
	if err != nil {
		return nil, err
	}
	return &discardRule{inner: inner}, nil
}

type discardRule struct {
	inner Rule
}

func (r *discardRule) start() Session {
	return &discardSession{child: r.inner.start()}
}

type discardSession struct {
	child Session
}

func (s *discardSession) Resume(c Char) RuleResult {
	res := s.child.Resume(c)
	if res.Outcome == Success {
		return successResult(ResultTuple{}, res.Reconsume)
	}
	return res
}
