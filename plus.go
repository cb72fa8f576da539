package pegstream

// Plus matches one or more repetitions of its inner rule. Each successful
// iteration starts a fresh session of the inner rule; the run ends on the
// first iteration that fails, and that failing iteration's character is
// reconsumed since it was never committed. Plus's captured value is a
// ResultTuple whose elements are themselves the per-iteration
// ResultTuples (see SPEC_FULL.md's note on this), not a flattened tuple.
func Plus(exprs ...any) (Rule, error) {
	inner, err := compileOne(exprs)
	if err != nil {
		return nil, err
	}
	return &plusRule{inner: inner}, nil
}

type plusRule struct {
	inner Rule
}

func (r *plusRule) start() Session {
	return &plusSession{rule: r, child: r.inner.start()}
}

type plusSession struct {
	rule    *plusRule
	results []ResultTuple
	child   Session
}

func (s *plusSession) Resume(c Char) RuleResult {
	res := s.child.Resume(c)
	switch res.Outcome {
	case Pending:
		return res
	case Success:
		s.results = append(s.results, res.Value)
		s.child = s.rule.inner.start()
		return pendingResult(res.Reconsume)
	default: // Failure
		if len(s.results) == 0 {
			return res
		}
		out := make(ResultTuple, len(s.results))
		for i, r := range s.results {
			out[i] = r
		}
		return successResult(out, true)
	}
}
