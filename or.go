package pegstream

// Or is ordered choice with parallel lookahead: every alternative starts a
// session up front, and each is resumed with the same character on every
// shared resume. The first alternative to succeed (in declaration order
// among those still live) wins; Or only fails once every alternative has
// failed, combining their errors.
func Or(exprs ...any) (Rule, error) {
	children, err := compileChildren(exprs)
	if err != nil {
		return nil, err
	}
	return &orRule{children: children}, nil
}

type orRule struct {
	children []Rule
}

func (r *orRule) start() Session {
	live := make([]Session, len(r.children))
	for i, c := range r.children {
		live[i] = c.start()
	}
	return &orSession{live: live}
}

type orSession struct {
	live   []Session
	errors []*ParseError
}

func (s *orSession) Resume(c Char) RuleResult {
	stillLive := s.live[:0]
	for _, sess := range s.live {
		res := sess.Resume(c)
		// A live alternative asking to reconsume hasn't actually finished
		// reacting to c yet (e.g. a Seq child just succeeded without
		// consuming c, and the next child still needs to see it) — drive
		// it again with the same c, the way the top-level driver would,
		// until it settles on a character of its own or gives c up.
		for res.Outcome == Pending && res.Reconsume {
			res = sess.Resume(c)
		}
		switch res.Outcome {
		case Success:
			// Abandon the rest the instant one alternative succeeds.
			return successResult(res.Value, res.Reconsume)
		case Failure:
			s.errors = append(s.errors, res.Err)
		default: // Pending, and no longer asking to reconsume c
			stillLive = append(stillLive, sess)
		}
	}
	s.live = stillLive

	if len(s.live) == 0 {
		return failureResult(CombineParseErrors(s.errors))
	}
	// Every live alternative has settled on c; none reconsume it.
	return pendingResult(false)
}
