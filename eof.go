package pegstream

type eofRule struct{}

// EOF matches only the end of input, capturing nothing.
func EOF() Rule {
	return eofRule{}
}

func (eofRule) start() Session {
	return eofSession{}
}

type eofSession struct{}

func (eofSession) Resume(c Char) RuleResult {
	if c.EOF {
		return successResult(ResultTuple{}, false)
	}
	return failureResult(&ParseError{
		Got:      c.got(),
		Expected: []string{"<EOF>"},
	})
}
