package pegstream

import "fmt"

type literalRule struct {
	text  string
	runes []rune
}

// Literal matches a fixed string. On success it captures the matched
// string as its single ResultTuple element.
func Literal(s string) Rule {
	return &literalRule{text: s, runes: []rune(s)}
}

func (r *literalRule) start() Session {
	return &literalSession{rule: r}
}

type literalSession struct {
	rule *literalRule
	idx  int
}

func (s *literalSession) Resume(c Char) RuleResult {
	if len(s.rule.runes) == 0 {
		// Nothing was ever offered to this rule; don't claim the
		// current character was consumed.
		return successResult(ResultTuple{s.rule.text}, true)
	}

	want := s.rule.runes[s.idx]
	if !c.EOF && c.R == want {
		s.idx++
		if s.idx == len(s.rule.runes) {
			return successResult(ResultTuple{s.rule.text}, false)
		}
		return pendingResult(false)
	}

	return failureResult(&ParseError{
		Got:      c.got(),
		Expected: []string{fmt.Sprintf("'%c' (in literal '%s')", want, s.rule.text)},
	})
}
