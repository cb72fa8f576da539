package pegstream

import "fmt"

type chrRangeRule struct {
	lo, hi rune
}

// ChrRange matches a single code point in the closed inclusive range
// [lo, hi], capturing the matched rune.
func ChrRange(lo, hi rune) Rule {
	return &chrRangeRule{lo: lo, hi: hi}
}

func (r *chrRangeRule) start() Session {
	return &chrRangeSession{rule: r}
}

type chrRangeSession struct {
	rule *chrRangeRule
}

func (s *chrRangeSession) Resume(c Char) RuleResult {
	if !c.EOF && c.R >= s.rule.lo && c.R <= s.rule.hi {
		return successResult(ResultTuple{c.R}, false)
	}
	return failureResult(&ParseError{
		Got:      c.got(),
		Expected: []string{fmt.Sprintf("character in class [%c-%c]", s.rule.lo, s.rule.hi)},
	})
}
