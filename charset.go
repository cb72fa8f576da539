package pegstream

import (
	"fmt"
	"strings"
)

// charSetRule matches a single code point against an explicit set of
// runes, rather than a contiguous ChrRange. This is grounded on
// original_source's In(...) builtin, referenced by
// original_source/test/test_json.py's char_escape and string rules
// (e.g. In(ESCAPES.keys()), In('\\"', True)) though its own definition
// was not among the retrieved pegasus source files; its shape (a set
// membership test with an optional negate flag) is inferred from those
// two call sites.
type charSetRule struct {
	set    string
	negate bool
}

// CharIn matches a single character that appears in set, capturing the
// matched rune.
func CharIn(set string) Rule {
	return &charSetRule{set: set}
}

// CharNotIn matches a single character that does not appear in set,
// capturing the matched rune. EOF never matches.
func CharNotIn(set string) Rule {
	return &charSetRule{set: set, negate: true}
}

func (r *charSetRule) start() Session {
	return &charSetSession{rule: r}
}

type charSetSession struct {
	rule *charSetRule
}

func (s *charSetSession) Resume(c Char) RuleResult {
	if !c.EOF && (strings.ContainsRune(s.rule.set, c.R) != s.rule.negate) {
		return successResult(ResultTuple{c.R}, false)
	}
	return failureResult(&ParseError{
		Got:      c.got(),
		Expected: []string{s.rule.describe()},
	})
}

func (r *charSetRule) describe() string {
	if r.negate {
		return fmt.Sprintf("character not in %q", r.set)
	}
	return fmt.Sprintf("character in %q", r.set)
}
