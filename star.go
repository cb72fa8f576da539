package pegstream

// Star matches zero or more repetitions of its inner rule. It is defined
// as Opt(Plus(inner)), inheriting Plus's per-iteration tuple shape and
// Opt's always-reconsume zero-match case.
func Star(exprs ...any) (Rule, error) {
	plus, err := Plus(exprs...)
	if err != nil {
		return nil, err
	}
	return Opt(plus)
}
