package pegstream

// ParseAll compiles expr, runs it against input, and requires the rule to
// consume the input exhaustively (matchAll=true).
func ParseAll(expr any, input any) (ResultTuple, error) {
	return Parse(expr, input, true)
}

// ParseAny compiles expr and runs it against input without requiring
// input to be fully consumed (matchAll=false); useful for matching a
// sub-rule embedded in a larger document.
func ParseAny(expr any, input any) (ResultTuple, error) {
	return Parse(expr, input, false)
}

// Parse compiles expr, begins one top-level session, and feeds input
// through it one code point at a time until the session succeeds or
// fails. When matchAll is true, a Success before input is exhausted (and
// that didn't itself consume through <EOF>) is turned into a ParseError,
// per spec.md §4.1.
func Parse(expr any, input any, matchAll bool) (ResultTuple, error) {
	rule, err := Compile(expr)
	if err != nil {
		return nil, err
	}

	feed, err := newCharFeed(input)
	if err != nil {
		return nil, err
	}

	sess := rule.start()
	cur, atEOF := feed.pull()
	moreRemaining := feed.hasMore()

	for {
		c := Char{R: cur, EOF: atEOF}
		res := sess.Resume(c)

		switch res.Outcome {
		case Pending:
			if res.Reconsume {
				continue
			}
			if !atEOF {
				cur, atEOF = feed.pull()
				moreRemaining = feed.hasMore()
			}
			continue

		case Failure:
			return nil, res.Err

		default: // Success
			consumedThroughEOF := atEOF
			fullyExhausted := consumedThroughEOF || (!moreRemaining && !res.Reconsume)
			if matchAll && !fullyExhausted {
				return nil, &ParseError{
					Got: "result (rule returned a result without fully exhausting input)",
				}
			}
			return res.Value, nil
		}
	}
}
