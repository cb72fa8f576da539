package pegstream

import "fmt"

// Char is the unit the driver offers to a rule session on every resume: a
// single Unicode code point, or the distinguished end-of-input marker.
type Char struct {
	R   rune
	EOF bool
}

func (c Char) String() string {
	if c.EOF {
		return "<EOF>"
	}
	return string(c.R)
}

// got renders a Char the way ParseError.Got expects it: the rune itself,
// or the literal "<EOF>" sentinel.
func (c Char) got() string {
	return c.String()
}

// charFeed pulls code points one at a time out of a flattened input,
// reporting exhaustion rather than ever yielding past it.
type charFeed struct {
	runes []rune
	pos   int
}

func newCharFeed(input any) (*charFeed, error) {
	var runes []rune
	if err := flattenRunes(&runes, input); err != nil {
		return nil, err
	}
	return &charFeed{runes: runes}, nil
}

// pull returns the next code point and whether the feed is exhausted. Once
// exhausted it keeps returning exhausted forever; it never panics or
// blocks.
func (f *charFeed) pull() (rune, bool) {
	if f.pos >= len(f.runes) {
		return 0, true
	}
	r := f.runes[f.pos]
	f.pos++
	return r, false
}

// hasMore reports whether any real (non-EOF) code points remain past
// whatever was last returned by pull.
func (f *charFeed) hasMore() bool {
	return f.pos < len(f.runes)
}

// flattenRunes recursively flattens strings, rune slices, string slices
// and slices of any of those into out, so that a caller can hand Parse a
// bare string, a []string, or nested combinations of both.
func flattenRunes(out *[]rune, v any) error {
	switch t := v.(type) {
	case string:
		*out = append(*out, []rune(t)...)
	case []rune:
		*out = append(*out, t...)
	case []string:
		for _, s := range t {
			*out = append(*out, []rune(s)...)
		}
	case []any:
		for _, e := range t {
			if err := flattenRunes(out, e); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("pegstream: unsupported input type %T", v)
	}
	return nil
}
