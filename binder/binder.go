// Package binder is the thin outer binding layer spec.md §1 calls an
// "external collaborator": associating a user-defined visitor callback
// with a compiled rule, and dispatching a successful parse's captured
// tuple into it. It is grounded directly in
// original_source/pegasus/parser.py's @rule decorator and Parser class.
package binder

import (
	"errors"

	"github.com/wrenfold/pegstream"
)

// Visitor receives a rule's captured ResultTuple once it has matched and
// returns the domain value the grammar should produce for it, the way a
// pegasus rule method receives its captured arguments.
type Visitor func(pegstream.ResultTuple) (any, error)

// Grammar is an ordered collection of named rules, each with its own
// visitor. The first rule Define is called with becomes the default
// start rule, mirroring pegasus.Parser's implicit default.
type Grammar struct {
	order []string
	rules map[string]pegstream.Rule
	visit map[string]Visitor
	start string
}

// New returns an empty Grammar.
func New() *Grammar {
	return &Grammar{
		rules: map[string]pegstream.Rule{},
		visit: map[string]Visitor{},
	}
}

// ErrNoDefaultRule is returned by ParseDefault when no rule has been
// defined yet, mirroring pegasus.parser.NoDefaultRuleException.
var ErrNoDefaultRule = errors.New("binder: no default rule was found")

// Define compiles expr and registers it under name with the given
// visitor. A nil visitor means the raw ResultTuple is returned as-is from
// Parse. When visit is set, the rule is wrapped in a Transform, so
// referencing this rule by name from a later Define (via Rule) composes
// its already-resolved value rather than its raw capture — the same
// effect original_source/pegasus/parser.py's @rule decorator has when one
// rule method appears inside another's RuleExpression.
func (g *Grammar) Define(name string, expr any, visit Visitor) error {
	rule, err := pegstream.Compile(expr)
	if err != nil {
		return err
	}
	if visit != nil {
		rule, err = pegstream.Transform(rule, func(v pegstream.ResultTuple) (any, error) {
			return visit(v)
		})
		if err != nil {
			return err
		}
	}
	if _, exists := g.rules[name]; !exists {
		g.order = append(g.order, name)
	}
	g.rules[name] = pegstream.Named(name, rule)
	g.visit[name] = visit
	if g.start == "" {
		g.start = name
	}
	return nil
}

// Rule returns the compiled Rule registered under name, for embedding in
// another rule's RuleExpression (e.g. as an Or/Seq/Alt/Tuple member).
func (g *Grammar) Rule(name string) (pegstream.Rule, error) {
	rule, ok := g.rules[name]
	if !ok {
		return nil, &pegstream.NotARuleError{Value: name}
	}
	return rule, nil
}

// Names returns the defined rule names in declaration order.
func (g *Grammar) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// SetStart changes the rule ParseDefault uses.
func (g *Grammar) SetStart(name string) error {
	if _, ok := g.rules[name]; !ok {
		return &pegstream.NotARuleError{Value: name}
	}
	g.start = name
	return nil
}

// Parse runs the named rule against input, requiring it to consume input
// exhaustively, then dispatches the captured tuple to that rule's
// visitor.
func (g *Grammar) Parse(name string, input any) (any, error) {
	return g.parse(name, input, true)
}

// ParseAny runs the named rule without requiring input to be fully
// consumed, for matching a sub-rule embedded in a larger document
// (pegasus's match=False).
func (g *Grammar) ParseAny(name string, input any) (any, error) {
	return g.parse(name, input, false)
}

// ParseDefault parses input against the start rule: the first rule Define
// registered, unless SetStart has chosen another.
func (g *Grammar) ParseDefault(input any) (any, error) {
	if g.start == "" {
		return nil, ErrNoDefaultRule
	}
	return g.Parse(g.start, input)
}

func (g *Grammar) parse(name string, input any, matchAll bool) (any, error) {
	rule, ok := g.rules[name]
	if !ok {
		return nil, &pegstream.NotARuleError{Value: name}
	}

	value, err := pegstream.Parse(rule, input, matchAll)
	if err != nil {
		return nil, err
	}

	// Define already wrapped the rule in a Transform when it has a
	// visitor, so value here is ResultTuple{resolved} — unwrap it rather
	// than running the visitor a second time.
	if g.visit[name] == nil {
		return value, nil
	}
	return value[0], nil
}
