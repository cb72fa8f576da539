package pegstream

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
)

// Tracer reports each resume of a Named rule: an enter line, a result or
// fail line when that resume succeeds or fails, and an exit line, each
// naming the rule and the character it observed, indented by nesting
// depth. Rules not wrapped in Named are not traced. It is informational only,
// not a stable interface, matching spec.md §6 and pegasus.rules'
// debuggable() decorator (which wraps every rule generator with
// enter/result/fail/exit lines the same way).
type Tracer struct {
	w       io.Writer
	enabled atomic.Bool
	depth   atomic.Int32
}

// NewTracer returns a Tracer writing to w, disabled by default.
func NewTracer(w io.Writer) *Tracer {
	return &Tracer{w: w}
}

func (t *Tracer) Enable()  { t.enabled.Store(true) }
func (t *Tracer) Disable() { t.enabled.Store(false) }

func (t *Tracer) enter(name string, depth int, c Char) {
	if t == nil || !t.enabled.Load() {
		return
	}
	fmt.Fprintf(t.w, "pegstream: %senter %s -> %s\n", indent(depth), c, name)
}

func (t *Tracer) exit(name string, depth int, c Char, res RuleResult) {
	if t == nil || !t.enabled.Load() {
		return
	}
	switch res.Outcome {
	case Success:
		fmt.Fprintf(t.w, "pegstream: %sresult %s -> %s ==> %v (reconsume=%v)\n", indent(depth), c, name, res.Value, res.Reconsume)
	case Failure:
		fmt.Fprintf(t.w, "pegstream: %sfail %s -> %s\t%s\n", indent(depth), c, name, res.Err)
	}
	fmt.Fprintf(t.w, "pegstream: %sexit %s -> %s\n", indent(depth), c, name)
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// pushDepth and popDepth bracket one rule's Resume call, mirroring
// pegasus.rules.debuggable's global __dbgdepth counter (incremented on
// enter, decremented on exit) so nested named rules print at increasing
// indentation instead of all at depth 0.
func (t *Tracer) pushDepth() int {
	if t == nil {
		return 0
	}
	return int(t.depth.Add(1)) - 1
}

func (t *Tracer) popDepth() {
	if t == nil {
		return
	}
	t.depth.Add(-1)
}

// defaultTracer is the process-wide debug toggle described in spec.md §6,
// scoped behind SetTracing/DefaultTracer rather than bare package-level
// mutable flags, per spec.md §9's note that this convenience should be
// scoped to a per-parse context in a long-lived service.
var defaultTracer = NewTracer(os.Stderr)

// SetTracing enables or disables the process-wide default tracer, which
// every Named rule's sessions report their resumes to.
func SetTracing(enabled bool) {
	if enabled {
		defaultTracer.Enable()
	} else {
		defaultTracer.Disable()
	}
}

// DefaultTracer returns the process-wide tracer SetTracing controls.
func DefaultTracer() *Tracer { return defaultTracer }

// Named wraps a Rule so that its resumes are reported to a Tracer under
// the given name. The binder package uses this to label each grammar
// rule by its declared name.
func Named(name string, r Rule) Rule {
	return &namedRule{name: name, inner: r}
}

type namedRule struct {
	name  string
	inner Rule
}

func (r *namedRule) start() Session {
	return &namedSession{name: r.name, child: r.inner.start(), tracer: defaultTracer}
}

type namedSession struct {
	name   string
	child  Session
	tracer *Tracer
}

func (s *namedSession) Resume(c Char) RuleResult {
	depth := s.tracer.pushDepth()
	s.tracer.enter(s.name, depth, c)
	res := s.child.Resume(c)
	s.tracer.exit(s.name, depth, c, res)
	s.tracer.popDepth()
	return res
}
