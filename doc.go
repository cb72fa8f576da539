// Package pegstream implements a character-streaming PEG-style parser
// combinator engine. Grammars are built from small rule combinators
// (Literal, ChrRange, EOF, Seq, Or, Opt, Plus, Star, Discard) and run
// against an input one code point at a time through Parse.
//
// Every combinator is a suspendable computation: each time it is resumed
// with the current character it yields Pending (keep going), Success (a
// captured ResultTuple, possibly asking for the last character to be
// reconsumed), or Failure (a *ParseError). Parse drives this protocol to
// completion. The binder subpackage attaches visitor callbacks to named
// rules.
package pegstream
