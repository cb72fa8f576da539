package pegstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfold/pegstream"
)

func TestOrPicksFirstSuccessfulAlternative(t *testing.T) {
	rule := pegstream.Must(pegstream.Or(pegstream.Literal("true"), pegstream.Literal("false")))
	value, err := pegstream.ParseAny(rule, "false")
	require.NoError(t, err)
	assert.Equal(t, pegstream.ResultTuple{"false"}, value)
}

func TestOrPrefersDeclarationOrderOnTie(t *testing.T) {
	rule := pegstream.Must(pegstream.Or(pegstream.Literal("a"), pegstream.Literal("a")))
	value, err := pegstream.ParseAll(rule, "a")
	require.NoError(t, err)
	assert.Equal(t, pegstream.ResultTuple{"a"}, value)
}

func TestOrCombinesErrorsWhenAllAlternativesFail(t *testing.T) {
	rule := pegstream.Must(pegstream.Or(pegstream.Literal("hello"), pegstream.Literal("hi")))
	_, err := pegstream.ParseAll(rule, "hey")
	require.Error(t, err)

	var perr *pegstream.ParseError
	require.ErrorAs(t, err, &perr)
	require.Len(t, perr.Expected, 2)
	assert.Contains(t, perr.Expected, "'i' (in literal 'hi') but got 'e' instead")
	assert.Contains(t, perr.Expected, "'l' (in literal 'hello') but got 'y' instead")
}

func TestOrFailsWhenNoAlternativesGiven(t *testing.T) {
	rule := pegstream.Must(pegstream.Or())
	_, err := pegstream.ParseAll(rule, "x")
	require.Error(t, err)
}

// TestOrDoesNotDropCharacterWhenLiveAlternativeReconsumes guards against a
// live alternative's leading Opt succeeding without consuming the offered
// character (Pending{reconsume:true}) and Or silently discarding that
// request instead of re-driving the alternative with the same character,
// which would otherwise let the top-level driver skip straight to the
// next character and drop the one Opt never consumed.
func TestOrDoesNotDropCharacterWhenLiveAlternativeReconsumes(t *testing.T) {
	number := pegstream.Must(pegstream.Seq(
		pegstream.Must(pegstream.Opt(pegstream.Must(pegstream.Or("+", "-")))),
		pegstream.Must(pegstream.Plus(pegstream.ChrRange('0', '9'))),
	))
	rule := pegstream.Must(pegstream.Or(pegstream.Literal("nope"), number))

	value, err := pegstream.ParseAll(rule, "1234")
	require.NoError(t, err)

	var digits []rune
	for _, iter := range value {
		digits = append(digits, iter.(pegstream.ResultTuple)[0].(rune))
	}
	assert.Equal(t, "1234", string(digits))
}
