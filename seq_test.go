package pegstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfold/pegstream"
)

func TestSeqConcatenatesChildResults(t *testing.T) {
	rule := pegstream.Must(pegstream.Seq(pegstream.Literal("foo"), pegstream.Literal("bar")))
	value, err := pegstream.ParseAll(rule, "foobar")
	require.NoError(t, err)
	assert.Equal(t, pegstream.ResultTuple{"foo", "bar"}, value)
}

func TestSeqFailsWithoutBacktrackingIntoEarlierChildren(t *testing.T) {
	rule := pegstream.Must(pegstream.Seq(pegstream.Literal("foo"), pegstream.Literal("bar")))
	_, err := pegstream.ParseAll(rule, "foobaz")
	require.Error(t, err)
}

func TestSeqRejectsEmptyChildList(t *testing.T) {
	_, err := pegstream.Seq()
	require.Error(t, err)

	var empty *pegstream.EmptyRuleError
	require.ErrorAs(t, err, &empty)
}

func TestSeqPropagatesBadRuleErrors(t *testing.T) {
	_, err := pegstream.Seq(42)
	require.Error(t, err)

	var bad *pegstream.BadRuleError
	require.ErrorAs(t, err, &bad)
}

func TestSeqHonorsReconsumeBetweenChildren(t *testing.T) {
	// Opt(",") always reconsumes on the zero-match branch, so the digit
	// that follows must still be observed by the next child.
	rule := pegstream.Must(pegstream.Seq(
		pegstream.Must(pegstream.Opt(",")),
		pegstream.ChrRange('0', '9'),
	))
	value, err := pegstream.ParseAll(rule, "7")
	require.NoError(t, err)
	assert.Equal(t, pegstream.ResultTuple{'7'}, value)
}
