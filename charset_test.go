package pegstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfold/pegstream"
)

func TestCharInMatchesSetMember(t *testing.T) {
	value, err := pegstream.ParseAll(pegstream.CharIn("rnt"), "n")
	require.NoError(t, err)
	assert.Equal(t, pegstream.ResultTuple{'n'}, value)
}

func TestCharInRejectsNonMember(t *testing.T) {
	_, err := pegstream.ParseAll(pegstream.CharIn("rnt"), "x")
	require.Error(t, err)
}

func TestCharNotInRejectsSetMember(t *testing.T) {
	_, err := pegstream.ParseAll(pegstream.CharNotIn("\\\""), "\"")
	require.Error(t, err)
}

func TestCharNotInMatchesNonMember(t *testing.T) {
	value, err := pegstream.ParseAll(pegstream.CharNotIn("\\\""), "x")
	require.NoError(t, err)
	assert.Equal(t, pegstream.ResultTuple{'x'}, value)
}

func TestCharNotInRejectsEOF(t *testing.T) {
	_, err := pegstream.ParseAny(pegstream.CharNotIn("x"), "")
	require.Error(t, err)
}
