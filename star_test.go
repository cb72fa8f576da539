package pegstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfold/pegstream"
)

func TestStarMatchesEmptyInput(t *testing.T) {
	rule := pegstream.Must(pegstream.Star(pegstream.ChrRange('0', '9')))
	value, err := pegstream.ParseAll(rule, "")
	require.NoError(t, err)
	assert.Equal(t, pegstream.ResultTuple{}, value)
}

func TestStarMatchesManyRepetitions(t *testing.T) {
	rule := pegstream.Must(pegstream.Star(pegstream.Literal("!")))
	value, err := pegstream.ParseAll(rule, "!!!")
	require.NoError(t, err)
	assert.Len(t, value, 3)
}
