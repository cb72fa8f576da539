package pegstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenfold/pegstream"
)

func TestEOFMatchesEmptyInput(t *testing.T) {
	value, err := pegstream.ParseAll(pegstream.EOF(), "")
	require.NoError(t, err)
	assert.Equal(t, pegstream.ResultTuple{}, value)
}

func TestEOFFailsOnRemainingInput(t *testing.T) {
	_, err := pegstream.ParseAll(pegstream.EOF(), "x")
	require.Error(t, err)

	var perr *pegstream.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "x", perr.Got)
	assert.Contains(t, perr.Expected, "<EOF>")
}
