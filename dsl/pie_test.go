package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePie(t *testing.T) {
	input := `pie showData title Pets adopted by volunteers
    "Dogs": 386
    "Cats": 85.9
    "Rats": 15
`
	ch, err := parsePie(input)
	require.NoError(t, err)
	assert.True(t, ch.ShowData)
	assert.Equal(t, "Pets adopted by volunteers", ch.Title)
	require.Len(t, ch.Data, 3)
	assert.Equal(t, "Dogs", ch.Data[0].Label)
	assert.Equal(t, 386.0, ch.Data[0].Value)
	assert.Equal(t, 85.9, ch.Data[1].Value)
	assert.Equal(t, "Rats", ch.Data[2].Label)
}

func TestParsePieBare(t *testing.T) {
	ch, err := parsePie("pie\n")
	require.NoError(t, err)
	assert.False(t, ch.ShowData)
	assert.Empty(t, ch.Title)
	assert.Empty(t, ch.Data)
}

func TestParsePieNoTitle(t *testing.T) {
	ch, err := parsePie("pie\n  \"Only\": 100\n")
	require.NoError(t, err)
	require.Len(t, ch.Data, 1)
	assert.Equal(t, "Only", ch.Data[0].Label)
}

func TestParsePieBadEntry(t *testing.T) {
	_, err := parsePie("pie\n  \"Dogs\": 386\n  Cats: 85\n")
	require.Error(t, err)

	var perr ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Remaining, "Cats: 85")
}
