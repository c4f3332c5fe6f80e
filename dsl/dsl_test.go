package dsl

import (
	"testing"

	"github.com/midbel/sketch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	kind, _, err := Detect("  \n work-item-movement\ncolumns [Done]\n")
	require.NoError(t, err)
	assert.Equal(t, KindMovement, kind)

	kind, _, err = Detect("xychart-beta\n")
	require.NoError(t, err)
	assert.Equal(t, KindXY, kind)

	kind, rest, err := Detect("pie showData\n")
	require.NoError(t, err)
	assert.Equal(t, KindPie, kind)
	assert.Equal(t, "pie showData\n", rest)
}

func TestDetectUnknown(t *testing.T) {
	_, _, err := Detect("flowchart TD\n")
	assert.ErrorIs(t, err, ErrUnknownChart)
}

func TestParsePieDocument(t *testing.T) {
	input := `%%{init: {'theme': 'base', 'width': 400, 'themeVariables': {'pie1': '#ff0000'}}}%%
pie showData title Pets
    "Dogs": 386
    "Cats": 85
`
	ch, err := Parse(input)
	require.NoError(t, err)

	pie, ok := ch.(*sketch.PieChart)
	require.True(t, ok)
	require.NotNil(t, pie.Config)
	assert.Equal(t, 400, pie.Config.Width)
	assert.Equal(t, "#ff0000", pie.Config.Variables["pie1"])
	assert.True(t, pie.ShowData)
	assert.Len(t, pie.Data, 2)
}

func TestParseWithoutConfig(t *testing.T) {
	ch, err := Parse("pie\n  \"Only\": 100\n")
	require.NoError(t, err)

	pie, ok := ch.(*sketch.PieChart)
	require.True(t, ok)
	assert.Nil(t, pie.Config)
}

func TestParseMovementDocument(t *testing.T) {
	input := `work-item-movement
  title 'Sprint 12'
  columns [Draft, Done]
  AB-1 draft: 1 -> DONE: 2
`
	ch, err := Parse(input)
	require.NoError(t, err)

	mv, ok := ch.(*sketch.WorkItemMovement)
	require.True(t, ok)
	assert.Equal(t, "Sprint 12", mv.Title)
	require.Len(t, mv.Items, 1)
}

func TestParseMovementValidation(t *testing.T) {
	input := "work-item-movement\ncolumns [Draft, Done]\nAB-1 Archived: 1 -> Done: 2\n"
	_, err := Parse(input)
	require.Error(t, err)

	var verr sketch.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "AB-1", verr.Item)
	assert.Equal(t, "Archived", verr.State)
}

func TestParseMissingNewline(t *testing.T) {
	ch, err := Parse(`pie title Pets`)
	require.NoError(t, err)

	pie, ok := ch.(*sketch.PieChart)
	require.True(t, ok)
	assert.Equal(t, "Pets", pie.Title)
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("sequenceDiagram\n")
	assert.ErrorIs(t, err, ErrUnknownChart)
}
