package sketch

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPie(t *testing.T) {
	rdr := Renderer{Width: 800, Height: 600}
	ch := PieChart{
		ShowData: true,
		Title:    "Pets",
		Data: []PieSlice{
			{Label: "Dogs", Value: 386},
			{Label: "Cats", Value: 85},
		},
	}
	var buf bytes.Buffer
	width, height, err := rdr.Render(&buf, &ch)
	require.NoError(t, err)
	assert.Equal(t, 800.0, width)
	assert.Greater(t, height, 0.0)
	assert.True(t, strings.Contains(buf.String(), "svg"))
}

func TestRenderXY(t *testing.T) {
	rdr := Renderer{Width: 800, Height: 600}
	ch := XYChart{
		Title:  "Sales",
		Legend: []string{"Revenue"},
		XAxis:  XAxis{Labels: []string{"jan", "feb"}},
		YAxis:  YAxis{Title: "Revenue", Min: 0, Max: 100},
		Series: []Series{
			{Kind: Bar, Data: []float64{40, 60}},
			{Kind: Line, Data: []float64{50, 70}},
		},
	}
	var buf bytes.Buffer
	width, height, err := rdr.Render(&buf, &ch)
	require.NoError(t, err)
	assert.Equal(t, 800.0, width)
	assert.Equal(t, 600.0, height)
	assert.NotZero(t, buf.Len())
}

func TestRenderMovement(t *testing.T) {
	rdr := Renderer{Width: 800, Height: 600}
	ch := WorkItemMovement{
		Title:   "Sprint",
		Columns: []string{"Draft", "Done"},
		Items: []WorkItem{
			{ID: "AB-1", FromState: "Draft", FromPoints: 1, ToState: "Done", ToPoints: 3},
			{ID: "AB-2", FromState: "Done", FromPoints: 2, ToState: "Done", ToPoints: 5},
		},
	}
	var buf bytes.Buffer
	width, height, err := rdr.Render(&buf, &ch)
	require.NoError(t, err)
	assert.Equal(t, 800.0, width)
	assert.Greater(t, height, 0.0)
	assert.NotZero(t, buf.Len())
}

func TestRenderDefaults(t *testing.T) {
	var rdr Renderer
	ch := PieChart{
		Data: []PieSlice{{Label: "Only", Value: 100}},
	}
	var buf bytes.Buffer
	width, _, err := rdr.Render(&buf, &ch)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, width)
}

func TestRenderFontFamily(t *testing.T) {
	rdr := Renderer{Width: 800, Height: 600, Family: "DejaVu Sans"}
	ch := PieChart{
		Title: "Pets",
		Data:  []PieSlice{{Label: "Only", Value: 100}},
	}
	var buf bytes.Buffer
	_, _, err := rdr.Render(&buf, &ch)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "font-family")
	assert.Contains(t, buf.String(), "DejaVu Sans")

	var def Renderer
	buf.Reset()
	_, _, err = def.Render(&buf, &ch)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), DefaultFamily)
}

func TestRenderWidthOverride(t *testing.T) {
	rdr := Renderer{Width: 800, Height: 600}
	ch := PieChart{
		Config: &ChartConfig{Width: 400},
		Data:   []PieSlice{{Label: "Only", Value: 100}},
	}
	var buf bytes.Buffer
	width, _, err := rdr.Render(&buf, &ch)
	require.NoError(t, err)
	assert.Equal(t, 400.0, width)
}
