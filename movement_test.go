package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutMovementColumns(t *testing.T) {
	rdr := Renderer{Width: 800, Height: 600}
	ch := WorkItemMovement{
		Columns: []string{"Draft", "In Progress", "Done"},
	}
	lay := rdr.layoutMovement(&ch)
	assert.Len(t, lay.Columns, 3)

	m := charMeasurer{}
	assert.InDelta(t, 20+m.TextWidth("Draft", 16)/2, lay.Columns[0], 1e-9)
	assert.InDelta(t, 800-20-m.TextWidth("Done", 16)/2, lay.Columns[2], 1e-9)
	assert.InDelta(t, (lay.Columns[0]+lay.Columns[2])/2, lay.Columns[1], 1e-9)
	for i := 1; i < len(lay.Columns); i++ {
		assert.Greater(t, lay.Columns[i], lay.Columns[i-1])
	}
}

func TestLayoutMovementSingleColumn(t *testing.T) {
	rdr := Renderer{Width: 640, Height: 600}
	ch := WorkItemMovement{
		Columns: []string{"Done"},
	}
	lay := rdr.layoutMovement(&ch)
	assert.Equal(t, []float64{320}, lay.Columns)
}

func TestLayoutMovementRows(t *testing.T) {
	rdr := Renderer{Width: 800, Height: 600}
	ch := WorkItemMovement{
		Columns: []string{"Draft", "Done"},
		Items: []WorkItem{
			{ID: "PJ-1", FromState: "Draft", FromPoints: 1, ToState: "Done", ToPoints: 1},
			{ID: "PJ-2", FromState: "Done", FromPoints: 2, ToState: "Done", ToPoints: 5},
			{ID: "PJ-3", FromState: "Done", FromPoints: 3, ToState: "Draft", ToPoints: 3},
		},
	}
	lay := rdr.layoutMovement(&ch)
	top := lay.ItemsTop
	assert.Equal(t, []float64{top, top + 50, top + 50 + 130}, lay.Rows)

	// the second item stays in its column, its bottom circle sits a slot lower
	assert.InDelta(t, top+180, lay.Bottom, 1e-9)
	assert.InDelta(t, lay.Bottom+15+15+20, lay.Height, 1e-9)
}

func TestLayoutMovementEmptyItems(t *testing.T) {
	rdr := Renderer{Width: 800, Height: 600}
	ch := WorkItemMovement{
		Columns: []string{"Draft", "Done"},
	}
	lay := rdr.layoutMovement(&ch)
	assert.Empty(t, lay.Rows)
	assert.InDelta(t, lay.ItemsTop+20, lay.Height, 1e-9)
}

func TestItemLabel(t *testing.T) {
	up := WorkItem{ID: "PJ-1", FromPoints: 5, ToPoints: 8}
	assert.Equal(t, "PJ-1: +3", itemLabel(up))

	down := WorkItem{ID: "PJ-2", FromPoints: 8, ToPoints: 5}
	assert.Equal(t, "PJ-2: -3", itemLabel(down))

	flat := WorkItem{ID: "PJ-3", FromPoints: 3, ToPoints: 3}
	assert.Equal(t, "PJ-3", itemLabel(flat))
}

func TestMovementVertical(t *testing.T) {
	ch := WorkItemMovement{
		Columns: []string{"Draft", "Done"},
	}
	same := WorkItem{FromState: "done", ToState: "Done"}
	assert.True(t, movementVertical(&ch, same))

	across := WorkItem{FromState: "Draft", ToState: "Done"}
	assert.False(t, movementVertical(&ch, across))
}
