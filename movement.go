package sketch

import (
	"fmt"
	"strconv"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const (
	mvMargin        = 20.0
	mvTitleSize     = 20.0
	mvColumnSize    = 16.0
	mvItemSize      = 14.0
	mvCircleSize    = 16.0
	mvColumnHeight  = 40.0
	mvItemHeight    = 50.0
	mvCircleRadius  = 15.0
	mvArrowSize     = 12.0
	mvLabelOffset   = 5.0
	mvLineExtension = 15.0
	mvVerticalSpan  = 80.0
)

type movementLayout struct {
	Width       float64
	Height      float64
	TitleHeight float64
	ContentTop  float64
	ItemsTop    float64
	Columns     []float64
	Rows        []float64
	Bottom      float64
}

// layoutMovement pins the first and last guide lines a half label width from
// the canvas edges and spreads the rest evenly between them. Item rows advance
// a taller slot for same-column movements, and the replayed cursor gives both
// the guide line extent and the final canvas height.
func (r Renderer) layoutMovement(c *WorkItemMovement) movementLayout {
	var (
		m     = r.measurer()
		width = c.Config.width(r.Width)
	)
	var titleH, titleGap float64
	if c.Title != "" {
		titleH = m.TextHeight(mvTitleSize)
		titleGap = 20.0
	}

	widths := make([]float64, len(c.Columns))
	for i, col := range c.Columns {
		widths[i] = m.TextWidth(col, mvColumnSize)
	}
	positions := make([]float64, len(c.Columns))
	if n := len(c.Columns); n == 1 {
		positions[0] = width / 2
	} else if n > 1 {
		var (
			first = mvMargin + slices.Fst(widths)/2
			last  = width - mvMargin - slices.Lst(widths)/2
			space = (last - first) / float64(n-1)
		)
		positions[0] = first
		positions[n-1] = last
		for i := 1; i < n-1; i++ {
			positions[i] = first + float64(i)*space
		}
	}

	var (
		contentTop = mvMargin + titleH + titleGap
		itemsTop   = contentTop + mvColumnHeight + 20
		cursor     = itemsTop
		rows       = make([]float64, len(c.Items))
		bottom     = itemsTop
	)
	for i, item := range c.Items {
		rows[i] = cursor
		bottom = cursor
		if movementVertical(c, item) {
			bottom += mvVerticalSpan
			cursor += mvVerticalSpan
		}
		cursor += mvItemHeight
	}

	height := itemsTop + mvMargin
	if len(c.Items) > 0 {
		height = bottom + mvCircleRadius + mvLineExtension + mvMargin
	}
	return movementLayout{
		Width:       width,
		Height:      height,
		TitleHeight: titleH,
		ContentTop:  contentTop,
		ItemsTop:    itemsTop,
		Columns:     positions,
		Rows:        rows,
		Bottom:      bottom,
	}
}

func movementVertical(c *WorkItemMovement, item WorkItem) bool {
	return movementColumn(c, item.FromState) == movementColumn(c, item.ToState)
}

func movementColumn(c *WorkItemMovement, state string) int {
	if i := columnIndex(c.Columns, state); i >= 0 {
		return i
	}
	return 0
}

func (r Renderer) renderMovement(c *WorkItemMovement) ([]svg.Element, float64, float64) {
	var (
		lay  = r.layoutMovement(c)
		main = getBaseGroup("main")
	)
	main.Fill = svg.NewFill(inkColor)

	if c.Title != "" {
		tx := r.getText(c.Title, lay.Width/2, mvMargin+lay.TitleHeight/2, mvTitleSize, "middle", "middle")
		main.Append(tx.AsElement())
	}

	var (
		guide = svg.NewStroke(guideColor, 1)
		top   = lay.ItemsTop - mvCircleRadius - mvLineExtension
		end   = lay.Bottom + mvCircleRadius + mvLineExtension
	)
	for i, col := range c.Columns {
		x := lay.Columns[i]
		tx := r.getText(col, x, lay.ContentTop+mvColumnHeight/2, mvColumnSize, "middle", "auto")
		main.Append(tx.AsElement())
		main.Append(getLine(x, top, x, end, guide))
	}

	for i, item := range c.Items {
		y := lay.Rows[i]
		if movementVertical(c, item) {
			r.drawVerticalItem(&main, c, lay, item, y)
		} else {
			r.drawHorizontalItem(&main, c, lay, item, y)
		}
	}
	return []svg.Element{main.AsElement()}, lay.Width, lay.Height
}

func (r Renderer) drawVerticalItem(main *svg.Group, c *WorkItemMovement, lay movementLayout, item WorkItem, y float64) {
	var (
		x    = lay.Columns[movementColumn(c, item.FromState)]
		endY = y + mvVerticalSpan
	)
	main.Append(r.itemCircle(x, y, item.FromPoints))
	main.Append(r.itemCircle(x, endY, item.ToPoints))
	main.Append(getLine(x, y+mvCircleRadius, x, endY-mvCircleRadius-mvArrowSize, svg.NewStroke(inkColor, 1)))

	tip := endY - mvCircleRadius
	main.Append(getTriangle(
		svg.NewPos(x, tip),
		svg.NewPos(x-mvArrowSize/2, tip-mvArrowSize),
		svg.NewPos(x+mvArrowSize/2, tip-mvArrowSize),
		inkColor,
	))

	var (
		label  = itemLabel(item)
		labelY = (y + endY) / 2
		last   = movementColumn(c, item.FromState) == len(c.Columns)-1
	)
	if last {
		tx := r.getText(label, x-mvLabelOffset, labelY, mvItemSize, "end", "middle")
		main.Append(tx.AsElement())
	} else {
		tx := r.getText(label, x+mvLabelOffset, labelY, mvItemSize, "start", "middle")
		main.Append(tx.AsElement())
	}
}

func (r Renderer) drawHorizontalItem(main *svg.Group, c *WorkItemMovement, lay movementLayout, item WorkItem, y float64) {
	var (
		fromIdx = movementColumn(c, item.FromState)
		toIdx   = movementColumn(c, item.ToState)
		fromX   = lay.Columns[fromIdx]
		toX     = lay.Columns[toIdx]
	)
	main.Append(r.itemCircle(fromX, y, item.FromPoints))
	main.Append(r.itemCircle(toX, y, item.ToPoints))

	var startX, endX, tip float64
	if fromIdx < toIdx {
		startX = fromX + mvCircleRadius
		endX = toX - mvCircleRadius - mvArrowSize
		tip = toX - mvCircleRadius
		main.Append(getTriangle(
			svg.NewPos(tip, y),
			svg.NewPos(tip-mvArrowSize, y-mvArrowSize/2),
			svg.NewPos(tip-mvArrowSize, y+mvArrowSize/2),
			inkColor,
		))
	} else {
		startX = fromX - mvCircleRadius
		endX = toX + mvCircleRadius + mvArrowSize
		tip = toX + mvCircleRadius
		main.Append(getTriangle(
			svg.NewPos(tip, y),
			svg.NewPos(tip+mvArrowSize, y-mvArrowSize/2),
			svg.NewPos(tip+mvArrowSize, y+mvArrowSize/2),
			inkColor,
		))
	}
	main.Append(getLine(startX, y, endX, y, svg.NewStroke(inkColor, 1)))

	tx := r.getText(itemLabel(item), (fromX+toX)/2, y-mvLabelOffset, mvItemSize, "middle", "text-after-edge")
	main.Append(tx.AsElement())
}

func (r Renderer) itemCircle(x, y float64, points int) svg.Element {
	var grp svg.Group
	var ci svg.Circle
	ci.Pos = svg.NewPos(x, y)
	ci.Radius = mvCircleRadius
	ci.Fill = svg.NewFill(inkColor)
	grp.Append(ci.AsElement())

	var tg svg.Group
	tg.Fill = svg.NewFill("white")
	tx := r.getText(strconv.Itoa(points), x, y, mvCircleSize, "middle", "middle")
	tg.Append(tx.AsElement())
	grp.Append(tg.AsElement())
	return grp.AsElement()
}

func itemLabel(item WorkItem) string {
	label := item.ID
	if delta := item.PointsChange(); delta != 0 {
		label = fmt.Sprintf("%s: %+d", label, delta)
	}
	return label
}
