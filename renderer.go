package sketch

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/midbel/svg"
)

const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultFamily = "Liberation Sans"
)

// Renderer turns parsed charts into a vector document. Width and Height are
// the requested canvas size; a width override in the chart config wins over
// Width, and each layout may grow or clamp the height as its geometry
// requires. Palette, when set, replaces the built-in color palettes.
type Renderer struct {
	Width    float64
	Height   float64
	Family   string
	Measurer Measurer
	Palette  []string
}

// Render lays out the chart, assembles the document and writes its serialized
// form. It returns the final canvas size, which rasterization needs.
func (r Renderer) Render(w io.Writer, ch Chart) (float64, float64, error) {
	if r.Width <= 0 {
		r.Width = DefaultWidth
	}
	if r.Height <= 0 {
		r.Height = DefaultHeight
	}
	var (
		els    []svg.Element
		width  float64
		height float64
	)
	switch c := ch.(type) {
	case *PieChart:
		els, width, height = r.renderPie(c)
	case *XYChart:
		els, width, height = r.renderXY(c)
	case *WorkItemMovement:
		els, width, height = r.renderMovement(c)
	default:
		return 0, 0, fmt.Errorf("%T: unsupported chart type", ch)
	}
	doc := svg.NewSVG()
	doc.Dim = svg.NewDim(width, height)
	doc.OmitProlog = true
	doc.Append(getBackground(width, height))
	for i := range els {
		doc.Append(els[i])
	}
	bw := bufio.NewWriter(w)
	doc.Render(bw)
	return width, height, bw.Flush()
}

func (r Renderer) measurer() Measurer {
	if r.Measurer == nil {
		return charMeasurer{}
	}
	return r.Measurer
}

func (r Renderer) palette(alt []string) []string {
	if len(r.Palette) > 0 {
		return r.Palette
	}
	return alt
}

func (r Renderer) family() string {
	if r.Family == "" {
		return DefaultFamily
	}
	return r.Family
}

func (r Renderer) getText(str string, x, y, size float64, anchor, baseline string) svg.Text {
	tx := svg.NewText(str)
	tx.Pos = svg.NewPos(x, y)
	tx.Font = getFont(size, r.family())
	tx.Anchor = anchor
	tx.Baseline = baseline
	return tx
}

func getFont(size float64, family string) svg.Font {
	if family == "" {
		return svg.NewFont(size)
	}
	return svg.NewFont(size, family)
}

func getLine(x1, y1, x2, y2 float64, stroke svg.Stroke) svg.Element {
	li := svg.NewLine(svg.NewPos(x1, y1), svg.NewPos(x2, y2))
	li.Stroke = stroke
	return li.AsElement()
}

func getBackground(width, height float64) svg.Element {
	var el svg.Rect
	el.Dim = svg.NewDim(width, height)
	el.Fill = svg.NewFill("white")
	return el.AsElement()
}

func getBaseGroup(class ...string) svg.Group {
	var g svg.Group
	g.Class = class
	return g
}

// getTriangle fills the triangle p1-p2-p3, used for arrow heads and diamond
// halves alike.
func getTriangle(p1, p2, p3 svg.Pos, fill string) svg.Element {
	var pat svg.Path
	pat.Fill = svg.NewFill(fill)
	pat.AbsMoveTo(p1)
	pat.AbsLineTo(p2)
	pat.AbsLineTo(p3)
	pat.ClosePath()
	return pat.AsElement()
}

func getPosFromAngle(angle, radius float64) svg.Pos {
	var (
		x = radius * math.Cos(angle)
		y = radius * math.Sin(angle)
	)
	return svg.NewPos(x, y)
}
