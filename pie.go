package sketch

import (
	"fmt"
	"math"
	"strconv"

	"github.com/midbel/svg"
)

const (
	pieSideMargin     = 30.0
	pieVerticalMargin = 35.0
	pieLegendGap      = 20.0
	pieTitleGap       = 20.0
	pieTitleOffset    = 30.0
	pieLabelRadius    = 0.75
	pieRadiusRatio    = 0.9
)

type pieLayout struct {
	Width       float64
	Height      float64
	Radius      float64
	CenterX     float64
	CenterY     float64
	LegendWidth float64
	LegendLeft  float64
	LegendTop   float64
	TitleHeight float64
	Style       pieStyle
	Legend      legendConfig
	Labels      []string
}

// layoutPie sizes the chart in two phases: legend and title space first, from
// text metrics, then the radius from what remains of the requested canvas.
// The height grows to fit the content unless it would exceed the requested
// height, in which case the radius is clamped instead.
func (r Renderer) layoutPie(c *PieChart) pieLayout {
	var (
		m      = r.measurer()
		st     = pieStyleFrom(c.Config.vars())
		cfg    = defaultLegend(st.LegendTextSize)
		width  = c.Config.width(r.Width)
		labels = make([]string, len(c.Data))
	)
	for i, d := range c.Data {
		labels[i] = fmt.Sprintf("%s [%s]", d.Label, strconv.FormatFloat(d.Value, 'f', -1, 64))
	}
	var (
		legend     = legendWidth(m, labels, cfg)
		titleH     float64
		titleGap   float64
		availWidth = width - pieSideMargin*2 - legend - pieLegendGap
		radius     = (availWidth / 2) * pieRadiusRatio
	)
	cfg.TextColor = st.LegendTextColor
	cfg.Family = r.family()
	if c.Title != "" {
		titleH = m.TextHeight(st.TitleTextSize)
		titleGap = pieTitleGap
	}
	var (
		stacked = legendHeight(len(c.Data), cfg)
		content = math.Max(radius*2, stacked)
		optimal = pieVerticalMargin*2 + titleH + titleGap + content
		height  = optimal
	)
	if optimal > r.Height {
		availHeight := r.Height - pieVerticalMargin*2 - titleH - titleGap
		radius = math.Min(availWidth/2, availHeight/2) * pieRadiusRatio
		height = r.Height
	}
	content = math.Max(radius*2, stacked)
	centerY := pieVerticalMargin + titleH + titleGap + content/2
	return pieLayout{
		Width:       width,
		Height:      height,
		Radius:      radius,
		CenterX:     pieSideMargin + availWidth/2,
		CenterY:     centerY,
		LegendWidth: legend,
		LegendLeft:  width - pieSideMargin - legend,
		LegendTop:   centerY - stacked/2,
		TitleHeight: titleH,
		Style:       st,
		Legend:      cfg,
		Labels:      labels,
	}
}

// pieSpans returns the angular span of each slice. A zero or negative total
// yields no spans so that nothing is drawn and nothing divides by zero.
func pieSpans(data []PieSlice) []float64 {
	var total float64
	for _, d := range data {
		total += d.Value
	}
	if total <= 0 {
		return nil
	}
	spans := make([]float64, len(data))
	for i, d := range data {
		spans[i] = (d.Value / total) * 2 * math.Pi
	}
	return spans
}

func (r Renderer) renderPie(c *PieChart) ([]svg.Element, float64, float64) {
	var (
		lay = r.layoutPie(c)
		st  = lay.Style
		grp svg.Group
		els []svg.Element
	)
	grp.Transform = svg.Translate(lay.CenterX, lay.CenterY)

	var (
		angle = -math.Pi / 2
		total = c.Total()
	)
	for i, span := range pieSpans(c.Data) {
		pat := slicePath(lay.Radius, angle, angle+span)
		pat.Fill = svg.NewFill(r.sliceColor(c, i))
		pat.Fill.Opacity = st.Opacity
		pat.Stroke = svg.NewStroke(st.StrokeColor, st.StrokeWidth)
		grp.Append(pat.AsElement())

		angle += span
	}

	if c.ShowData && total > 0 {
		sec := getBaseGroup("pie-labels")
		sec.Fill = svg.NewFill(st.SectionTextColor)
		angle = -math.Pi / 2
		for i, span := range pieSpans(c.Data) {
			var (
				mid = angle + span/2
				pos = getPosFromAngle(mid, lay.Radius*pieLabelRadius)
				pct = math.Round((c.Data[i].Value / total) * 100)
			)
			tx := r.getText(fmt.Sprintf("%.0f%%", pct), pos.X, pos.Y, st.SectionTextSize, "middle", "middle")
			sec.Append(tx.AsElement())
			angle += span
		}
		grp.Append(sec.AsElement())
	}

	// outer circle drawn last to cover the slice strokes
	var ci svg.Circle
	ci.Radius = lay.Radius
	ci.Fill = svg.NewFill("none")
	ci.Stroke = svg.NewStroke(st.OuterStrokeColor, st.OuterStrokeWidth)
	grp.Append(ci.AsElement())

	if c.Title != "" {
		tg := getBaseGroup("pie-title")
		tg.Fill = svg.NewFill(st.TitleTextColor)
		tx := r.getText(c.Title, 0, -lay.Radius-pieTitleOffset, st.TitleTextSize, "middle", "auto")
		tg.Append(tx.AsElement())
		grp.Append(tg.AsElement())
	}
	els = append(els, grp.AsElement())

	if len(c.Data) > 0 {
		colors := make([]string, len(c.Data))
		for i := range c.Data {
			colors[i] = r.sliceColor(c, i)
		}
		els = append(els, drawLegend(lay.Labels, colors, lay.LegendLeft, lay.LegendTop, lay.Legend))
	}
	return els, lay.Width, lay.Height
}

func slicePath(radius, from, to float64) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.AbsMoveTo(getPosFromAngle(from, radius))
	pat.AbsArcTo(getPosFromAngle(to, radius), radius, radius, 0, to-from > math.Pi, true)
	pat.AbsLineTo(svg.NewPos(0, 0))
	pat.ClosePath()
	return pat
}

func (r Renderer) sliceColor(c *PieChart, i int) string {
	key := fmt.Sprintf("pie%d", i+1)
	if s, ok := c.Config.vars()[key]; ok && s != "" {
		return s
	}
	pal := r.palette(Category10)
	return pal[i%len(pal)]
}
