package sketch

import (
	"fmt"
	"sort"

	"github.com/midbel/svg"
)

const (
	xyMargin       = 35.0
	xyTitleGap     = 20.0
	xyLegendGap    = 20.0
	xyLabelGap     = 10.0
	xyTitleLabels  = 12.0
	xyAxisTitle    = 20.0
	xyTickCount    = 11
	xyMinLabelGap  = 5.0
	xyBarRatio     = 0.8
	xyMarkerSquare = 4.0
	xyMarkerPoint  = 5.0
)

type xyLayout struct {
	Width          float64
	Height         float64
	ChartLeft      float64
	ChartTop       float64
	ChartWidth     float64
	ChartHeight    float64
	CategoryWidth  float64
	BarWidth       float64
	TitleHeight    float64
	LabelHeight    float64
	MaxYLabelWidth float64
	LegendWidth    float64
	Vertical       bool
	Style          xyStyle
	Legend         legendConfig
	Scale          NumberScale
	Ticks          []float64
}

func (l xyLayout) chartBottom() float64 {
	return l.ChartTop + l.ChartHeight
}

func (l xyLayout) chartRight() float64 {
	return l.ChartLeft + l.ChartWidth
}

func (l xyLayout) categoryCenter(i int) float64 {
	return l.ChartLeft + float64(i)*l.CategoryWidth + l.CategoryWidth/2
}

func (r Renderer) layoutXY(c *XYChart) xyLayout {
	var (
		m      = r.measurer()
		st     = xyStyleFrom(c.Config.vars())
		cfg    = defaultLegend(st.LegendFontSize)
		width  = c.Config.width(r.Width)
		height = r.Height
		domain = NewRange(c.YAxis.Min, c.YAxis.Max)
		ticks  = NumberScaler(domain, NewRange(0, 1)).Ticks(xyTickCount)
	)
	cfg.TextColor = inkColor
	cfg.Family = r.family()

	var legend float64
	var legendGap float64
	if len(c.Legend) > 0 {
		legend = legendWidth(m, c.Legend, cfg)
		legendGap = xyLegendGap
	}

	var titleH, titleGap float64
	if c.Title != "" {
		titleH = m.TextHeight(st.TitleFontSize)
		titleGap = xyTitleGap
	}

	var maxYLabel float64
	for _, v := range ticks {
		if w := m.TextWidth(fmt.Sprintf("%d", int(v)), st.LabelFontSize); w > maxYLabel {
			maxYLabel = w
		}
	}

	// the vertical-label decision runs on an estimate of the category width
	// before the legend and axis title space are known
	var (
		count     = len(c.XAxis.Labels)
		estimated = (width - xyMargin*2 - (maxYLabel + 35)) / float64(count)
		vertical  = false
		maxXLabel float64
	)
	for _, label := range c.XAxis.Labels {
		w := m.TextWidth(label, st.LabelFontSize)
		if w+xyMinLabelGap > estimated {
			vertical = true
		}
		if w > maxXLabel {
			maxXLabel = w
		}
	}

	ySpace := maxYLabel + xyLabelGap + xyTitleLabels + xyAxisTitle
	xSpace := 40.0
	if vertical {
		xSpace = maxXLabel + 20
	}

	var (
		chartWidth  = width - xyMargin*2 - ySpace - legend - legendGap
		chartHeight = height - xyMargin*2 - titleH - titleGap - xSpace
		chartLeft   = xyMargin + ySpace
		chartTop    = xyMargin + titleH + titleGap
	)
	return xyLayout{
		Width:          width,
		Height:         height,
		ChartLeft:      chartLeft,
		ChartTop:       chartTop,
		ChartWidth:     chartWidth,
		ChartHeight:    chartHeight,
		CategoryWidth:  chartWidth / float64(count),
		BarWidth:       (chartWidth / float64(count)) * xyBarRatio,
		TitleHeight:    titleH,
		LabelHeight:    m.TextHeight(st.LabelFontSize),
		MaxYLabelWidth: maxYLabel,
		LegendWidth:    legend,
		Vertical:       vertical,
		Style:          st,
		Legend:         cfg,
		Scale:          NumberScaler(domain, NewRange(chartTop+chartHeight, chartTop)),
		Ticks:          ticks,
	}
}

func (r Renderer) renderXY(c *XYChart) ([]svg.Element, float64, float64) {
	var (
		lay  = r.layoutXY(c)
		st   = lay.Style
		main = getBaseGroup("main")
		els  []svg.Element
	)
	if c.Title != "" {
		tg := getBaseGroup("chart-title")
		tg.Fill = svg.NewFill(inkColor)
		tx := r.getText(c.Title, lay.Width/2, xyMargin+lay.TitleHeight/2, st.TitleFontSize, "middle", "middle")
		tg.Append(tx.AsElement())
		main.Append(tg.AsElement())
	}

	plot := r.xyPlot(c, lay)
	bottom := r.xyBottomAxis(c, lay)
	left := r.xyLeftAxis(c, lay)
	main.Append(plot.AsElement())
	main.Append(bottom.AsElement())
	main.Append(left.AsElement())
	els = append(els, main.AsElement())

	if len(c.Legend) > 0 {
		colors := make([]string, len(c.Legend))
		for i := range c.Legend {
			colors[i] = r.seriesColor(st, i)
		}
		var (
			left = lay.Width - xyMargin - lay.LegendWidth
			top  = lay.ChartTop + lay.ChartHeight/2 - legendHeight(len(c.Legend), lay.Legend)/2
		)
		els = append(els, drawLegend(c.Legend, colors, left, top, lay.Legend))
	}
	return els, lay.Width, lay.Height
}

// xyPlot draws every bar series first, per category tallest to shortest so
// short bars stay visible, then every line series so lines are never hidden
// behind bars.
func (r Renderer) xyPlot(c *XYChart, lay xyLayout) svg.Group {
	grp := getBaseGroup("plot")
	count := len(c.XAxis.Labels)

	type bar struct {
		series int
		value  float64
	}
	for i := 0; i < count; i++ {
		var bars []bar
		for j, s := range c.Series {
			if s.Kind == Bar && i < len(s.Data) {
				bars = append(bars, bar{series: j, value: s.Data[i]})
			}
		}
		sort.SliceStable(bars, func(a, b int) bool {
			return bars[a].value > bars[b].value
		})
		for _, b := range bars {
			var (
				color = r.seriesColor(lay.Style, b.series)
				top   = lay.Scale.Scale(b.value)
				rec   svg.Rect
			)
			rec.Pos = svg.NewPos(lay.categoryCenter(i)-lay.BarWidth/2, top)
			rec.Dim = svg.NewDim(lay.BarWidth, lay.chartBottom()-top)
			rec.Fill = svg.NewFill(color)
			rec.Stroke = svg.NewStroke(color, 0)
			grp.Append(rec.AsElement())
		}
	}

	for j, s := range c.Series {
		if s.Kind != Line {
			continue
		}
		color := r.seriesColor(lay.Style, j)
		var pat svg.Path
		pat.Fill = svg.NewFill("none")
		pat.Stroke = svg.NewStroke(color, 2)
		if styleAt(lay.Style.Strokes, j) == "dashed" {
			pat.Stroke.DashArray = []int{5}
		}
		for i, v := range s.Data {
			if i >= count {
				break
			}
			pos := svg.NewPos(lay.categoryCenter(i), lay.Scale.Scale(v))
			if i == 0 {
				pat.AbsMoveTo(pos)
			} else {
				pat.AbsLineTo(pos)
			}
		}
		grp.Append(pat.AsElement())

		shape := styleAt(lay.Style.Points, j)
		if shape != "square" && shape != "diamond" {
			continue
		}
		for i, v := range s.Data {
			if i >= count {
				break
			}
			var (
				x = lay.categoryCenter(i)
				y = lay.Scale.Scale(v)
			)
			if shape == "square" {
				var rec svg.Rect
				rec.Pos = svg.NewPos(x-xyMarkerSquare, y-xyMarkerSquare)
				rec.Dim = svg.NewDim(xyMarkerSquare*2, xyMarkerSquare*2)
				rec.Fill = svg.NewFill(color)
				grp.Append(rec.AsElement())
			} else {
				grp.Append(getDiamond(x, y, xyMarkerPoint, color))
			}
		}
	}
	return grp
}

func (r Renderer) xyBottomAxis(c *XYChart, lay xyLayout) svg.Group {
	var (
		grp    = getBaseGroup("bottom-axis")
		labels = getBaseGroup("label")
		ticks  = getBaseGroup("ticks")
		bottom = lay.chartBottom()
		stroke = svg.NewStroke(inkColor, 2)
	)
	grp.Append(getLine(lay.ChartLeft, bottom, lay.chartRight(), bottom, stroke))

	labels.Fill = svg.NewFill(inkColor)
	for i, label := range c.XAxis.Labels {
		x := lay.categoryCenter(i)
		if lay.Vertical {
			y := bottom + 10 + lay.LabelHeight/2
			var g svg.Group
			g.Transform.RA = -90
			g.Transform.RX = x
			g.Transform.RY = y
			tx := r.getText(label, x, y, lay.Style.LabelFontSize, "end", "middle")
			g.Append(tx.AsElement())
			labels.Append(g.AsElement())
		} else {
			tx := r.getText(label, x, bottom+20, lay.Style.LabelFontSize, "middle", "text-before-edge")
			labels.Append(tx.AsElement())
		}
		ticks.Append(getLine(x, bottom+1, x, bottom+6, stroke))
	}
	grp.Append(labels.AsElement())
	grp.Append(ticks.AsElement())
	return grp
}

func (r Renderer) xyLeftAxis(c *XYChart, lay xyLayout) svg.Group {
	var (
		grp    = getBaseGroup("left-axis")
		labels = getBaseGroup("label")
		ticks  = getBaseGroup("ticks")
		stroke = svg.NewStroke(inkColor, 2)
	)
	grp.Append(getLine(lay.ChartLeft, lay.ChartTop, lay.ChartLeft, lay.chartBottom(), stroke))

	labels.Fill = svg.NewFill(inkColor)
	step := lay.ChartHeight / float64(xyTickCount-1)
	for i, v := range lay.Ticks {
		y := lay.ChartTop + float64(i)*step
		tx := r.getText(fmt.Sprintf("%d", int(v)), lay.ChartLeft-xyLabelGap, y, lay.Style.LabelFontSize, "end", "middle")
		labels.Append(tx.AsElement())
		ticks.Append(getLine(lay.ChartLeft-1, y, lay.ChartLeft-6, y, stroke))
	}
	grp.Append(labels.AsElement())
	grp.Append(ticks.AsElement())

	// the axis title sits left of the widest tick label, rotated upright
	var (
		x = lay.ChartLeft - xyLabelGap - lay.MaxYLabelWidth - xyTitleLabels
		y = lay.ChartTop + lay.ChartHeight/2
		g = getBaseGroup("title")
	)
	g.Fill = svg.NewFill(inkColor)
	g.Transform.RA = 270
	g.Transform.RX = x
	g.Transform.RY = y
	tx := r.getText(c.YAxis.Title, x, y, lay.Style.AxisTitleFontSize, "middle", "text-after-edge")
	g.Append(tx.AsElement())
	grp.Append(g.AsElement())
	return grp
}

func (r Renderer) seriesColor(st xyStyle, i int) string {
	if i < len(st.Palette) {
		return st.Palette[i]
	}
	pal := r.palette(Plot10)
	return pal[i%len(pal)]
}

func getDiamond(x, y, size float64, fill string) svg.Element {
	var pat svg.Path
	pat.Fill = svg.NewFill(fill)
	pat.AbsMoveTo(svg.NewPos(x, y-size))
	pat.AbsLineTo(svg.NewPos(x+size, y))
	pat.AbsLineTo(svg.NewPos(x, y+size))
	pat.AbsLineTo(svg.NewPos(x-size, y))
	pat.ClosePath()
	return pat.AsElement()
}
