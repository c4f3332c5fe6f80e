package sketch

// Theme-variable defaults live here; layout code reads styling only through
// the *StyleFrom constructors so that overrides and defaults compose in one
// lookup path.

const (
	inkColor   = "#131300"
	guideColor = "#e0e0e0"
)

type pieStyle struct {
	Opacity          float64
	StrokeColor      string
	StrokeWidth      float64
	OuterStrokeColor string
	OuterStrokeWidth float64
	SectionTextColor string
	SectionTextSize  float64
	TitleTextColor   string
	TitleTextSize    float64
	LegendTextColor  string
	LegendTextSize   float64
}

func pieStyleFrom(v Variables) pieStyle {
	return pieStyle{
		Opacity:          v.Float("pieOpacity", 0.7),
		StrokeColor:      v.Get("pieStrokeColor", "black"),
		StrokeWidth:      v.Size("pieStrokeWidth", 2),
		OuterStrokeColor: v.Get("pieOuterStrokeColor", "black"),
		OuterStrokeWidth: v.Size("pieOuterStrokeWidth", 2),
		SectionTextColor: v.Get("pieSectionTextColor", "black"),
		SectionTextSize:  v.Size("pieSectionTextSize", 17),
		TitleTextColor:   v.Get("pieTitleTextColor", "black"),
		TitleTextSize:    v.Size("pieTitleTextSize", 25),
		LegendTextColor:  v.Get("pieLegendTextColor", "black"),
		LegendTextSize:   v.Size("pieLegendTextSize", 17),
	}
}

type xyStyle struct {
	TitleFontSize     float64
	LabelFontSize     float64
	AxisTitleFontSize float64
	LegendFontSize    float64
	Palette           []string
	Strokes           []string
	Points            []string
}

func xyStyleFrom(v Variables) xyStyle {
	return xyStyle{
		TitleFontSize:     v.Size("xyChart.titleFontSize", 20),
		LabelFontSize:     v.Size("xyChart.labelFontSize", 16),
		AxisTitleFontSize: 16,
		LegendFontSize:    v.Size("xyChart.legendFontSize", 17),
		Palette:           v.List("xyChart.plotColorPalette"),
		Strokes:           v.List("xyChart.strokeStyles"),
		Points:            v.List("xyChart.plotPoints"),
	}
}

func styleAt(list []string, i int) string {
	if i < len(list) {
		return list[i]
	}
	return ""
}
