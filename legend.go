package sketch

import (
	"github.com/midbel/svg"
)

type legendConfig struct {
	FontSize   float64
	Family     string
	TextColor  string
	IconWidth  float64
	IconHeight float64
	IconGap    float64
	Spacing    float64
	Margin     float64
}

func defaultLegend(size float64) legendConfig {
	return legendConfig{
		FontSize:   size,
		IconWidth:  18,
		IconHeight: 18,
		IconGap:    4,
		Spacing:    22,
		Margin:     20,
	}
}

func legendWidth(m Measurer, labels []string, cfg legendConfig) float64 {
	var width float64
	for _, str := range labels {
		if w := m.TextWidth(str, cfg.FontSize); w > width {
			width = w
		}
	}
	return cfg.IconWidth + cfg.IconGap + width + cfg.Margin
}

func legendHeight(count int, cfg legendConfig) float64 {
	return float64(count) * cfg.Spacing
}

func drawLegend(labels, colors []string, left, top float64, cfg legendConfig) svg.Element {
	var grp svg.Group
	grp.Class = append(grp.Class, "legend")
	if cfg.TextColor != "" {
		grp.Fill = svg.NewFill(cfg.TextColor)
	}
	for i, str := range labels {
		var g svg.Group
		g.Transform = svg.Translate(left, top+float64(i)*cfg.Spacing)

		var ic svg.Rect
		ic.Dim = svg.NewDim(cfg.IconWidth, cfg.IconHeight)
		ic.Fill = svg.NewFill(colors[i%len(colors)])
		ic.Stroke = svg.NewStroke("black", 1)
		g.Append(ic.AsElement())

		tx := svg.NewText(str)
		tx.Pos = svg.NewPos(cfg.IconWidth+cfg.IconGap, cfg.IconHeight*0.75)
		tx.Font = getFont(cfg.FontSize, cfg.Family)
		g.Append(tx.AsElement())

		grp.Append(g.AsElement())
	}
	return grp.AsElement()
}
