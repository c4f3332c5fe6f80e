package dsl

import (
	"github.com/midbel/sketch"
)

// parseXY reads the xy dialect: keyword, optional quoted title, optional
// legend list, a required x-axis label list, a required y-axis declaration
// and any number of series lines. A series keyword other than bar or line
// falls back to bar.
func parseXY(input string) (*sketch.XYChart, error) {
	var (
		c  = newCursor(input)
		ch sketch.XYChart
	)
	if !c.literal(kwXY) {
		return nil, fail("xychart-beta keyword", c)
	}
	c.skipBlank()
	if c.literal("title ") {
		title, ok := c.quoted('"')
		if !ok {
			return nil, fail("quoted title", c)
		}
		ch.Title = title
	}

	c.skipBlank()
	mark := c.pos
	if c.literal("legend") {
		c.skipSpace()
		legend, err := bracketList(c)
		if err != nil {
			c.pos = mark
		} else {
			ch.Legend = legend
		}
	}

	c.skipBlank()
	if !c.literal("x-axis") {
		return nil, fail("x-axis", c)
	}
	c.skipSpace()
	labels, err := bracketList(c)
	if err != nil {
		return nil, err
	}
	ch.XAxis.Labels = labels

	c.skipBlank()
	axis, err := parseYAxis(c)
	if err != nil {
		return nil, err
	}
	ch.YAxis = axis

	for {
		c.skipBlank()
		if c.done() {
			break
		}
		serie, err := parseSeries(c)
		if err != nil {
			return nil, err
		}
		ch.Series = append(ch.Series, serie)
	}
	return &ch, nil
}

func parseYAxis(c *cursor) (sketch.YAxis, error) {
	var axis sketch.YAxis
	if !c.literal("y-axis") {
		return axis, fail("y-axis", c)
	}
	c.skipSpace()
	title, ok := c.quoted('"')
	if !ok {
		return axis, fail("quoted y-axis title", c)
	}
	axis.Title = title
	c.skipSpace()
	min, ok := c.number()
	if !ok {
		return axis, fail("y-axis minimum", c)
	}
	c.skipSpace()
	if !c.literal("-->") {
		return axis, fail("y-axis range arrow", c)
	}
	c.skipSpace()
	max, ok := c.number()
	if !ok {
		return axis, fail("y-axis maximum", c)
	}
	if max <= min {
		return axis, fail("y-axis maximum above minimum", c)
	}
	axis.Min, axis.Max = min, max
	return axis, nil
}

func parseSeries(c *cursor) (sketch.Series, error) {
	var serie sketch.Series
	switch word := c.until(' ', '\t', '\n'); word {
	case "line":
		serie.Kind = sketch.Line
	default:
		serie.Kind = sketch.Bar
	}
	c.skipSpace()
	if !c.literal("[") {
		return serie, fail("series data list", c)
	}
	for {
		c.skipBlank()
		if c.literal("]") {
			return serie, nil
		}
		v, ok := c.number()
		if !ok {
			return serie, fail("series value", c)
		}
		serie.Data = append(serie.Data, v)
		c.skipBlank()
		if c.literal(",") {
			continue
		}
		if c.literal("]") {
			return serie, nil
		}
		return serie, fail("comma or closing bracket", c)
	}
}

func bracketList(c *cursor) ([]string, error) {
	if !c.literal("[") {
		return nil, fail("opening bracket", c)
	}
	labels, err := c.labels()
	if err != nil {
		return nil, err
	}
	if !c.literal("]") {
		return nil, fail("closing bracket", c)
	}
	return labels, nil
}
