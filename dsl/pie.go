package dsl

import (
	"github.com/midbel/sketch"
)

// parsePie reads the pie dialect: the keyword, an optional showData flag, an
// optional title running to the end of the line, then entries of the form
// "label": value separated by blanks.
func parsePie(input string) (*sketch.PieChart, error) {
	var (
		c  = newCursor(input)
		ch sketch.PieChart
	)
	if !c.literal(kwPie) {
		return nil, fail("pie keyword", c)
	}
	c.skipSpace()
	ch.ShowData = c.literal("showData")
	c.skipSpace()
	if c.literal("title ") {
		ch.Title = c.line()
	}
	for {
		c.skipBlank()
		if c.done() {
			break
		}
		label, ok := c.quoted('"')
		if !ok {
			return nil, fail("quoted label", c)
		}
		if !c.literal(":") {
			return nil, fail("colon after label", c)
		}
		c.skipSpace()
		value, ok := c.number()
		if !ok {
			return nil, fail("numeric value", c)
		}
		ch.Data = append(ch.Data, sketch.PieSlice{
			Label: label,
			Value: value,
		})
	}
	return &ch, nil
}
