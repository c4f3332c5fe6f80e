package dsl

import (
	"strings"

	"github.com/midbel/sketch"
)

// parseMovement reads the work item movement dialect: keyword, optional
// single quoted title, a required columns list and any number of item lines
// of the form ID state: points -> state: points.
func parseMovement(input string) (*sketch.WorkItemMovement, error) {
	var (
		c  = newCursor(input)
		ch sketch.WorkItemMovement
	)
	if !c.literal(kwMovement) {
		return nil, fail("work-item-movement keyword", c)
	}
	c.skipBlank()
	if c.literal("title") {
		c.skipSpace()
		title, ok := c.quoted('\'')
		if !ok {
			return nil, fail("quoted title", c)
		}
		ch.Title = title
	}

	c.skipBlank()
	if !c.literal("columns") {
		return nil, fail("columns", c)
	}
	c.skipSpace()
	columns, err := bracketList(c)
	if err != nil {
		return nil, err
	}
	ch.Columns = columns

	for {
		c.skipBlank()
		if c.done() {
			break
		}
		item, err := parseItem(c)
		if err != nil {
			return nil, err
		}
		ch.Items = append(ch.Items, item)
	}
	return &ch, nil
}

func parseItem(c *cursor) (sketch.WorkItem, error) {
	var item sketch.WorkItem
	id, ok := itemID(c)
	if !ok {
		return item, fail("work item id", c)
	}
	item.ID = id
	c.skipSpace()

	state, points, err := statePoints(c)
	if err != nil {
		return item, err
	}
	item.FromState, item.FromPoints = state, points

	c.skipSpace()
	if !c.literal("->") {
		return item, fail("movement arrow", c)
	}
	c.skipSpace()

	state, points, err = statePoints(c)
	if err != nil {
		return item, err
	}
	item.ToState, item.ToPoints = state, points
	return item, nil
}

// itemID matches letters, a dash, then digits, eg PJ-633.
func itemID(c *cursor) (string, bool) {
	var (
		mark = c.pos
		end  = c.pos
	)
	for end < len(c.input) && isLetter(c.input[end]) {
		end++
	}
	if end == mark || end >= len(c.input) || c.input[end] != '-' {
		return "", false
	}
	end++
	digits := end
	for end < len(c.input) && isDigit(c.input[end]) {
		end++
	}
	if end == digits {
		return "", false
	}
	c.pos = end
	return c.input[mark:end], true
}

// statePoints reads a column name up to the colon, then the point count.
// States may contain spaces.
func statePoints(c *cursor) (string, int, error) {
	state := strings.TrimSpace(c.until(':', '\n'))
	if state == "" || !c.literal(":") {
		return "", 0, fail("state name", c)
	}
	c.skipSpace()
	points, ok := c.integer()
	if !ok {
		return "", 0, fail("point count", c)
	}
	return state, points, nil
}
