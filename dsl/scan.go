package dsl

import (
	"strconv"
	"strings"
)

// cursor walks the input byte by byte. Every parsing helper either consumes
// what it matched or leaves the position untouched, so callers can probe for
// optional constructs and fall through without bookkeeping.
type cursor struct {
	input string
	pos   int
}

func newCursor(str string) *cursor {
	return &cursor{
		input: str,
	}
}

func (c *cursor) rest() string {
	return c.input[c.pos:]
}

func (c *cursor) done() bool {
	return c.pos >= len(c.input)
}

func (c *cursor) peek() byte {
	if c.done() {
		return 0
	}
	return c.input[c.pos]
}

func (c *cursor) next() byte {
	b := c.peek()
	if !c.done() {
		c.pos++
	}
	return b
}

func (c *cursor) skipBlank() {
	for !c.done() && isBlank(c.input[c.pos]) {
		c.pos++
	}
}

func (c *cursor) skipSpace() {
	for !c.done() && isSpace(c.input[c.pos]) {
		c.pos++
	}
}

// literal consumes str when the input starts with it.
func (c *cursor) literal(str string) bool {
	if !strings.HasPrefix(c.rest(), str) {
		return false
	}
	c.pos += len(str)
	return true
}

// line consumes the rest of the current line, leaving the newline in place.
func (c *cursor) line() string {
	end := strings.IndexByte(c.rest(), '\n')
	if end < 0 {
		end = len(c.rest())
	}
	str := c.rest()[:end]
	c.pos += end
	return str
}

// quoted consumes a string delimited by the given quote, taken verbatim up to
// the next closing quote. No escape processing.
func (c *cursor) quoted(quote byte) (string, bool) {
	if c.peek() != quote {
		return "", false
	}
	end := strings.IndexByte(c.input[c.pos+1:], quote)
	if end < 0 {
		return "", false
	}
	str := c.input[c.pos+1 : c.pos+1+end]
	c.pos += end + 2
	return str, true
}

// anyQuoted tries double quotes first, then single.
func (c *cursor) anyQuoted() (string, bool) {
	if str, ok := c.quoted('"'); ok {
		return str, true
	}
	return c.quoted('\'')
}

// until consumes up to the first occurrence of any given byte, or the whole
// remainder when none occurs. Matched bytes stay in place.
func (c *cursor) until(chars ...byte) string {
	rest := c.rest()
	end := len(rest)
	for i := 0; i < len(rest); i++ {
		if bytesContain(chars, rest[i]) {
			end = i
			break
		}
	}
	str := rest[:end]
	c.pos += end
	return str
}

// number consumes an optionally negative decimal number.
func (c *cursor) number() (float64, bool) {
	var (
		mark = c.pos
		end  = c.pos
	)
	if end < len(c.input) && c.input[end] == '-' {
		end++
	}
	digits := end
	for end < len(c.input) && isDigit(c.input[end]) {
		end++
	}
	if end == digits {
		return 0, false
	}
	if end < len(c.input) && c.input[end] == '.' {
		end++
		frac := end
		for end < len(c.input) && isDigit(c.input[end]) {
			end++
		}
		if end == frac {
			c.pos = mark
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(c.input[mark:end], 64)
	if err != nil {
		return 0, false
	}
	c.pos = end
	return f, true
}

// integer consumes a run of digits.
func (c *cursor) integer() (int, bool) {
	end := c.pos
	for end < len(c.input) && isDigit(c.input[end]) {
		end++
	}
	if end == c.pos {
		return 0, false
	}
	n, err := strconv.Atoi(c.input[c.pos:end])
	if err != nil {
		return 0, false
	}
	c.pos = end
	return n, true
}

// labels parses the body of a bracketed label list, stopping in front of the
// closing bracket which the caller consumes. Labels are quoted with either
// style, in which case they may contain commas, or taken literally up to the
// next comma or bracket and trimmed.
func (c *cursor) labels() ([]string, error) {
	var labels []string
	for {
		c.skipBlank()
		if c.peek() == ']' {
			return labels, nil
		}
		label, ok := c.anyQuoted()
		if !ok {
			label = strings.TrimSpace(c.until(',', ']'))
		}
		labels = append(labels, label)

		c.skipBlank()
		switch c.peek() {
		case ',':
			c.pos++
		case ']':
			return labels, nil
		default:
			return nil, fail("comma or closing bracket", c)
		}
	}
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func bytesContain(list []byte, b byte) bool {
	for i := range list {
		if list[i] == b {
			return true
		}
	}
	return false
}
