// Package dsl parses the textual chart grammars into their document types.
// A document starts with an optional init header, followed by one of three
// dialects told apart by their leading keyword. Parsing either consumes the
// whole input or fails with the unconsumed remainder, there is no partial
// result.
package dsl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/midbel/sketch"
)

// ErrUnknownChart is returned when no dialect keyword opens the document.
var ErrUnknownChart = errors.New("unknown chart type")

// ParseError reports a grammar mismatch together with the input that was
// still unconsumed where parsing stopped.
type ParseError struct {
	Want      string
	Remaining string
}

func (e ParseError) Error() string {
	rest := e.Remaining
	if len(rest) > 40 {
		rest = rest[:40] + "..."
	}
	return fmt.Sprintf("expected %s near %q", e.Want, rest)
}

func fail(want string, c *cursor) error {
	return ParseError{
		Want:      want,
		Remaining: c.rest(),
	}
}

type Kind int

const (
	KindPie Kind = iota + 1
	KindXY
	KindMovement
)

const (
	kwPie      = "pie"
	kwXY       = "xychart-beta"
	kwMovement = "work-item-movement"
)

// Detect identifies the dialect from the keyword after optional leading
// whitespace. The multi word keywords are tried first since pie would
// otherwise never lose a prefix match. The keyword itself is left in place
// for the dialect parser.
func Detect(input string) (Kind, string, error) {
	rest := strings.TrimLeft(input, " \t\r\n")
	switch {
	case strings.HasPrefix(rest, kwMovement):
		return KindMovement, rest, nil
	case strings.HasPrefix(rest, kwXY):
		return KindXY, rest, nil
	case strings.HasPrefix(rest, kwPie):
		return KindPie, rest, nil
	default:
		return 0, rest, ErrUnknownChart
	}
}

// Parse runs the full pipeline on one document: config header, dialect
// detection, dialect grammar and, for work item movement, validation.
func Parse(input string) (sketch.Chart, error) {
	if !strings.HasSuffix(input, "\n") {
		input += "\n"
	}
	cfg, rest := ParseConfig(input)

	kind, rest, err := Detect(rest)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindPie:
		c, err := parsePie(rest)
		if err != nil {
			return nil, err
		}
		c.Config = cfg
		return c, nil
	case KindXY:
		c, err := parseXY(rest)
		if err != nil {
			return nil, err
		}
		c.Config = cfg
		return c, nil
	default:
		c, err := parseMovement(rest)
		if err != nil {
			return nil, err
		}
		c.Config = cfg
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c, nil
	}
}
