package dsl

import (
	"strconv"
	"strings"

	"github.com/midbel/sketch"
)

const (
	cfgOpen  = "%%{init:"
	cfgClose = "}%%"
)

// ParseConfig extracts the optional init header from the front of a document
// and returns the remaining input. Absence of the header returns a nil config
// and the input untouched. The header grammar is lenient: any construct that
// does not parse is dropped from the result instead of failing the document.
func ParseConfig(input string) (*sketch.ChartConfig, string) {
	rest := strings.TrimLeft(input, " \t\r\n")
	if !strings.HasPrefix(rest, cfgOpen) {
		return nil, input
	}
	body := rest[len(cfgOpen):]
	end := strings.Index(body, cfgClose)
	if end < 0 {
		return nil, input
	}
	var (
		cfg = sketch.DefaultConfig()
		cur = newCursor(strings.TrimSpace(body[:end]))
	)
	obj := parseObject(cur)
	if v, ok := obj["theme"]; ok && v.object == nil && v.text != "" {
		cfg.Theme = v.text
	}
	if v, ok := obj["width"]; ok && v.object == nil {
		if n, err := strconv.Atoi(v.text); err == nil && n >= 0 {
			cfg.Width = n
		}
	}
	if v, ok := obj["themeVariables"]; ok && v.object != nil {
		flatten("", v.object, cfg.Variables)
	}
	return cfg, body[end+len(cfgClose):]
}

// cfgValue is one node of the header object tree, either a scalar string or
// a nested object.
type cfgValue struct {
	text   string
	object map[string]cfgValue
}

// parseObject reads a JSON-like object literal with either quote style and
// arbitrary nesting. Malformed pairs are skipped up to the next separator at
// the same depth.
func parseObject(c *cursor) map[string]cfgValue {
	if !c.literal("{") {
		return nil
	}
	obj := make(map[string]cfgValue)
	for {
		c.skipBlank()
		if c.done() || c.literal("}") {
			return obj
		}
		if c.literal(",") {
			continue
		}
		key, val, ok := parsePair(c)
		if ok {
			obj[key] = val
		} else {
			skipConstruct(c)
		}
	}
}

func parsePair(c *cursor) (string, cfgValue, bool) {
	mark := c.pos
	key, ok := cfgKey(c)
	if !ok {
		c.pos = mark
		return "", cfgValue{}, false
	}
	c.skipBlank()
	if !c.literal(":") {
		c.pos = mark
		return "", cfgValue{}, false
	}
	c.skipBlank()
	val, ok := parseValue(c)
	if !ok {
		c.pos = mark
		return "", cfgValue{}, false
	}
	return key, val, true
}

func cfgKey(c *cursor) (string, bool) {
	if str, ok := c.anyQuoted(); ok {
		return strings.TrimSpace(str), strings.TrimSpace(str) != ""
	}
	end := c.pos
	for end < len(c.input) {
		b := c.input[end]
		if !isLetter(b) && !isDigit(b) && b != '_' {
			break
		}
		end++
	}
	if end == c.pos {
		return "", false
	}
	key := c.input[c.pos:end]
	c.pos = end
	return key, true
}

func parseValue(c *cursor) (cfgValue, bool) {
	if c.peek() == '{' {
		obj := parseObject(c)
		if obj == nil {
			return cfgValue{}, false
		}
		return cfgValue{object: obj}, true
	}
	if str, ok := c.anyQuoted(); ok {
		return cfgValue{text: str}, true
	}
	str := strings.TrimSpace(c.until(',', '}', '\n'))
	if str == "" {
		return cfgValue{}, false
	}
	return cfgValue{text: str}, true
}

// skipConstruct drops input up to the next comma or closing brace at the
// current depth, honoring quotes and nested braces on the way.
func skipConstruct(c *cursor) {
	var (
		depth int
		quote byte
	)
	for !c.done() {
		b := c.peek()
		if quote != 0 {
			if b == quote {
				quote = 0
			}
			c.next()
			continue
		}
		switch b {
		case '\'', '"':
			quote = b
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return
			}
			depth--
		case ',':
			if depth == 0 {
				return
			}
		}
		c.next()
	}
}

func flatten(prefix string, obj map[string]cfgValue, into sketch.Variables) {
	for key, val := range obj {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		if val.object != nil {
			flatten(name, val.object, into)
		} else {
			into[name] = val.text
		}
	}
}
