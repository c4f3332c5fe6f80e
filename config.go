package sketch

import (
	"strconv"
	"strings"
)

const DefaultTheme = "base"

// ChartConfig carries the settings extracted from the optional init header of
// a document: a theme name, a flat theme-variable map and an optional canvas
// width override. It is built once per document and read-only afterwards.
type ChartConfig struct {
	Theme     string
	Width     int
	Variables Variables
}

func DefaultConfig() *ChartConfig {
	return &ChartConfig{
		Theme:     DefaultTheme,
		Variables: make(Variables),
	}
}

func (c *ChartConfig) vars() Variables {
	if c == nil {
		return nil
	}
	return c.Variables
}

func (c *ChartConfig) width(alt float64) float64 {
	if c == nil || c.Width <= 0 {
		return alt
	}
	return float64(c.Width)
}

// Variables is the flattened theme-variable map. Keys of nested objects in
// the header are joined to their parent key with a dot, eg
// xyChart.titleFontSize. A nil map behaves as an empty one.
type Variables map[string]string

func (v Variables) Get(key, alt string) string {
	if s, ok := v[key]; ok && s != "" {
		return s
	}
	return alt
}

func (v Variables) Float(key string, alt float64) float64 {
	s, ok := v[key]
	if !ok {
		return alt
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return alt
	}
	return f
}

// Size returns a pixel size. The value may carry a px suffix.
func (v Variables) Size(key string, alt float64) float64 {
	s, ok := v[key]
	if !ok {
		return alt
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return alt
	}
	return f
}

// List splits a comma separated value, trimming each entry. It returns nil
// when the key is absent.
func (v Variables) List(key string) []string {
	s, ok := v[key]
	if !ok {
		return nil
	}
	list := strings.Split(s, ",")
	for i := range list {
		list[i] = strings.TrimSpace(list[i])
	}
	return list
}
