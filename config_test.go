package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariablesGet(t *testing.T) {
	v := Variables{
		"pieStrokeColor": "red",
		"empty":          "",
	}
	assert.Equal(t, "red", v.Get("pieStrokeColor", "black"))
	assert.Equal(t, "black", v.Get("empty", "black"))
	assert.Equal(t, "black", v.Get("missing", "black"))

	var none Variables
	assert.Equal(t, "black", none.Get("missing", "black"))
}

func TestVariablesFloat(t *testing.T) {
	v := Variables{
		"pieOpacity": "0.4",
		"bad":        "thick",
	}
	assert.Equal(t, 0.4, v.Float("pieOpacity", 0.7))
	assert.Equal(t, 0.7, v.Float("bad", 0.7))
	assert.Equal(t, 0.7, v.Float("missing", 0.7))
}

func TestVariablesSize(t *testing.T) {
	v := Variables{
		"pieTitleTextSize":   "30px",
		"pieSectionTextSize": "18",
	}
	assert.Equal(t, 30.0, v.Size("pieTitleTextSize", 25))
	assert.Equal(t, 18.0, v.Size("pieSectionTextSize", 17))
	assert.Equal(t, 25.0, v.Size("missing", 25))
}

func TestVariablesList(t *testing.T) {
	v := Variables{
		"xyChart.plotColorPalette": "#ff0000, #00ff00 ,#0000ff",
	}
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, v.List("xyChart.plotColorPalette"))
	assert.Nil(t, v.List("missing"))
}

func TestConfigWidth(t *testing.T) {
	var none *ChartConfig
	assert.Equal(t, 800.0, none.width(800))

	cfg := DefaultConfig()
	assert.Equal(t, 800.0, cfg.width(800))

	cfg.Width = 400
	assert.Equal(t, 400.0, cfg.width(800))
}
