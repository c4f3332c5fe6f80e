package sketch

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Measurer reports text metrics at a given pixel size. Layout engines consult
// it to size legends, titles and axis labels before drawing; when none is
// available they fall back to a character-count heuristic.
type Measurer interface {
	TextWidth(text string, size float64) float64
	TextHeight(size float64) float64
}

// textRatio approximates the average glyph advance as a fraction of the font
// size when no font data is available.
const textRatio = 0.53

type charMeasurer struct{}

func (charMeasurer) TextWidth(text string, size float64) float64 {
	return float64(len(text)) * size * textRatio
}

func (charMeasurer) TextHeight(size float64) float64 {
	return size
}

type fontMeasurer struct {
	font  *sfnt.Font
	faces map[float64]font.Face
}

// NewMeasurer builds a Measurer from raw font bytes (ttf/otf). Faces are
// cached per pixel size since layout passes measure many strings at the same
// handful of sizes.
func NewMeasurer(data []byte) (Measurer, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	m := fontMeasurer{
		font:  fnt,
		faces: make(map[float64]font.Face),
	}
	return &m, nil
}

func (m *fontMeasurer) TextWidth(text string, size float64) float64 {
	face, err := m.face(size)
	if err != nil {
		return charMeasurer{}.TextWidth(text, size)
	}
	return float64(font.MeasureString(face, text)) / 64
}

func (m *fontMeasurer) TextHeight(size float64) float64 {
	face, err := m.face(size)
	if err != nil {
		return charMeasurer{}.TextHeight(size)
	}
	met := face.Metrics()
	return float64(met.Ascent+met.Descent) / 64
}

func (m *fontMeasurer) face(size float64) (font.Face, error) {
	if f, ok := m.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	m.faces[size] = f
	return f, nil
}
