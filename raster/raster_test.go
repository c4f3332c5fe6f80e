package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 10 10"><rect width="10" height="10" fill="red"/></svg>`

func TestPNG(t *testing.T) {
	dat, err := PNG([]byte(sample), 10, 10, "")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(dat))
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 10, bounds.Dx())
	assert.Equal(t, 10, bounds.Dy())
}

func TestPNGWithFamily(t *testing.T) {
	dat, err := PNG([]byte(sample), 10, 10, "Liberation Sans")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(dat))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
}

func TestPNGBadDocument(t *testing.T) {
	_, err := PNG([]byte("<svg"), 10, 10, "")
	require.Error(t, err)

	var rerr Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "decode", rerr.Stage)
}

func TestPNGBadSize(t *testing.T) {
	_, err := PNG([]byte(sample), 0, 10, "")
	require.Error(t, err)

	var rerr Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "setup", rerr.Stage)
}
