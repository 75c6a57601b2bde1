package raster

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ByLCY/caption/layout"
	"github.com/ByLCY/caption/renderer"
	"github.com/ByLCY/caption/typeface"
)

func blank(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func countPixels(img *image.NRGBA, rect image.Rectangle, match func(color.NRGBA) bool) int {
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if match(img.NRGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

func notWhite(c color.NRGBA) bool { return c != color.NRGBA{R: 255, G: 255, B: 255, A: 255} }

func TestRenderDrawsInsideBox(t *testing.T) {
	face, err := typeface.Parse(goregular.TTF)
	require.NoError(t, err)
	box := layout.TextBox{
		Body:  "Hello",
		Scale: layout.Uniform(30),
		Rect:  layout.Rect{X: 10, Y: 10, Width: 70, Height: 30},
	}
	img := blank(200, 100)
	err = NewRenderer(face).Render(img, []layout.TextBox{box}, renderer.Paint{Color: layout.Black()})
	require.NoError(t, err)

	assert.Greater(t, countPixels(img, image.Rect(10, 10, 90, 42), notWhite), 50)
	assert.Zero(t, countPixels(img, image.Rect(120, 0, 200, 100), notWhite))
	assert.Zero(t, countPixels(img, image.Rect(0, 60, 200, 100), notWhite))
}

func TestRenderShadowUsesShadowColor(t *testing.T) {
	face, err := typeface.Parse(goregular.TTF)
	require.NoError(t, err)
	box := layout.TextBox{
		Body:  "Wall",
		Scale: layout.Uniform(40),
		Rect:  layout.Rect{X: 20, Y: 20, Width: 80, Height: 40},
	}
	shadow := layout.Red()
	img := blank(200, 100)
	err = NewRenderer(face).Render(img, []layout.TextBox{box}, renderer.Paint{Color: layout.Black(), Shadow: &shadow})
	require.NoError(t, err)

	reddish := func(c color.NRGBA) bool { return c.R > 200 && c.G < 80 && c.B < 80 }
	assert.Greater(t, countPixels(img, img.Bounds(), reddish), 0)
	dark := func(c color.NRGBA) bool { return c.R < 60 && c.G < 60 && c.B < 60 }
	assert.Greater(t, countPixels(img, img.Bounds(), dark), 0)
}

func TestRenderWithoutFace(t *testing.T) {
	err := (&Renderer{}).Render(blank(4, 4), nil, renderer.Paint{})
	assert.Error(t, err)
}
