package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ByLCY/caption/compose"
	"github.com/ByLCY/caption/imageio"
	"github.com/ByLCY/caption/layout"
)

func writeImage(t *testing.T, dir string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	path := filepath.Join(dir, "in.png")
	require.NoError(t, imageio.Save(path, img, imageio.Png))
	return path
}

func writePreset(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "caption.preset")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestPresetFillsUnsetFlags(t *testing.T) {
	dir := t.TempDir()
	preset := writePreset(t, dir, `
preset title {
  font: "embed:gobold"
  height: 32
  color: #ffffff
  gravity: LowerCentered
  grayscale: true
}
`)
	cfg, _, err := parseConfig([]string{"-preset", preset, "-height", "18", "-text", "hi"})
	require.NoError(t, err)
	assert.Equal(t, "embed:gobold", cfg.Font)
	assert.Equal(t, "18", cfg.Height)
	assert.Equal(t, "#ffffff", cfg.Color)
	assert.Equal(t, "LowerCentered", cfg.Gravity)
	assert.True(t, cfg.Grayscale)
}

func TestPresetSelectByName(t *testing.T) {
	dir := t.TempDir()
	preset := writePreset(t, dir, `
preset a { height: 10 }
preset b { height: 20; engine: canvas }
`)
	cfg, _, err := parseConfig([]string{"-preset", preset, "-preset-name", "b"})
	require.NoError(t, err)
	assert.Equal(t, "20", cfg.Height)
	assert.Equal(t, "canvas", cfg.Engine)

	_, _, err = parseConfig([]string{"-preset", preset, "-preset-name", "c"})
	assert.Error(t, err)
}

func TestPresetRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	preset := writePreset(t, dir, `preset a { blur: 3 }`)
	_, _, err := parseConfig([]string{"-preset", preset})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blur")
}

func TestDrawingOptionsFromConfig(t *testing.T) {
	cfg := &config{
		Input:    "in.png",
		Output:   "out.jpg",
		Text:     "Hi ${name}",
		Font:     "embed:goregular",
		Height:   "abc",
		Gravity:  "uppercentered",
		Shadow:   "#00000080",
		Format:   "jpeg",
		Engine:   "raster",
		Data:     `{"name": "Café"}`,
		Position: "",
	}
	opts, err := cfg.drawingOptions()
	require.NoError(t, err)
	assert.Equal(t, uint32(defaultHeight), opts.Height)
	assert.Equal(t, layout.Black(), opts.Color)
	require.NotNil(t, opts.Shadow)
	assert.Equal(t, uint8(0x80), opts.Shadow.A())
	require.NotNil(t, opts.Gravity)
	assert.Equal(t, layout.UpperCentered, *opts.Gravity)
	assert.Nil(t, opts.Position)
	assert.Equal(t, imageio.Jpeg, opts.Format)
	assert.Equal(t, compose.Raster, opts.Engine)
	assert.Equal(t, "Hi Café", opts.Text)
}

func TestDrawingOptionsRejects(t *testing.T) {
	base := config{Text: "x", Font: "embed:goregular", Height: "12", Format: "Png", Engine: "raster"}

	noFont := base
	noFont.Font = ""
	_, err := noFont.drawingOptions()
	assert.Error(t, err)

	both := base
	both.Position, both.Gravity = "1x1", "Centered"
	_, err = both.drawingOptions()
	assert.Error(t, err)

	badColor := base
	badColor.Color = "ffffff"
	_, err = badColor.drawingOptions()
	assert.Error(t, err)

	badGravity := base
	badGravity.Gravity = "Sideways"
	_, err = badGravity.drawingOptions()
	assert.Error(t, err)
}

func TestRunDraw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "caption")
	defer teardown()

	dir := t.TempDir()
	in := writeImage(t, dir, 120, 60)
	out := filepath.Join(dir, "out.png")
	err := run([]string{
		"-in", in, "-out", out,
		"-text", "*Big*\nsmall",
		"-font", "embed:goregular", "-height", "16",
		"-gravity", "Centered",
		"-color", "#ff0000",
		"-debug", filepath.Join(dir, "layout.json"),
	})
	require.NoError(t, err)
	img, err := imageio.Open(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 120, 60), img.Bounds())
	_, err = os.Stat(filepath.Join(dir, "layout.json"))
	assert.NoError(t, err)
}

func TestRunResizeTakesPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "caption")
	defer teardown()

	dir := t.TempDir()
	in := writeImage(t, dir, 60, 30)
	out := filepath.Join(dir, "small.png")
	err := run([]string{"-in", in, "-out", out, "-resize-keep", "30", "-text", "ignored"})
	require.NoError(t, err)
	img, err := imageio.Open(out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 15), img.Bounds())
}

func TestRunMissingInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "caption")
	defer teardown()

	dir := t.TempDir()
	err := run([]string{"-in", filepath.Join(dir, "nope.png"), "-out", filepath.Join(dir, "o.png")})
	var notFound *compose.InputNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
