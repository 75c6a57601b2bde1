// Package raster draws text boxes pixel by pixel with golang.org/x/image/font.
package raster

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ByLCY/caption/layout"
	"github.com/ByLCY/caption/renderer"
	"github.com/ByLCY/caption/typeface"
)

// Renderer rasterizes glyph runs from a single loaded font.
type Renderer struct {
	face *typeface.Face
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer drawing with face.
func NewRenderer(face *typeface.Face) *Renderer { return &Renderer{face: face} }

// Render draws every box in order. A box's rect origin is its top-left
// corner; the baseline sits one ascent below it.
func (r *Renderer) Render(dst draw.Image, boxes []layout.TextBox, paint renderer.Paint) error {
	if r.face == nil {
		return fmt.Errorf("raster: 缺少字体")
	}
	faces := map[layout.Scale]font.Face{}
	defer func() {
		for _, f := range faces {
			f.Close()
		}
	}()
	origin := dst.Bounds().Min
	for _, box := range boxes {
		face, ok := faces[box.Scale]
		if !ok {
			var err error
			if face, err = r.face.NewFace(box.Scale); err != nil {
				return fmt.Errorf("创建字号 %g 的字体失败: %w", box.Scale.Y, err)
			}
			faces[box.Scale] = face
		}
		ascent := face.Metrics().Ascent
		for _, pass := range renderer.Passes(box, paint) {
			d := font.Drawer{
				Dst:  dst,
				Src:  image.NewUniform(pass.Color),
				Face: face,
				Dot: fixed.Point26_6{
					X: fixed.I(origin.X + pass.X),
					Y: fixed.I(origin.Y+pass.Y) + ascent,
				},
			}
			d.DrawString(box.Body)
		}
	}
	return nil
}
