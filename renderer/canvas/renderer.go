package canvasrenderer

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/caption/layout"
	"github.com/ByLCY/caption/renderer"
	"github.com/ByLCY/caption/typeface"
)

// 画布以 1 像素 = 1 毫米建立，栅格化分辨率固定为 1 dot/mm。
var resolution = canvas.DPMM(1.0)

// Renderer draws text boxes as vector glyph outlines via github.com/tdewolff/canvas
// and composites the rasterized layer over the destination image.
type Renderer struct {
	face *typeface.Face

	fontMu sync.Mutex
	family *canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer creates a canvas-based renderer for face.
func NewRenderer(face *typeface.Face) *Renderer { return &Renderer{face: face} }

// Render 在透明画布上绘制全部文本，栅格化后以 Over 方式叠加到 dst。
func (r *Renderer) Render(dst draw.Image, boxes []layout.TextBox, paint renderer.Paint) error {
	family, err := r.ensureFontFamily()
	if err != nil {
		return err
	}
	bounds := dst.Bounds()
	c := canvas.New(float64(bounds.Dx()), float64(bounds.Dy()))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	for _, box := range boxes {
		// 像素字高 → 每 em 像素（即毫米）→ pt
		size := toPt(r.face.EmSize(box.Scale))
		for _, pass := range renderer.Passes(box, paint) {
			face := family.Face(size, pass.Color, canvas.FontRegular, canvas.FontNormal)
			// 基线位置：以行顶部加上字体上升部
			baseline := float64(pass.Y) + face.Metrics().Ascent
			ctx.DrawText(float64(pass.X), baseline, canvas.NewTextLine(face, box.Body, canvas.Left))
		}
	}

	layer := rasterizer.Draw(c, resolution, canvas.DefaultColorSpace)
	draw.Draw(dst, bounds, layer, image.Point{}, draw.Over)
	return nil
}

func (r *Renderer) ensureFontFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if r.family != nil {
		return r.family, nil
	}
	if r.face == nil {
		return nil, fmt.Errorf("canvas: 缺少字体")
	}
	family := canvas.NewFontFamily(r.face.Name)
	if err := family.LoadFont(r.face.Data(), 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("canvas 加载字体 %s 失败: %w", r.face.Name, err)
	}
	r.family = family
	return family, nil
}

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * 72 / 25.4 }
