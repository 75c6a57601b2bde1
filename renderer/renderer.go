package renderer

import (
	"image/color"
	"image/draw"

	"github.com/ByLCY/caption/layout"
)

// Renderer 将排好版的文本框绘制到目标图像上。
type Renderer interface {
	Render(dst draw.Image, boxes []layout.TextBox, paint Paint) error
}

// shadowOffset 是阴影相对正文的像素偏移。
const shadowOffset = 2

// Paint 描述文字颜色与可选阴影。
// Grayscale 模式下忽略所给颜色：阴影固定为不透明白色，正文固定为不透明黑色。
type Paint struct {
	Color     layout.Color
	Shadow    *layout.Color
	Grayscale bool
}

// Pass 是一次字形串绘制：左上角坐标与颜色。
type Pass struct {
	X, Y  int
	Color color.Color
}

// Passes 展开一个文本框的全部绘制步骤。坐标先截断到 >=0；
// 有阴影时先在四个对角方向各偏移 2px 画阴影（向左上偏移不越过 0），最后画正文。
func Passes(box layout.TextBox, paint Paint) []Pass {
	x, y := clamp(box.Rect.X), clamp(box.Rect.Y)
	fg, shadow := paint.colors()
	main := Pass{X: x, Y: y, Color: fg}
	if shadow == nil {
		return []Pass{main}
	}
	return []Pass{
		{X: x + shadowOffset, Y: y + shadowOffset, Color: shadow},
		{X: saturatingSub(x), Y: y + shadowOffset, Color: shadow},
		{X: saturatingSub(x), Y: saturatingSub(y), Color: shadow},
		{X: x + shadowOffset, Y: saturatingSub(y), Color: shadow},
		main,
	}
}

func (p Paint) colors() (color.Color, color.Color) {
	if p.Grayscale {
		if p.Shadow == nil {
			return color.NRGBA{A: 255}, nil
		}
		return color.NRGBA{A: 255}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	if p.Shadow == nil {
		return p.Color.NRGBA(), nil
	}
	return p.Color.NRGBA(), p.Shadow.NRGBA()
}

func clamp(v int32) int {
	if v < 0 {
		return 0
	}
	return int(v)
}

func saturatingSub(v int) int {
	if v < shadowOffset {
		return 0
	}
	return v - shadowOffset
}
