package layout

// 该文件定义布局结果，供布局计算、渲染与调试 JSON 共用。

// Scale 是字体在两个方向上的像素缩放，二者总是相等。
type Scale struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Uniform 返回两个方向相同的缩放。
func Uniform(s float32) Scale { return Scale{X: s, Y: s} }

// VMetrics 是某缩放下字体的纵向度量（像素）。Descent 通常为负值。
type VMetrics struct {
	Ascent  float32 `json:"ascent"`
	Descent float32 `json:"descent"`
	LineGap float32 `json:"lineGap"`
}

// Rect 以像素为单位，原点位于左上角，允许为负。
type Rect struct {
	X      int32 `json:"x"`
	Y      int32 `json:"y"`
	Width  int32 `json:"width"`
	Height int32 `json:"height"`
}

// Translate 平移原点，宽高不变。
func (r Rect) Translate(dx, dy int32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// TextBox 表示一行已经排好坐标、可以直接绘制的文本。
type TextBox struct {
	Body       string     `json:"body"`
	Decoration Decoration `json:"decoration"`
	Scale      Scale      `json:"scale"`
	Rect       Rect       `json:"rect"`
}

// Result 保存一次排版的画布尺寸与全部文本框，主要用于调试输出。
type Result struct {
	Canvas   Pair[uint32] `json:"canvas"`
	Position *Pair[uint32] `json:"position,omitempty"`
	Gravity  *Gravity     `json:"gravity,omitempty"`
	Boxes    []TextBox    `json:"boxes"`
}
