package layout

// Metrics 是绑定到某个已加载字体的字形度量提供者。
type Metrics interface {
	// VMetrics 返回给定缩放下的上升部与下降部。
	VMetrics(scale Scale) VMetrics
	// Advances 以原点 (0,0) 排列 text，返回每个字形的水平步进宽度。
	Advances(text string, scale Scale) ([]float32, error)
}

// BuildOptions 配置排版所需的依赖与锚定方式。
// Position 与 Gravity 互斥；二者都为空时按 Centered 处理。
type BuildOptions struct {
	Metrics  Metrics
	Height   uint32
	Canvas   Pair[uint32]
	Position *Pair[uint32]
	Gravity  *Gravity
}
