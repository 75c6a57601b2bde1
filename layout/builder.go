package layout

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'caption'
func tracer() tracing.Trace {
	return tracing.Select("caption")
}

// Build 将多行文本排成按输入顺序排列的 TextBox。
//
// 指定 Position 时，各行从该点开始自上而下堆叠，每一行相对上一行的宽度水平居中；
// 否则先以 (0,0) 堆叠，再按 Gravity 整体平移到画布上。
// 逐行累积依赖上一行的结果，必须顺序执行。
func Build(lines []string, opts BuildOptions) ([]TextBox, error) {
	if opts.Metrics == nil {
		return nil, fmt.Errorf("layout: 缺少字形度量 Metrics")
	}
	if opts.Position != nil {
		return stack(lines, int32(opts.Position.X), int32(opts.Position.Y), opts)
	}

	boxes, err := stack(lines, 0, 0, opts)
	if err != nil {
		return nil, err
	}
	var maxWidth, totalHeight int32
	for _, box := range boxes {
		if box.Rect.Width > maxWidth {
			maxWidth = box.Rect.Width
		}
		totalHeight += box.Rect.Height
	}
	gravity := Centered
	if opts.Gravity != nil {
		gravity = *opts.Gravity
	}

	tracer().Infof("canvas size: %s", opts.Canvas)
	tracer().Infof("max_width: %d", maxWidth)

	tx, ty := gravityOffset(gravity, opts.Canvas, maxWidth, totalHeight)
	for i := range boxes {
		boxes[i].Rect = boxes[i].Rect.Translate(tx, ty)
	}
	return boxes, nil
}

// BuildResult 与 Build 相同，但把输入参数一并打包，便于输出调试 JSON。
func BuildResult(lines []string, opts BuildOptions) (*Result, error) {
	boxes, err := Build(lines, opts)
	if err != nil {
		return nil, err
	}
	return &Result{
		Canvas:   opts.Canvas,
		Position: opts.Position,
		Gravity:  opts.Gravity,
		Boxes:    boxes,
	}, nil
}

func stack(lines []string, x, y int32, opts BuildOptions) ([]TextBox, error) {
	boxes := make([]TextBox, 0, len(lines))
	prev := Rect{X: x, Y: y}
	for _, line := range lines {
		ds := Classify(line)
		scale := Uniform(float32(opts.Height) * ds.Decoration.ScaleFactor())

		vm := opts.Metrics.VMetrics(scale)
		height := abs32(vm.Ascent) + abs32(vm.Descent)

		advances, err := opts.Metrics.Advances(ds.Body, scale)
		if err != nil {
			return nil, fmt.Errorf("测量文本 %q 失败: %w", ds.Body, err)
		}
		var width float32
		for _, adv := range advances {
			width += adv
		}
		width += 0.5

		// 相对上一行宽度居中；第一行（上一行宽度为 0）不偏移。
		var dx int32
		if prev.Width != 0 {
			dx = int32((float32(prev.Width)-width)/2 + 0.5)
		}
		rect := Rect{
			X:      prev.X + dx,
			Y:      prev.Y + prev.Height,
			Width:  int32(width),
			Height: int32(height),
		}
		boxes = append(boxes, TextBox{
			Body:       ds.Body,
			Decoration: ds.Decoration,
			Scale:      scale,
			Rect:       rect,
		})
		prev = rect
	}
	return boxes, nil
}

// gravityOffset 计算整段文字的平移量。取整统一为 +0.5 后截断，
// 但 RightCentered 的 x 与 LowerCentered 的 y 直接做整数减法。
func gravityOffset(g Gravity, canvas Pair[uint32], maxWidth, totalHeight int32) (int32, int32) {
	w, h := float32(canvas.X), float32(canvas.Y)
	mw, th := float32(maxWidth), float32(totalHeight)
	margin := roundHalfUp(th / 16)
	switch g {
	case UpperCentered:
		return roundHalfUp((w - mw) / 2), margin
	case LeftCentered:
		return margin, roundHalfUp((h - th) / 2)
	case LowerCentered:
		return roundHalfUp((w - mw) / 2), int32(canvas.Y) - totalHeight - margin
	case RightCentered:
		return int32(canvas.X) - maxWidth, roundHalfUp((h - th) / 2)
	default:
		return roundHalfUp((w - mw) / 2), roundHalfUp((h - th) / 2)
	}
}

func roundHalfUp(v float32) int32 { return int32(v + 0.5) }

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
