// Package compose 串联字体加载、排版、绘制与编码，实现文字叠加和缩放两条流程。
package compose

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/ByLCY/caption/imageio"
	"github.com/ByLCY/caption/layout"
	"github.com/ByLCY/caption/renderer"
	canvasrenderer "github.com/ByLCY/caption/renderer/canvas"
	"github.com/ByLCY/caption/renderer/raster"
	"github.com/ByLCY/caption/typeface"
)

// tracer writes to trace with key 'caption'
func tracer() tracing.Trace {
	return tracing.Select("caption")
}

// InputNotFoundError 表示输入文件不存在。
type InputNotFoundError struct {
	Path string
}

func (e *InputNotFoundError) Error() string {
	return fmt.Sprintf("specified file does not exist: %q", e.Path)
}

// CheckFileExists 在任何处理开始前确认输入文件存在。
func CheckFileExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &InputNotFoundError{Path: path}
	}
	return nil
}

// Engine 选择光栅化后端。
type Engine int

const (
	Raster Engine = iota // golang.org/x/image/font
	Canvas               // github.com/tdewolff/canvas
)

// ParseEngine 解析 raster / canvas。
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raster":
		return Raster, nil
	case "canvas":
		return Canvas, nil
	}
	return Raster, fmt.Errorf("未知的渲染引擎 %q（可选：raster, canvas）", s)
}

func (e Engine) String() string {
	if e == Canvas {
		return "canvas"
	}
	return "raster"
}

// NewRenderer 为字体创建所选后端的渲染器。
func (e Engine) NewRenderer(face *typeface.Face) renderer.Renderer {
	if e == Canvas {
		return canvasrenderer.NewRenderer(face)
	}
	return raster.NewRenderer(face)
}

// DrawingOptions 汇总一次文字叠加所需的全部参数，构造后只读。
type DrawingOptions struct {
	InPath    string
	OutPath   string
	Text      string
	Color     layout.Color
	Shadow    *layout.Color
	FontPath  string
	Height    uint32
	Position  *layout.Pair[uint32]
	Gravity   *layout.Gravity
	Format    imageio.Format
	Grayscale bool
	Engine    Engine
	DebugPath string // 非空时输出排版调试 JSON
}

// Validate 检查互斥与必填项。
func (o DrawingOptions) Validate() error {
	switch {
	case o.InPath == "" || o.OutPath == "":
		return fmt.Errorf("缺少输入或输出路径")
	case o.FontPath == "":
		return fmt.Errorf("绘制文字需要字体")
	case o.Position != nil && o.Gravity != nil:
		return fmt.Errorf("position 与 gravity 不能同时指定")
	}
	return nil
}

// Draw 读取字体与图片，排版后绘制文字并写出结果。
// 任一步失败立即返回，输出文件只在最后一步创建。
func Draw(opts DrawingOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	face, err := typeface.Load(opts.FontPath)
	if err != nil {
		return fmt.Errorf("加载字体 %s 失败: %w", opts.FontPath, err)
	}
	src, err := imageio.Open(opts.InPath)
	if err != nil {
		return err
	}
	var dst *image.NRGBA
	if opts.Grayscale {
		dst = imageio.ToGray(src)
	} else {
		dst = imageio.ToRGBA(src)
	}

	bounds := dst.Bounds()
	res, err := layout.BuildResult(SplitLines(opts.Text), layout.BuildOptions{
		Metrics:  face,
		Height:   opts.Height,
		Canvas:   layout.NewPair(uint32(bounds.Dx()), uint32(bounds.Dy())),
		Position: opts.Position,
		Gravity:  opts.Gravity,
	})
	if err != nil {
		return fmt.Errorf("排版失败: %w", err)
	}
	if opts.DebugPath != "" {
		if err := layout.WriteDebugJSON(res, opts.DebugPath); err != nil {
			return err
		}
	}

	paint := renderer.Paint{Color: opts.Color, Shadow: opts.Shadow, Grayscale: opts.Grayscale}
	tracer().Debugf("rendering %d text boxes with %s engine", len(res.Boxes), opts.Engine)
	if err := opts.Engine.NewRenderer(face).Render(dst, res.Boxes, paint); err != nil {
		return fmt.Errorf("绘制文字失败: %w", err)
	}
	return imageio.Save(opts.OutPath, dst, opts.Format)
}

// Resize 缩放图片。keepAspect 为真时只使用 size.X 作为目标宽度。
func Resize(inPath, outPath string, size layout.Pair[uint32], keepAspect bool, format imageio.Format) error {
	src, err := imageio.Open(inPath)
	if err != nil {
		return err
	}
	var dst *image.NRGBA
	if keepAspect {
		dst = imageio.ResizeToWidth(src, int(size.X))
	} else {
		dst = imageio.Resize(src, int(size.X), int(size.Y))
	}
	tracer().Debugf("resized to %dx%d", dst.Bounds().Dx(), dst.Bounds().Dy())
	return imageio.Save(outPath, dst, format)
}

// SplitLines 按 '\n' 切分文本，去掉行尾的 '\r'，末尾换行不产生空行。
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
