package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/ByLCY/caption/binding"
	"github.com/ByLCY/caption/compose"
	"github.com/ByLCY/caption/dsl"
	"github.com/ByLCY/caption/imageio"
	"github.com/ByLCY/caption/layout"
)

// defaultHeight 是 -height 无法解析时的字高。
const defaultHeight = 12

// config 保存命令行与 preset 合并后的原始参数，尚未校验。
type config struct {
	Input      string
	Output     string
	Text       string
	Color      string
	Shadow     string
	Font       string
	Height     string
	Position   string
	Gravity    string
	Format     string
	Grayscale  bool
	Resize     string
	ResizeKeep string
	Engine     string
	Preset     string
	PresetName string
	Data       string
	Debug      string
	Trace      string
}

// newFlagSet 将全部参数绑定到 cfg。preset 文件中的键与这里的参数名一致。
func newFlagSet(cfg *config) *flag.FlagSet {
	fs := flag.NewFlagSet("caption", flag.ContinueOnError)
	fs.StringVar(&cfg.Input, "in", "", "输入图片路径")
	fs.StringVar(&cfg.Output, "out", "", "输出图片路径")
	fs.StringVar(&cfg.Text, "text", "", "要绘制的文字，换行分隔；*行* 放大，_行_ 缩小")
	fs.StringVar(&cfg.Color, "color", "", "文字颜色 #RRGGBB 或 #RRGGBBAA，默认黑色")
	fs.StringVar(&cfg.Shadow, "shadow", "", "阴影颜色，省略则不画阴影")
	fs.StringVar(&cfg.Font, "font", "", "字体文件路径，或 embed:goregular 等内置字体")
	fs.StringVar(&cfg.Height, "height", "", "基准字高（像素）")
	fs.StringVar(&cfg.Position, "position", "", "文字左上角位置 AxB，与 -gravity 互斥")
	fs.StringVar(&cfg.Gravity, "gravity", "", "锚定方式："+strings.Join(layout.GravityNames(), " | "))
	fs.StringVar(&cfg.Format, "format", "Png", "输出格式 Png | Jpeg")
	fs.BoolVar(&cfg.Grayscale, "grayscale", false, "以灰度 + alpha 绘制")
	fs.StringVar(&cfg.Resize, "resize", "", "缩放到 WxH（N 表示 NxN）")
	fs.StringVar(&cfg.ResizeKeep, "resize-keep", "", "按宽度等比缩放")
	fs.StringVar(&cfg.Engine, "engine", "raster", "渲染引擎 raster | canvas")
	fs.StringVar(&cfg.Preset, "preset", "", "preset 文件路径")
	fs.StringVar(&cfg.PresetName, "preset-name", "", "使用的 preset 名称，默认第一个")
	fs.StringVar(&cfg.Data, "data", "", "绑定到文字中 ${...} 的 JSON 数据")
	fs.StringVar(&cfg.Debug, "debug", "", "排版调试 JSON 输出路径")
	fs.StringVar(&cfg.Trace, "trace", "Info", "日志级别 Debug | Info | Error")
	return fs
}

// parseConfig 解析命令行；指定 -preset 时，命令行未显式设置的参数取 preset 中的值。
func parseConfig(args []string) (*config, *flag.FlagSet, error) {
	cfg := &config{}
	fs := newFlagSet(cfg)
	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}
	if fs.NArg() > 0 {
		return nil, fs, fmt.Errorf("无法识别的参数: %s", strings.Join(fs.Args(), " "))
	}
	if cfg.Preset == "" {
		return cfg, fs, nil
	}
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if err := applyPreset(fs, cfg.Preset, cfg.PresetName, explicit); err != nil {
		return nil, fs, err
	}
	return cfg, fs, nil
}

func applyPreset(fs *flag.FlagSet, path, name string, explicit map[string]bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("无法打开 preset 文件 %s: %w", path, err)
	}
	defer file.Close()

	parsed, err := dsl.Parse(file)
	if err != nil {
		return fmt.Errorf("解析 preset 失败: %w", err)
	}
	preset, err := parsed.Preset(name)
	if err != nil {
		return err
	}
	settings, err := preset.Settings()
	if err != nil {
		return err
	}
	for key, value := range settings {
		if key == "preset" || key == "preset-name" || fs.Lookup(key) == nil {
			return fmt.Errorf("preset %s: 未知的设置 %q", preset.Name, key)
		}
		if explicit[key] {
			continue
		}
		if err := fs.Set(key, value); err != nil {
			return fmt.Errorf("preset %s: 设置 %s 失败: %w", preset.Name, key, err)
		}
	}
	return nil
}

// drawingOptions 校验参数并构造只读的 DrawingOptions。
func (c *config) drawingOptions() (compose.DrawingOptions, error) {
	var opts compose.DrawingOptions
	if c.Font == "" || c.Height == "" {
		return opts, fmt.Errorf("-text 需要同时指定 -font 与 -height")
	}
	if c.Position != "" && c.Gravity != "" {
		return opts, fmt.Errorf("-position 与 -gravity 不能同时指定")
	}

	color := layout.Black()
	if c.Color != "" {
		parsed, err := layout.ParseColor(c.Color)
		if err != nil {
			return opts, err
		}
		color = parsed
	}
	var shadow *layout.Color
	if c.Shadow != "" {
		parsed, err := layout.ParseColor(c.Shadow)
		if err != nil {
			return opts, err
		}
		shadow = &parsed
	}
	var position *layout.Pair[uint32]
	if c.Position != "" {
		p := layout.ParsePair[uint32](c.Position)
		position = &p
	}
	var gravity *layout.Gravity
	if c.Gravity != "" {
		g, err := layout.ParseGravity(c.Gravity)
		if err != nil {
			return opts, err
		}
		gravity = &g
	}
	format, err := parseOutputFormat(c)
	if err != nil {
		return opts, err
	}
	engine, err := compose.ParseEngine(c.Engine)
	if err != nil {
		return opts, err
	}
	text, err := c.renderText()
	if err != nil {
		return opts, err
	}

	return compose.DrawingOptions{
		InPath:    c.Input,
		OutPath:   c.Output,
		Text:      text,
		Color:     color,
		Shadow:    shadow,
		FontPath:  c.Font,
		Height:    c.height(),
		Position:  position,
		Gravity:   gravity,
		Format:    format,
		Grayscale: c.Grayscale,
		Engine:    engine,
		DebugPath: c.Debug,
	}, nil
}

// renderText 填入 -data 并做 NFC 规范化，使组合字符按单个字形测量。
func (c *config) renderText() (string, error) {
	data, err := binding.Decode(c.Data)
	if err != nil {
		return "", err
	}
	return norm.NFC.String(binding.Interpolate(c.Text, data)), nil
}

func (c *config) height() uint32 {
	h, err := strconv.ParseUint(strings.TrimSpace(c.Height), 10, 32)
	if err != nil {
		return defaultHeight
	}
	return uint32(h)
}

func parseOutputFormat(c *config) (imageio.Format, error) {
	return imageio.ParseFormat(c.Format)
}
