package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/ByLCY/caption/compose"
	"github.com/ByLCY/caption/layout"
)

// tracer traces with key 'caption'
func tracer() tracing.Trace {
	return tracing.Select("caption")
}

func main() {
	initDisplay()
	if err := setupTracing(); err != nil {
		fmt.Println("error configuring tracing")
		os.Exit(1)
	}
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		tracer().Errorf("%v", err)
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func setupTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.caption":   "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// run 解析参数并执行缩放或绘制。缩放优先；两者都未指定时不做任何事。
func run(args []string) error {
	if len(args) == 0 {
		cfg := &config{}
		newFlagSet(cfg).Usage()
		return nil
	}
	cfg, _, err := parseConfig(args)
	if err != nil {
		return err
	}
	if err := setTraceLevel(cfg.Trace); err != nil {
		return err
	}
	if cfg.Input == "" || cfg.Output == "" {
		return fmt.Errorf("需要同时指定 -in 与 -out")
	}
	if err := compose.CheckFileExists(cfg.Input); err != nil {
		return err
	}

	if size := cfg.Resize; size != "" || cfg.ResizeKeep != "" {
		keep := size == ""
		if keep {
			size = cfg.ResizeKeep
		}
		format, err := parseOutputFormat(cfg)
		if err != nil {
			return err
		}
		pair := layout.ParsePair[uint32](size)
		tracer().Infof("input: %s, output: %s, format: %s", cfg.Input, cfg.Output, format)
		tracer().Infof("size: %s, keep aspect: %v", pair, keep)
		if err := compose.Resize(cfg.Input, cfg.Output, pair, keep, format); err != nil {
			return err
		}
		pterm.Success.Println("已缩放：" + cfg.Output)
		return nil
	}

	if cfg.Text == "" {
		tracer().Infof("未指定 -text 与 -resize，不做处理")
		return nil
	}
	opts, err := cfg.drawingOptions()
	if err != nil {
		return err
	}
	logDrawing(opts)
	if err := compose.Draw(opts); err != nil {
		return err
	}
	pterm.Success.Println("已生成：" + opts.OutPath)
	return nil
}

func logDrawing(opts compose.DrawingOptions) {
	tracer().Infof("input: %s", opts.InPath)
	tracer().Infof("output: %s", opts.OutPath)
	tracer().Infof("format: %s", opts.Format)
	tracer().Infof("text: %q", opts.Text)
	tracer().Infof("color: %s", opts.Color)
	if opts.Shadow != nil {
		tracer().Infof("shadow: %s", *opts.Shadow)
	}
	tracer().Infof("font: %s, height: %d", opts.FontPath, opts.Height)
	if opts.Position != nil {
		tracer().Infof("position: %s", *opts.Position)
	}
	if opts.Gravity != nil {
		tracer().Infof("gravity: %s", *opts.Gravity)
	}
	tracer().Infof("engine: %s", opts.Engine)
}

func setTraceLevel(level string) error {
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info", "":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("无效的日志级别: %s", level)
	}
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
