package layout

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color 是 RGBA 四通道颜色，每个通道 0-255。
type Color [4]uint8

// NewColor 按通道构造颜色。
func NewColor(r, g, b, a uint8) Color { return Color{r, g, b, a} }

// ColorFromCode 将大端 0xRRGGBBAA 拆分为四个通道。
func ColorFromCode(code uint32) Color {
	return NewColor(
		uint8(code&0xff000000>>24),
		uint8(code&0x00ff0000>>16),
		uint8(code&0x0000ff00>>8),
		uint8(code&0x000000ff),
	)
}

// ParseColor 解析 #RRGGBB 或 #RRGGBBAA。不足 8 位时视为 RGB，alpha 补 0xff。
// 非法十六进制直接返回错误，不做容错。
func ParseColor(s string) (Color, error) {
	if len(s) < 1 || s[0] != '#' {
		return Color{}, fmt.Errorf("颜色 %q 必须以 # 开头", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("颜色 %q 需要 6 或 8 位十六进制", s)
	}
	code, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("解析颜色 %q 失败: %w", s, err)
	}
	if len(hex) < 8 {
		code = code<<8 | 0xff
	}
	return ColorFromCode(uint32(code)), nil
}

// MustParseColor 与 ParseColor 相同，但出错时 panic，仅用于常量定义与测试。
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func Clear() Color { return Color{0, 0, 0, 0} }
func White() Color { return Color{255, 255, 255, 255} }
func Black() Color { return Color{0, 0, 0, 255} }
func Red() Color   { return Color{255, 0, 0, 255} }
func Green() Color { return Color{0, 255, 0, 255} }
func Blue() Color  { return Color{0, 0, 255, 255} }

// R, G, B, A 返回单个通道。
func (c Color) R() uint8 { return c[0] }
func (c Color) G() uint8 { return c[1] }
func (c Color) B() uint8 { return c[2] }
func (c Color) A() uint8 { return c[3] }

// NRGBA 转换为标准库的非预乘颜色，供光栅化器使用。
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// String 输出 #rrggbbaa 形式。
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c[0], c[1], c[2], c[3])
}

// MarshalText 让调试 JSON 中的颜色保持可读。
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
