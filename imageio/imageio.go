// Package imageio 封装图片的读取、颜色空间转换、缩放与编码。
package imageio

import (
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/disintegration/imaging"
)

// Format 是输出文件格式。
type Format int

const (
	Png Format = iota
	Jpeg
)

// jpegQuality 固定为最高质量。
const jpegQuality = 100

// ParseFormat 不区分大小写地解析 Png / Jpeg（也接受 jpg）。
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return Png, nil
	case "jpeg", "jpg":
		return Jpeg, nil
	}
	return Png, fmt.Errorf("未知的输出格式 %q（可选：Png, Jpeg）", s)
}

func (f Format) String() string {
	if f == Jpeg {
		return "Jpeg"
	}
	return "Png"
}

func (f Format) imaging() imaging.Format {
	if f == Jpeg {
		return imaging.JPEG
	}
	return imaging.PNG
}

// Open 读取并解码图片。
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("读取图片 %s 失败: %w", path, err)
	}
	return img, nil
}

// ToRGBA 复制为可绘制的 RGBA 图像。
func ToRGBA(img image.Image) *image.NRGBA { return imaging.Clone(img) }

// ToGray 转为亮度 + alpha：RGB 三通道取相同亮度值，保留 alpha。
func ToGray(img image.Image) *image.NRGBA { return imaging.Grayscale(img) }

// Resize 精确缩放到 width x height。
func Resize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.CatmullRom)
}

// ResizeToWidth 按宽度等比缩放。
func ResizeToWidth(img image.Image, width int) *image.NRGBA {
	return imaging.Resize(img, width, 0, imaging.CatmullRom)
}

// Save 以给定格式写出图片。文件在此时才以截断方式创建，
// 编码中途失败可能留下不完整的文件。
func Save(path string, img image.Image, format Format) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("创建输出文件 %s 失败: %w", path, err)
	}
	if err := imaging.Encode(file, img, format.imaging(), imaging.JPEGQuality(jpegQuality)); err != nil {
		file.Close()
		return fmt.Errorf("编码 %s 失败: %w", format, err)
	}
	return file.Close()
}
