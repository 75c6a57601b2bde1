package fonts

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Prefix 标记内置字体路径，例如 "embed:goregular"。
const Prefix = "embed:"

// Default 是未指定字体时使用的内置字体名。
const Default = "goregular"

var builtin = map[string][]byte{
	"goregular":  goregular.TTF,
	"gobold":     gobold.TTF,
	"goitalic":   goitalic.TTF,
	"gomono":     gomono.TTF,
	"gomonobold": gomonobold.TTF,
}

// IsEmbedded 判断路径是否指向内置字体。
func IsEmbedded(path string) bool { return strings.HasPrefix(path, Prefix) }

// Load 返回内置字体的字节数据，path 可写为 "embed:goregular" 或直接 "goregular"。
func Load(path string) ([]byte, error) {
	name := strings.ToLower(strings.TrimPrefix(path, Prefix))
	data, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 可选 %s", path, strings.Join(Names(), ", "))
	}
	return data, nil
}

// Names 列出全部内置字体。
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
