// Package binding 将 JSON 数据填入文字模板。
package binding

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	placeholder = regexp.MustCompile(`\$\{\s*([^}]*?)\s*\}`)
	// name[0][1] 形式的路径片段
	segment = regexp.MustCompile(`^([^\[\]]*)((?:\[\d+\])*)$`)
	index   = regexp.MustCompile(`\[(\d+)\]`)
)

// Decode 解析 -data 参数中的 JSON。空字符串返回 nil。
func Decode(raw string) (any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("解析 data JSON 失败: %w", err)
	}
	return data, nil
}

// Interpolate 将文本中的 ${path.to.value} 替换为 data 中对应的值。
// data 为空或路径不存在时保留原占位符。
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		path := placeholder.FindStringSubmatch(match)[1]
		if val, ok := Lookup(data, path); ok {
			return format(val)
		}
		return match
	})
}

// Lookup 沿 a.b[0].c 形式的路径取值。
func Lookup(data any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	current := data
	for _, part := range strings.Split(path, ".") {
		m := segment.FindStringSubmatch(part)
		if m == nil {
			return nil, false
		}
		if name := m[1]; name != "" {
			obj, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			if current, ok = obj[name]; !ok {
				return nil, false
			}
		}
		for _, idx := range index.FindAllStringSubmatch(m[2], -1) {
			arr, ok := current.([]any)
			if !ok {
				return nil, false
			}
			i, err := strconv.Atoi(idx[1])
			if err != nil || i >= len(arr) {
				return nil, false
			}
			current = arr[i]
		}
	}
	return current, true
}

func format(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
