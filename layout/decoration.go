package layout

import (
	"strings"
	"unicode/utf8"
)

// Decoration 表示由行首尾标记推断出的字号修饰。
type Decoration int

const (
	Normal  Decoration = iota // 无标记
	Larger                    // *text*
	Smaller                   // _text_
)

// ScaleFactor 返回相对基准字高的倍数。
func (d Decoration) ScaleFactor() float32 {
	switch d {
	case Larger:
		return 1.3
	case Smaller:
		return 0.6
	default:
		return 1.0
	}
}

func (d Decoration) String() string {
	switch d {
	case Larger:
		return "Larger"
	case Smaller:
		return "Smaller"
	default:
		return "Normal"
	}
}

// MarshalText 让调试 JSON 输出名字而不是数字。
func (d Decoration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// DecoratedString 是去掉标记后的正文及其修饰。
type DecoratedString struct {
	Decoration Decoration `json:"decoration"`
	Body       string     `json:"body"`
}

// Classify 识别一行文本的修饰：首尾都是 '*' 为 Larger，首尾都是 '_' 为 Smaller，
// 各去掉一个字符；否则原样返回 Normal。
// 仅有一个标记字符的行（如 "*"）无法同时剥离首尾，按 Normal 处理。
func Classify(line string) DecoratedString {
	if body, ok := strip(line, '*'); ok {
		return DecoratedString{Decoration: Larger, Body: body}
	}
	if body, ok := strip(line, '_'); ok {
		return DecoratedString{Decoration: Smaller, Body: body}
	}
	return DecoratedString{Decoration: Normal, Body: line}
}

func strip(line string, marker rune) (string, bool) {
	if utf8.RuneCountInString(line) < 2 {
		return "", false
	}
	m := string(marker)
	if !strings.HasPrefix(line, m) || !strings.HasSuffix(line, m) {
		return "", false
	}
	return line[len(m) : len(line)-len(m)], true
}
