package layout

import (
	"fmt"
	"strings"
)

// Gravity 决定未指定绝对位置时整段文字在画布上的锚定方式。
type Gravity int

const (
	Centered Gravity = iota
	UpperCentered
	LeftCentered
	LowerCentered
	RightCentered
)

var gravityNames = map[Gravity]string{
	UpperCentered: "UpperCentered",
	LeftCentered:  "LeftCentered",
	LowerCentered: "LowerCentered",
	RightCentered: "RightCentered",
	Centered:      "Centered",
}

// GravityNames 按命令行帮助中的顺序列出合法取值。
func GravityNames() []string {
	return []string{"UpperCentered", "LeftCentered", "LowerCentered", "RightCentered", "Centered"}
}

// ParseGravity 不区分大小写地解析 gravity 关键字。
func ParseGravity(s string) (Gravity, error) {
	for g, name := range gravityNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return g, nil
		}
	}
	return Centered, fmt.Errorf("未知的 gravity %q（可选：%s）", s, strings.Join(GravityNames(), ", "))
}

func (g Gravity) String() string {
	if name, ok := gravityNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Gravity(%d)", int(g))
}

func (g Gravity) MarshalText() ([]byte, error) { return []byte(g.String()), nil }
