package layout

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"
)

// Integer 限定 Pair 可用的定宽整数类型。
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Pair 是 (x, y) 整数对，用于 "WxH" 尺寸与 "AxB" 坐标参数。
type Pair[T Integer] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

// NewPair 构造一个 Pair。
func NewPair[T Integer](x, y T) Pair[T] { return Pair[T]{X: x, Y: y} }

// ParsePair 按字符 'x' 切分字符串：
// 恰好两段时 x、y 分别取两段；否则 x=y=第一段。
// 无法解析的数字一律按 0 处理，从不返回错误。
func ParsePair[T Integer](s string) Pair[T] {
	parts := strings.Split(s, "x")
	if len(parts) == 2 {
		return NewPair(parseOrZero[T](parts[0]), parseOrZero[T](parts[1]))
	}
	v := parseOrZero[T](parts[0])
	return NewPair(v, v)
}

// Tuple 返回 (x, y)。
func (p Pair[T]) Tuple() (T, T) { return p.X, p.Y }

func (p Pair[T]) String() string { return fmt.Sprintf("%dx%d", p.X, p.Y) }

func parseOrZero[T Integer](s string) T {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8
	if signed := zero-1 < zero; signed {
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0
		}
		return T(v)
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0
	}
	return T(v)
}
