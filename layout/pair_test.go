package layout

import "testing"

func TestParsePair(t *testing.T) {
	cases := []struct {
		in   string
		x, y uint32
	}{
		{"32x64", 32, 64},
		{"32", 32, 32},
		{"abxcd", 0, 0},
		{"abcd", 0, 0},
		{"32xcd", 32, 0},
		{"", 0, 0},
		{"1x2x3", 1, 1},
		{"-5x3", 0, 3},
	}
	for _, tc := range cases {
		p := ParsePair[uint32](tc.in)
		if p.X != tc.x || p.Y != tc.y {
			t.Fatalf("ParsePair(%q) = %v, want %dx%d", tc.in, p, tc.x, tc.y)
		}
	}
}

// 有符号类型保留负数，超出位宽按 0 处理。
func TestParsePairSigned(t *testing.T) {
	if p := ParsePair[int32]("-5x7"); p != NewPair[int32](-5, 7) {
		t.Fatalf("unexpected pair: %v", p)
	}
	if p := ParsePair[int8]("300x7"); p != NewPair[int8](0, 7) {
		t.Fatalf("unexpected pair: %v", p)
	}
	x, y := ParsePair[uint16]("640x480").Tuple()
	if x != 640 || y != 480 {
		t.Fatalf("unexpected tuple: %d %d", x, y)
	}
}
