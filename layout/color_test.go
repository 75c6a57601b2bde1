package layout

import (
	"testing"
)

func TestColorFromCode(t *testing.T) {
	c := ColorFromCode(0xffa500ff)
	if c != (Color{255, 165, 0, 255}) {
		t.Fatalf("0xffa500ff 解析错误: %v", c)
	}
}

// 6 位与 8 位写法在 alpha=ff 时应得到同一颜色。
func TestParseColorRGBDefaultsAlpha(t *testing.T) {
	rgba := MustParseColor("#ffa500ff")
	rgb := MustParseColor("#ffa500")
	if rgba != rgb {
		t.Fatalf("alpha 默认值错误: rgba=%v rgb=%v", rgba, rgb)
	}
	if rgb != (Color{255, 165, 0, 255}) {
		t.Fatalf("unexpected color: %v", rgb)
	}
}

func TestNamedColors(t *testing.T) {
	cases := []struct {
		hex  string
		want Color
	}{
		{"#00000000", Clear()},
		{"#ffffffff", White()},
		{"#000000ff", Black()},
		{"#ff0000ff", Red()},
		{"#00ff00ff", Green()},
		{"#0000ffff", Blue()},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.hex)
		if err != nil {
			t.Fatalf("%s: %v", tc.hex, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got=%v want=%v", tc.hex, got, tc.want)
		}
	}
}

func TestParseColorRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "ffa500", "#ffa5", "#ffa500f", "#gga500", "#ffa500zz", "#+fa500"} {
		if _, err := ParseColor(s); err == nil {
			t.Fatalf("%q 应当解析失败", s)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := NewColor(1, 2, 255, 16).String(); got != "#0102ff10" {
		t.Fatalf("unexpected string: %s", got)
	}
	nrgba := Red().NRGBA()
	if nrgba.R != 255 || nrgba.G != 0 || nrgba.A != 255 {
		t.Fatalf("unexpected NRGBA: %+v", nrgba)
	}
}
