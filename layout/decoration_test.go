package layout

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		dec  Decoration
		body string
	}{
		{"*big*", Larger, "big"},
		{"_small_", Smaller, "small"},
		{"plain", Normal, "plain"},
		{"**", Larger, ""},
		{"__", Smaller, ""},
		{"*", Normal, "*"},
		{"_", Normal, "_"},
		{"", Normal, ""},
		{"*half", Normal, "*half"},
		{"_mixed*", Normal, "_mixed*"},
		{"*_both_*", Larger, "_both_"},
		{"*漢字*", Larger, "漢字"},
	}
	for _, tc := range cases {
		got := Classify(tc.in)
		if got.Decoration != tc.dec || got.Body != tc.body {
			t.Fatalf("Classify(%q) = (%v, %q), want (%v, %q)", tc.in, got.Decoration, got.Body, tc.dec, tc.body)
		}
	}
}

func TestScaleFactor(t *testing.T) {
	if Larger.ScaleFactor() != 1.3 || Normal.ScaleFactor() != 1.0 || Smaller.ScaleFactor() != 0.6 {
		t.Fatalf("unexpected scale factors")
	}
}

func TestParseGravity(t *testing.T) {
	for _, name := range GravityNames() {
		g, err := ParseGravity(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if g.String() != name {
			t.Fatalf("round trip mismatch: %s -> %s", name, g)
		}
	}
	if g, err := ParseGravity("lowercentered"); err != nil || g != LowerCentered {
		t.Fatalf("gravity 应当忽略大小写: %v %v", g, err)
	}
	if _, err := ParseGravity("Middle"); err == nil {
		t.Fatalf("未知 gravity 应当报错")
	}
}
