/*
Package typeface binds a loaded font to the glyph metrics the layout engine needs.

Scales follow the pixel-height convention: a scale of s means the distance
between ascender and descender is s pixels, independent of the font's em size.
*/
package typeface

import (
	"errors"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/ByLCY/caption/fonts"
	"github.com/ByLCY/caption/layout"
)

// tracer writes to trace with key 'caption'
func tracer() tracing.Trace {
	return tracing.Select("caption")
}

// ErrNoFace is returned when a font file (or collection) holds no face at index 0.
var ErrNoFace = errors.New("no font face at index 0")

// Face is the first font of a font file or collection, with its design units
// cached. It is not safe for concurrent use by multiple goroutines.
type Face struct {
	Name string
	data []byte
	sfnt *sfnt.Font
	upem fixed.Int26_6
	// ascent and descent in font units, descent positive
	ascent, descent, height float32
}

var _ layout.Metrics = (*Face)(nil)

// Load reads a font from a file path or from the built-in set ("embed:goregular").
func Load(path string) (*Face, error) {
	var (
		data []byte
		err  error
	)
	if fonts.IsEmbedded(path) {
		data, err = fonts.Load(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes TTF, OTF, TTC or OTC data and selects the face at index 0.
func Parse(data []byte) (*Face, error) {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decoding font: %w", err)
	}
	if coll.NumFonts() == 0 {
		return nil, ErrNoFace
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoFace, err)
	}
	face := &Face{data: data, sfnt: f, upem: fixed.I(int(f.UnitsPerEm()))}
	var buf sfnt.Buffer
	m, err := f.Metrics(&buf, face.upem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("reading font metrics: %w", err)
	}
	face.ascent = toUnits(m.Ascent)
	face.descent = toUnits(m.Descent)
	face.height = toUnits(m.Height)
	if face.ascent+face.descent <= 0 {
		return nil, fmt.Errorf("font has degenerate vertical metrics (ascent %g, descent %g)", face.ascent, face.descent)
	}
	if face.Name, err = f.Name(&buf, sfnt.NameIDFull); err != nil {
		face.Name = "<unnamed>"
	}
	tracer().Debugf("loaded font %s, %d units per em", face.Name, f.UnitsPerEm())
	return face, nil
}

// Data returns the raw font bytes, e.g. for handing to another rasterizer.
func (f *Face) Data() []byte { return f.data }

// VMetrics implements layout.Metrics.
func (f *Face) VMetrics(scale layout.Scale) layout.VMetrics {
	k := f.unitScale(scale.Y)
	return layout.VMetrics{
		Ascent:  f.ascent * k,
		Descent: -f.descent * k,
		LineGap: (f.height - f.ascent - f.descent) * k,
	}
}

// Advances implements layout.Metrics. Kerning is not applied; each rune maps
// to one glyph, unknown runes to the .notdef glyph.
func (f *Face) Advances(text string, scale layout.Scale) ([]float32, error) {
	k := f.unitScale(scale.X)
	var buf sfnt.Buffer
	advances := make([]float32, 0, len(text))
	for _, r := range text {
		gi, err := f.sfnt.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("glyph index for %q: %w", r, err)
		}
		adv, err := f.sfnt.GlyphAdvance(&buf, gi, f.upem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("glyph advance for %q: %w", r, err)
		}
		advances = append(advances, toUnits(adv)*k)
	}
	return advances, nil
}

// EmSize converts a pixel-height scale into pixels per em.
func (f *Face) EmSize(scale layout.Scale) float64 {
	return float64(scale.Y) * float64(toUnits(f.upem)) / float64(f.ascent+f.descent)
}

// NewFace returns a drawable face for scale. The face's ascent matches
// VMetrics(scale).Ascent, so top-left rects translate to baselines directly.
func (f *Face) NewFace(scale layout.Scale) (font.Face, error) {
	return opentype.NewFace(f.sfnt, &opentype.FaceOptions{
		Size:    f.EmSize(scale),
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func (f *Face) unitScale(px float32) float32 {
	return px / (f.ascent + f.descent)
}

func toUnits(v fixed.Int26_6) float32 { return float32(v) / 64 }
