package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	presetLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6})\b`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Size", Pattern: `\d+x\d+`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[:;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	fileParser = participle.MustBuild[File](
		participle.Lexer(presetLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// File is the root AST node of a preset file. It holds one or more presets.
type File struct {
	Presets []*Preset `parser:"Newline* ( @@ Newline* )*"`
}

// Preset is a named block of drawing settings.
type Preset struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"'preset' @Ident"`
	Entries []*Entry       `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Entry uses colon syntax (key: value).
type Entry struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' @@"`
}

// Value represents a setting value. Exactly one field is set.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Color  *string        `parser:"| @Color"`
	Size   *string        `parser:"| @Size"`
	Number *string        `parser:"| @Number"`
	Ident  *string        `parser:"| @Ident"`
}

// Raw returns the value as the text a command-line flag would carry.
func (v *Value) Raw() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Color != nil:
		return *v.Color
	case v.Size != nil:
		return *v.Size
	case v.Number != nil:
		return *v.Number
	case v.Ident != nil:
		return *v.Ident
	default:
		return ""
	}
}

// StringLiteral unquotes Go-style strings on capture, so "a\nb" spans two lines.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Settings flattens the preset into key/value pairs. A key given twice is an error.
func (p *Preset) Settings() (map[string]string, error) {
	out := make(map[string]string, len(p.Entries))
	for _, e := range p.Entries {
		if _, dup := out[e.Key]; dup {
			return nil, fmt.Errorf("%s: preset %s sets %q twice", e.Pos, p.Name, e.Key)
		}
		out[e.Key] = e.Value.Raw()
	}
	return out, nil
}

// Preset looks up a preset by name. An empty name selects the first one.
func (f *File) Preset(name string) (*Preset, error) {
	if f == nil || len(f.Presets) == 0 {
		return nil, fmt.Errorf("preset file contains no presets")
	}
	if name == "" {
		return f.Presets[0], nil
	}
	for _, p := range f.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("preset %q not found", name)
}

// Parse parses preset content from an io.Reader.
func Parse(r io.Reader) (*File, error) {
	return fileParser.Parse("", r)
}

// ParseString parses preset content from a string.
func ParseString(input string) (*File, error) {
	return fileParser.ParseString("", input)
}
