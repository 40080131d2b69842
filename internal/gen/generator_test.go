package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tesseract/internal/analyze"
	"tesseract/internal/diagnostic"
	"tesseract/internal/element"
)

const testPkg = "example/page"

func testPlan(defs ...*element.Definition) *Plan {
	graph := analyze.NewTypeGraph()
	graph.Packages[testPkg] = &analyze.PackageInfo{Path: testPkg, Name: "page", Dir: "/src/page"}

	for _, d := range defs {
		d.Type = analyze.TypeID{PkgPath: testPkg, Name: d.TypeName}
	}

	return &Plan{Graph: graph, Definitions: defs}
}

func generateOne(t *testing.T, cfg GeneratorConfig, defs ...*element.Definition) string {
	t.Helper()

	files, err := NewGenerator(cfg, nil).Generate(testPlan(defs...))
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "/src/page", files[0].Dir)
	assert.Equal(t, testPkg, files[0].PkgPath)

	_, err = parser.ParseFile(token.NewFileSet(), files[0].Filename, files[0].Content, parser.AllErrors)
	require.NoError(t, err, "generated code must parse:\n%s", files[0].Content)

	return string(files[0].Content)
}

func TestGenerator_Generate_Struct(t *testing.T) {
	def := &element.Definition{
		TypeName: "Card",
		Tag:      "section",
		Shape:    analyze.ShapeStruct,
		Attributes: []element.AttributeMetadata{
			{Key: "role", Value: element.Literal("region")},
			{Key: "class", Value: element.FieldRef("Class", element.FormatString)},
			{Key: "lang", Value: element.FieldRef("Lang", element.FormatConvert)},
			{Key: "tabindex", Value: element.FieldRef("Order", element.FormatAny)},
		},
		Children: []element.ChildSource{
			{Kind: element.ChildLiteral, Literal: "Heading"},
			{Kind: element.ChildText, Field: "Summary"},
			{Kind: element.ChildText, Field: "Note", Pointer: true, Format: element.FormatConvert},
			{Kind: element.ChildText, Field: "Lines", Slice: true},
			{Kind: element.ChildElement, Field: "Header"},
			{Kind: element.ChildElement, Field: "Footer", Pointer: true},
			{Kind: element.ChildElement, Field: "Items", Slice: true},
			{Kind: element.ChildElement, Field: "Links", Slice: true, Pointer: true},
		},
	}

	got := generateOne(t, DefaultGeneratorConfig(), def)

	want := `// Code generated by tesseract-gen. DO NOT EDIT.

package page

import "tesseract/markup"

// Node builds the <section> element for e.
func (e Card) Node() *markup.Node {
	n := markup.NewNode("section")
	n.Attr("role", "region")
	n.Attr("class", e.Class)
	n.Attr("lang", string(e.Lang))
	n.Attr("tabindex", markup.Format(e.Order))
	n.Text("Heading")
	n.Text(e.Summary)
	if e.Note != nil {
		n.Text(string(*e.Note))
	}
	for _, c := range e.Lines {
		n.Text(c)
	}
	n.Child(e.Header)
	if e.Footer != nil {
		n.Child(e.Footer)
	}
	for _, c := range e.Items {
		n.Child(c)
	}
	for _, c := range e.Links {
		if c != nil {
			n.Child(c)
		}
	}
	return n
}

// Render returns the markup of e.
func (e Card) Render() string {
	return e.Node().Render()
}
`

	assert.Equal(t, want, got)
}

func TestGenerator_Generate_Enum(t *testing.T) {
	def := &element.Definition{
		TypeName: "Link",
		Tag:      "link",
		Shape:    analyze.ShapeEnum,
		Void:     true,
		Attributes: []element.AttributeMetadata{
			{Key: "rel", Value: element.Literal("stylesheet"), Source: "Rel"},
			{Key: "href", Value: element.Literal("/style.css"), Source: "Href"},
		},
	}

	got := generateOne(t, DefaultGeneratorConfig(), def)

	assert.Contains(t, got, "\tn := markup.NewNode(\"link\")\n\tn.Void = true\n"+
		"\tn.Attr(\"rel\", \"stylesheet\")\n\tn.Attr(\"href\", \"/style.css\")\n\treturn n\n")
	assert.NotContains(t, got, "switch")
}

func TestGenerator_Generate_EnumSelect(t *testing.T) {
	def := &element.Definition{
		TypeName: "Meta",
		Tag:      "meta",
		Shape:    analyze.ShapeEnum,
		Void:     true,
		Select:   true,
		Variants: []element.Variant{
			{Const: "Charset", Attr: element.AttributeMetadata{Key: "charset", Value: element.Literal("utf-8")}},
			{Const: "Refresh", Attr: element.AttributeMetadata{Key: "http-equiv", Value: element.Literal("refresh")}},
		},
	}

	got := generateOne(t, DefaultGeneratorConfig(), def)

	assert.Contains(t, got, "\tn.Void = true\n")
	assert.Contains(t, got, "\tswitch e {\n\tcase Charset:\n\t\tn.Attr(\"charset\", \"utf-8\")\n")
	assert.Contains(t, got, "\tcase Refresh:\n\t\tn.Attr(\"http-equiv\", \"refresh\")\n\t}\n")
}

func TestGenerator_Generate_SortedAndQuoted(t *testing.T) {
	defs := []*element.Definition{
		{TypeName: "Zeta", Tag: "z", Shape: analyze.ShapeStruct},
		{TypeName: "Alpha", Tag: "a", Shape: analyze.ShapeStruct, Attributes: []element.AttributeMetadata{
			{Key: "title", Value: element.Literal(`say "hi"`)},
		}},
	}

	got := generateOne(t, DefaultGeneratorConfig(), defs...)

	assert.Less(t, strings.Index(got, "func (e Alpha) Node()"), strings.Index(got, "func (e Zeta) Node()"))
	assert.Contains(t, got, `n.Attr("title", "say \"hi\"")`)
}

func TestGenerator_Generate_Config(t *testing.T) {
	def := &element.Definition{
		TypeName: "Item",
		Tag:      "li",
		Shape:    analyze.ShapeStruct,
		Children: []element.ChildSource{{Kind: element.ChildElement, Field: "Parts", Slice: true}},
	}

	cfg := GeneratorConfig{OutputFile: "markup_gen.go", Receiver: "c", GenerateComments: false}

	files, err := NewGenerator(cfg, nil).Generate(testPlan(def))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "markup_gen.go", files[0].Filename)

	got := string(files[0].Content)
	assert.NotContains(t, got, "// Node builds")
	assert.Contains(t, got, "func (c Item) Node() *markup.Node {")
	assert.Contains(t, got, "\tfor _, child := range c.Parts {\n\t\tn.Child(child)\n\t}\n")
	assert.Contains(t, got, "}\n\nfunc (c Item) Render() string {\n\treturn c.Node().Render()\n}\n")
}

func TestGenerator_Generate_RefusesErrors(t *testing.T) {
	p := testPlan(&element.Definition{TypeName: "A", Tag: "a"})
	p.Diagnostics.AddError(diagnostic.CodeFailed, "broken", "page.B", "")

	files, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(p)
	require.Error(t, err)
	assert.Nil(t, files)
}

func TestGenerator_Generate_PerPackage(t *testing.T) {
	graph := analyze.NewTypeGraph()
	graph.Packages["example/a"] = &analyze.PackageInfo{Path: "example/a", Name: "a", Dir: "/a"}

	p := &Plan{Graph: graph, Definitions: []*element.Definition{
		{Type: analyze.TypeID{PkgPath: "example/b", Name: "B"}, TypeName: "B", Tag: "b"},
		{Type: analyze.TypeID{PkgPath: "example/a", Name: "A"}, TypeName: "A", Tag: "a"},
	}}

	files, err := NewGenerator(DefaultGeneratorConfig(), nil).Generate(p)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "example/a", files[0].PkgPath)
	assert.Contains(t, string(files[0].Content), "package a\n")
	assert.Equal(t, "example/b", files[1].PkgPath)
	assert.Contains(t, string(files[1].Content), "package b\n")
	assert.Empty(t, files[1].Dir)
}

func TestLocalNames(t *testing.T) {
	tests := []struct {
		recv, node, item string
	}{
		{"e", "n", "c"},
		{"n", "node", "c"},
		{"c", "n", "child"},
	}

	for _, tt := range tests {
		node, item := localNames(tt.recv)
		assert.Equal(t, tt.node, node, tt.recv)
		assert.Equal(t, tt.item, item, tt.recv)
	}
}

func TestWriteFiles(t *testing.T) {
	dir := t.TempDir()

	files := []GeneratedFile{{PkgPath: testPkg, Dir: dir, Filename: "html_gen.go", Content: []byte("package page\n")}}
	require.NoError(t, WriteFiles(files))

	b, err := os.ReadFile(filepath.Join(dir, "html_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, "package page\n", string(b))

	files[0].Content = []byte("package page\n\n// v2\n")
	require.NoError(t, WriteFiles(files))

	b, err = os.ReadFile(filepath.Join(dir, "html_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "v2")

	err = WriteFiles([]GeneratedFile{{PkgPath: testPkg, Filename: "html_gen.go"}})
	assert.Error(t, err)
}

func TestWriteDebugUnformatted(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "debug")

	require.NoError(t, writeDebugUnformatted(dir, "site", "html_gen.go", []byte("package x\nfunc {")))

	b, err := os.ReadFile(filepath.Join(dir, "site.html_gen.unformatted.go"))
	require.NoError(t, err)
	assert.Equal(t, "package x\nfunc {", string(b))

	assert.NoError(t, writeDebugUnformatted("", "site", "x.go", nil))
}
