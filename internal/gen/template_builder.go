package gen

import (
	"fmt"
	"strconv"

	"tesseract/internal/analyze"
	"tesseract/internal/element"
)

// templateData holds all data needed for the file template.
type templateData struct {
	PackageName  string
	MarkupImport string
	Comments     bool
	Types        []typeData
}

// typeData holds the methods of one element type.
type typeData struct {
	Name string
	Tag  string
	Recv string
	// Body lines of Node(), without the outer indentation.
	Body []string
}

// buildTemplateData constructs the template data for one package.
func (g *Generator) buildTemplateData(pkg *analyze.PackageInfo, defs []*element.Definition) *templateData {
	data := &templateData{
		PackageName:  pkg.Name,
		MarkupImport: MarkupImport,
		Comments:     g.config.GenerateComments,
	}

	for _, def := range defs {
		data.Types = append(data.Types, typeData{
			Name: def.TypeName,
			Tag:  def.Tag,
			Recv: g.config.Receiver,
			Body: g.nodeBody(def),
		})
	}

	return data
}

// bodyBuilder collects statement lines.
type bodyBuilder struct {
	lines []string
}

func (b *bodyBuilder) line(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

// localNames picks the node and loop variable names so they do not shadow
// the receiver.
func localNames(recv string) (node, item string) {
	node, item = "n", "c"
	if recv == node {
		node = "node"
	}

	if recv == item {
		item = "child"
	}

	return node, item
}

// nodeBody returns the statements of the Node method of def.
func (g *Generator) nodeBody(def *element.Definition) []string {
	recv := g.config.Receiver
	n, item := localNames(recv)

	var b bodyBuilder

	b.line("%s := markup.NewNode(%s)", n, strconv.Quote(def.Tag))

	if def.Void {
		b.line("%s.Void = true", n)
	}

	for _, a := range def.Attributes {
		b.line("%s.Attr(%s, %s)", n, strconv.Quote(a.Key), valueExpr(recv, a.Value))
	}

	if def.Select {
		b.line("switch %s {", recv)

		for _, v := range def.Variants {
			b.line("case %s:", v.Const)
			b.line("\t%s.Attr(%s, %s)", n, strconv.Quote(v.Attr.Key), valueExpr(recv, v.Attr.Value))
		}

		b.line("}")
	}

	for _, c := range def.Children {
		childLines(&b, n, item, recv, c)
	}

	b.line("return %s", n)

	return b.lines
}

// valueExpr returns the Go expression of an attribute value.
func valueExpr(recv string, v element.ValueExpr) string {
	if v.Kind == element.ValueLiteral {
		return strconv.Quote(v.Literal)
	}

	return formatExpr(recv+"."+v.Field, v.Format)
}

// formatExpr converts expr to a string expression.
func formatExpr(expr string, f element.ValueFormat) string {
	switch f {
	case element.FormatString:
		return expr
	case element.FormatConvert:
		return "string(" + expr + ")"
	default:
		return "markup.Format(" + expr + ")"
	}
}

// childLines appends the statements adding child source c to node n.
func childLines(b *bodyBuilder, n, item, recv string, c element.ChildSource) {
	if c.Kind == element.ChildLiteral {
		b.line("%s.Text(%s)", n, strconv.Quote(c.Literal))
		return
	}

	expr := recv + "." + c.Field
	indent := ""

	if c.Slice {
		b.line("for _, %s := range %s {", item, expr)
		expr = item
		indent = "\t"
	}

	if c.Pointer {
		b.line("%sif %s != nil {", indent, expr)

		if c.Kind == element.ChildText {
			expr = "*" + expr
		}

		addChild(b, indent+"\t", n, expr, c)
		b.line("%s}", indent)
	} else {
		addChild(b, indent, n, expr, c)
	}

	if c.Slice {
		b.line("}")
	}
}

func addChild(b *bodyBuilder, indent, n, expr string, c element.ChildSource) {
	if c.Kind == element.ChildText {
		b.line("%s%s.Text(%s)", indent, n, formatExpr(expr, c.Format))
		return
	}

	b.line("%s%s.Child(%s)", indent, n, expr)
}
