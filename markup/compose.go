package markup

import (
	"strings"
)

// Quote wraps v in double quotes without escaping it.
func Quote(v string) string {
	return `"` + v + `"`
}

// Property renders a single key="value" pair.
func Property(key, value string) string {
	return key + "=" + Quote(value)
}

// Properties renders attrs as space-separated key="value" pairs in order.
func Properties(attrs ...Attr) string {
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, Property(a.Key, a.Value))
	}

	return strings.Join(parts, " ")
}

// OpeningTag renders <tag> or <tag props> when props is non-empty.
func OpeningTag(tag, props string) string {
	if props == "" {
		return "<" + tag + ">"
	}

	return "<" + tag + " " + props + ">"
}

// ClosingTag renders </tag>.
func ClosingTag(tag string) string {
	return "</" + tag + ">"
}

// Body renders each child and joins the results with newlines.
func Body(children ...Element) string {
	parts := make([]string, 0, len(children))
	for _, c := range children {
		parts = append(parts, c.Render())
	}

	return strings.Join(parts, "\n")
}

// Tag renders a full element: opening tag, body and closing tag, each on its
// own line.
func Tag(tag string, attrs []Attr, children ...Element) string {
	var sb strings.Builder

	sb.WriteString(OpeningTag(tag, Properties(attrs...)))
	sb.WriteByte('\n')
	sb.WriteString(Body(children...))
	sb.WriteByte('\n')
	sb.WriteString(ClosingTag(tag))

	return sb.String()
}

// SelfClosingTag renders <tag props /> with no body and no closing tag.
func SelfClosingTag(tag string, attrs ...Attr) string {
	props := Properties(attrs...)
	if props == "" {
		return "<" + tag + " />"
	}

	return "<" + tag + " " + props + " />"
}
