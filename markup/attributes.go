package markup

// GlobalAttribute is one of the attributes that apply to every element.
//
// See https://developer.mozilla.org/en-US/docs/Web/HTML/Reference/Global_attributes
type GlobalAttribute int

const (
	_ GlobalAttribute = iota

	// AccessKey hints the keyboard shortcut for an element; a single printable character.
	AccessKey
	// AutoCapitalize controls automatic capitalization on virtual keyboards.
	AutoCapitalize
	// Class is a space-separated list of CSS classes.
	Class
	// Dir is the text direction: ltr, rtl or auto.
	Dir
	// Hidden marks the element as not yet, or no longer, relevant.
	Hidden
	// ID is a document-unique identifier.
	ID
	// Lang is the element language in RFC 5646 form. It defaults to the
	// empty string (language unknown), so it should always be set.
	Lang
	// Style holds CSS declarations applied to the element.
	Style
	// TabIndex orders sequential keyboard navigation.
	TabIndex
	// Title is advisory text; set it on every iframe for screen readers.
	Title
)

// GlobalAttributes returns the full catalogue in declaration order.
func GlobalAttributes() []GlobalAttribute {
	return []GlobalAttribute{AccessKey, AutoCapitalize, Class, Dir, Hidden, ID, Lang, Style, TabIndex, Title}
}

// String returns the serialized attribute name.
func (a GlobalAttribute) String() string {
	switch a {
	case AccessKey:
		return "accesskey"
	case AutoCapitalize:
		return "autocapitalize"
	case Class:
		return "class"
	case Dir:
		return "dir"
	case Hidden:
		return "hidden"
	case ID:
		return "id"
	case Lang:
		return "lang"
	case Style:
		return "style"
	case TabIndex:
		return "tabindex"
	case Title:
		return "title"
	default:
		return "unknown"
	}
}

// Attr pairs the attribute with a value.
func (a GlobalAttribute) Attr(value string) Attr {
	return Attr{Key: a.String(), Value: value}
}
