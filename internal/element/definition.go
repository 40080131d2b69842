package element

import (
	"tesseract/internal/analyze"
)

// ValueKind says where an attribute value comes from.
type ValueKind int

const (
	ValueLiteral ValueKind = iota // fixed text known at generation time
	ValueField                    // read from a struct field of the instance
)

// ValueFormat says how a field value becomes text.
type ValueFormat int

const (
	FormatString  ValueFormat = iota // string field, used as is
	FormatConvert                    // named string type, converted with string()
	FormatAny                        // anything else, through markup.Format
)

// FormatOf returns the format used for values of type t.
func FormatOf(t *analyze.TypeInfo) ValueFormat {
	switch {
	case t.BasicName() != "string":
		return FormatAny
	case t.Kind == analyze.TypeKindBasic:
		return FormatString
	default:
		return FormatConvert
	}
}

// ValueExpr is the value side of an attribute.
type ValueExpr struct {
	Kind ValueKind
	// Literal is the text for ValueLiteral.
	Literal string
	// Field is the Go field name for ValueField.
	Field  string
	Format ValueFormat
}

// Literal returns a literal value expression.
func Literal(s string) ValueExpr {
	return ValueExpr{Kind: ValueLiteral, Literal: s}
}

// FieldRef returns a value expression reading the named field.
func FieldRef(name string, format ValueFormat) ValueExpr {
	return ValueExpr{Kind: ValueField, Field: name, Format: format}
}

// AttributeMetadata is one attribute of an element.
type AttributeMetadata struct {
	// Key is the attribute name, already normalized to the key casing.
	Key   string
	Value ValueExpr
	// Source is the Go identifier or directive the attribute came from.
	Source string
}

// ChildKind says what a child source produces.
type ChildKind int

const (
	ChildLiteral ChildKind = iota // //html:text directive
	ChildText                     // field holding text
	ChildElement                  // field holding a renderable element
)

func (k ChildKind) String() string {
	switch k {
	case ChildLiteral:
		return "literal"
	case ChildText:
		return "text"
	case ChildElement:
		return "element"
	default:
		return "invalid"
	}
}

// ChildSource is one entry of an element's body.
type ChildSource struct {
	Kind ChildKind
	// Literal is the text for ChildLiteral.
	Literal string
	// Field is the Go field name for ChildText and ChildElement.
	Field string
	// Slice is set when the field is a slice; each item becomes a child.
	Slice bool
	// Pointer is set when the field (or slice item) is a pointer; nil
	// pointers produce no child.
	Pointer bool
	// Format is how a ChildText value becomes text.
	Format ValueFormat
}

// Variant is one annotated constant of an enum type rendered in select mode.
type Variant struct {
	// Const is the Go constant name.
	Const string
	Attr  AttributeMetadata
}

// Definition is everything the generator needs to know about one element
// type. It is not modified after extraction.
type Definition struct {
	Type     analyze.TypeID
	TypeName string
	Tag      string
	Shape    analyze.Shape
	Void     bool
	// Select is set for enum types marked //html:select: only the variant
	// equal to the value is rendered. Otherwise every variant is one of the
	// Attributes.
	Select bool

	Attributes []AttributeMetadata
	Children   []ChildSource
	// Variants holds the enum constants in select mode.
	Variants []Variant
}

// Package returns the import path of the package declaring the type.
func (d *Definition) Package() string {
	return d.Type.PkgPath
}

// AttributeSet is an insertion-ordered mapping from normalized key to
// attribute.
type AttributeSet struct {
	keys  []string
	attrs map[string]AttributeMetadata
}

// NewAttributeSet returns an empty set.
func NewAttributeSet() *AttributeSet {
	return &AttributeSet{attrs: make(map[string]AttributeMetadata)}
}

// Add inserts attr. It reports false, leaving the set unchanged, when the key
// is already present.
func (s *AttributeSet) Add(attr AttributeMetadata) bool {
	if _, ok := s.attrs[attr.Key]; ok {
		return false
	}

	s.keys = append(s.keys, attr.Key)
	s.attrs[attr.Key] = attr

	return true
}

// Get returns the attribute stored under key.
func (s *AttributeSet) Get(key string) (AttributeMetadata, bool) {
	a, ok := s.attrs[key]
	return a, ok
}

// Keys returns the keys in insertion order.
func (s *AttributeSet) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of attributes.
func (s *AttributeSet) Len() int {
	return len(s.keys)
}

// List returns the attributes in insertion order.
func (s *AttributeSet) List() []AttributeMetadata {
	out := make([]AttributeMetadata, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, s.attrs[k])
	}

	return out
}
