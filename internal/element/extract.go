package element

import (
	"fmt"
	"strings"

	"tesseract/casing"
	"tesseract/internal/analyze"
	"tesseract/internal/annotation"
	"tesseract/internal/common"
)

// Options controls extraction.
type Options struct {
	// KeyCase is the casing attribute keys derived from Go identifiers are
	// normalized to. A type's //html:key_case directive overrides it.
	KeyCase casing.Style
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{KeyCase: casing.SnakeCase}
}

// IsAnnotated reports whether the type declaration carries any html
// directive. Only annotated types are extracted.
func IsAnnotated(info *analyze.TypeInfo) bool {
	return len(annotation.ParseDirectives(info.Doc)) > 0
}

// Extract builds the Definition of an annotated struct or enum type.
func Extract(info *analyze.TypeInfo, opts Options) (*Definition, error) {
	switch info.Shape() {
	case analyze.ShapeStruct:
		return ExtractStruct(info, opts)
	case analyze.ShapeEnum:
		return ExtractEnum(info, opts)
	}

	x := newExtractor(info, opts)
	if err := x.header(); err != nil {
		return nil, err
	}

	return nil, x.unsupportedShape()
}

// ExtractStruct builds the Definition of a struct type. Tagged fields become
// attributes or children in field order, after any literal attributes and
// text declared on the type.
func ExtractStruct(info *analyze.TypeInfo, opts Options) (*Definition, error) {
	x := newExtractor(info, opts)
	if err := x.checkShape(analyze.ShapeStruct); err != nil {
		return nil, err
	}

	if err := x.header(); err != nil {
		return nil, err
	}

	for _, f := range info.Fields {
		if err := x.field(f); err != nil {
			return nil, err
		}
	}

	return x.finish()
}

// ExtractEnum builds the Definition of an enum type: a named basic type whose
// constants each declare one attribute. All of them are rendered, in
// declaration order after the literal attributes, unless the type is marked
// //html:select, in which case only the constant equal to the value is.
func ExtractEnum(info *analyze.TypeInfo, opts Options) (*Definition, error) {
	x := newExtractor(info, opts)
	if err := x.checkShape(analyze.ShapeEnum); err != nil {
		return nil, err
	}

	if err := x.header(); err != nil {
		return nil, err
	}

	variants, err := x.variants(x.def.Select)
	if err != nil {
		return nil, err
	}

	for _, attr := range variants.List() {
		if prev, ok := x.attrs.Get(attr.Key); ok {
			return nil, x.duplicate(prev, attr)
		}

		if x.def.Select {
			x.def.Variants = append(x.def.Variants, Variant{Const: attr.Source, Attr: attr})
		} else {
			x.attrs.Add(attr)
		}
	}

	return x.finish()
}

// ExtractVariantAttributes returns the attribute of every constant of an enum
// type, keyed by normalized attribute key in declaration order.
func ExtractVariantAttributes(info *analyze.TypeInfo, opts Options) (*AttributeSet, error) {
	x := newExtractor(info, opts)
	if err := x.checkShape(analyze.ShapeEnum); err != nil {
		return nil, err
	}

	if err := x.keyCase(annotation.ParseDirectives(info.Doc)); err != nil {
		return nil, err
	}

	return x.variants(false)
}

// UntaggedFields lists exported fields of a struct type that carry no html
// tag. They are not rendered, which is usually an oversight.
func UntaggedFields(info *analyze.TypeInfo) []string {
	var out []string

	for _, f := range info.Fields {
		if f.Exported && !f.HasTag(annotation.TagKey) {
			out = append(out, f.Name)
		}
	}

	return out
}

// QualifiedName returns "pkg.Type" for error messages.
func QualifiedName(id analyze.TypeID) string {
	if id.PkgPath == "" {
		return id.Name
	}

	return common.PkgAlias(id.PkgPath) + "." + id.Name
}

var typeString = analyze.NewTypeStringer().TypeString

type extractor struct {
	info  *analyze.TypeInfo
	name  string
	style casing.Style
	def   *Definition
	attrs *AttributeSet
}

func newExtractor(info *analyze.TypeInfo, opts Options) *extractor {
	style := opts.KeyCase
	if !style.IsValid() {
		style = casing.SnakeCase
	}

	return &extractor{
		info:  info,
		name:  QualifiedName(info.ID),
		style: style,
		def: &Definition{
			Type:     info.ID,
			TypeName: info.ID.Name,
			Shape:    info.Shape(),
		},
		attrs: NewAttributeSet(),
	}
}

func (x *extractor) fail(kind Kind, subject string, cause error) error {
	return newError(kind, x.name, subject, cause)
}

func (x *extractor) unsupportedShape() error {
	return x.fail(KindUnsupportedShape, x.info.Shape().String(), nil)
}

// checkShape fails unless the type has the wanted shape and is not generic.
// Generated methods name the receiver type without type arguments.
func (x *extractor) checkShape(want analyze.Shape) error {
	if x.info.Shape() != want {
		return x.unsupportedShape()
	}

	if x.info.TypeParams > 0 {
		return x.fail(KindUnsupportedShape, "generic "+want.String(), nil)
	}

	return nil
}

func (x *extractor) duplicate(prev, attr AttributeMetadata) error {
	return x.fail(KindDuplicateKey, attr.Key,
		fmt.Errorf("both %s and %s map to it", prev.Source, attr.Source))
}

// header reads the type-level directives.
func (x *extractor) header() error {
	ds := annotation.ParseDirectives(x.info.Doc)
	if err := ds.CheckKnown(annotation.TypeDirectives); err != nil {
		return x.fail(KindUnknown, "type "+x.info.ID.Name, err)
	}

	tag, ok := ds.Lookup(annotation.TagName)
	if !ok || strings.TrimSpace(tag.Value) == "" {
		return x.fail(KindMissing, annotation.TagName, nil)
	}

	x.def.Tag = tag.Value
	x.def.Void = ds.Has(annotation.Void)
	x.def.Select = ds.Has(annotation.Select)

	if err := x.keyCase(ds); err != nil {
		return err
	}

	for _, d := range ds.All(annotation.Attr) {
		key, value, err := annotation.SplitAttr(d)
		if err != nil {
			return x.fail(KindMissing, "attr key", err)
		}

		attr := AttributeMetadata{Key: key, Value: Literal(value), Source: "html:attr=" + key}
		if prev, ok := x.attrs.Get(key); ok {
			return x.duplicate(prev, attr)
		}

		x.attrs.Add(attr)
	}

	for _, d := range ds.All(annotation.Text) {
		x.def.Children = append(x.def.Children, ChildSource{Kind: ChildLiteral, Literal: d.Value})
	}

	return nil
}

func (x *extractor) keyCase(ds annotation.Directives) error {
	d, ok := ds.Lookup(annotation.KeyCase)
	if !ok {
		return nil
	}

	style, err := casing.ParseStyle(d.Value)
	if err != nil {
		return x.fail(KindUnknown, annotation.KeyCase, err)
	}

	x.style = style

	return nil
}

// key derives an attribute key from a Go identifier.
func (x *extractor) key(ident string) (string, error) {
	key, err := casing.Normalize(ident, x.style)
	if err != nil {
		// An identifier the casing engine rejects needs an explicit key.
		return "", x.fail(KindMissing, ident+" key", err)
	}

	return key, nil
}

func (x *extractor) field(f analyze.FieldInfo) error {
	ft, err := annotation.ParseFieldTag(f.Tag)
	if err != nil {
		return x.fail(KindUnknown, "field "+f.Name, err)
	}

	switch ft.Role {
	case annotation.RoleAttr:
		return x.attrField(f, ft)
	case annotation.RoleChild:
		src, err := x.childField(f)
		if err != nil {
			return err
		}

		x.def.Children = append(x.def.Children, src)
	}

	return nil
}

func (x *extractor) attrField(f analyze.FieldInfo, ft annotation.FieldTag) error {
	key := ft.Key
	if key == "" {
		var err error
		if key, err = x.key(f.Name); err != nil {
			return err
		}
	}

	attr := AttributeMetadata{Key: key, Source: f.Name}
	if ft.HasValue {
		attr.Value = Literal(ft.Value)
	} else {
		if !attributeValueType(f.Type) {
			return x.fail(KindUnsupportedType, f.Name, fmt.Errorf("%s cannot be an attribute value", typeString(f.Type)))
		}

		attr.Value = FieldRef(f.Name, FormatOf(f.Type))
	}

	if prev, ok := x.attrs.Get(key); ok {
		return x.duplicate(prev, attr)
	}

	x.attrs.Add(attr)

	return nil
}

// attributeValueType reports whether a field's value can be formatted as an
// attribute value.
func attributeValueType(t *analyze.TypeInfo) bool {
	switch t.Kind {
	case analyze.TypeKindBasic, analyze.TypeKindAlias, analyze.TypeKindStruct,
		analyze.TypeKindExternal, analyze.TypeKindInterface:
		return true
	default:
		return false
	}
}

func (x *extractor) childField(f analyze.FieldInfo) (ChildSource, error) {
	src := ChildSource{Field: f.Name}

	t := f.Type
	if t.Kind == analyze.TypeKindSlice {
		src.Slice = true
		t = t.ElemType
	}

	ptrHasRender := false
	if t != nil && t.Kind == analyze.TypeKindPointer {
		src.Pointer = true
		ptrHasRender = t.HasRender
		t = t.ElemType
	}

	switch {
	case t == nil:
	case t.BasicName() == "string":
		src.Kind = ChildText
		src.Format = FormatOf(t)

		return src, nil
	case ptrHasRender || isElementType(t):
		src.Kind = ChildElement
		return src, nil
	}

	return ChildSource{}, x.fail(KindUnsupportedType, f.Name,
		fmt.Errorf("%s is neither text nor an element", typeString(f.Type)))
}

// isElementType reports whether values of t render themselves, either by a
// hand-written Render method or by one generated from their annotations.
func isElementType(t *analyze.TypeInfo) bool {
	if t.HasRender {
		return true
	}

	return t.IsNamed() && annotation.ParseDirectives(t.Doc).Has(annotation.TagName)
}

// variants extracts one attribute per enum constant. With distinct set, two
// constants sharing a value conflict.
func (x *extractor) variants(distinct bool) (*AttributeSet, error) {
	set := NewAttributeSet()
	seen := make(map[string]string)

	for _, c := range x.info.Constants {
		ds := annotation.ParseDirectives(c.Doc)
		if err := ds.CheckKnown(annotation.VariantDirectives); err != nil {
			return nil, x.fail(KindUnknown, "constant "+c.Name, err)
		}

		value, ok := ds.Lookup(annotation.Value)
		if !ok {
			return nil, x.fail(KindMissing, c.Name, nil)
		}

		if other, ok := seen[c.Value]; ok && distinct {
			return nil, x.fail(KindConflict, c.Name+" has the same value as "+other, nil)
		}

		seen[c.Value] = c.Name

		var key string
		if d, ok := ds.Lookup(annotation.Key); ok && d.Value != "" {
			key = d.Value
		} else {
			var err error
			if key, err = x.key(c.Name); err != nil {
				return nil, err
			}
		}

		attr := AttributeMetadata{Key: key, Value: Literal(value.Value), Source: c.Name}
		if prev, ok := set.Get(key); ok {
			return nil, x.duplicate(prev, attr)
		}

		set.Add(attr)
	}

	return set, nil
}

func (x *extractor) finish() (*Definition, error) {
	if x.def.Void && len(x.def.Children) > 0 {
		return nil, x.fail(KindConflict, "void element "+x.def.Tag+" has children", nil)
	}

	if x.def.Select && x.def.Shape != analyze.ShapeEnum {
		return nil, x.fail(KindConflict, "html:"+annotation.Select+" on a "+x.def.Shape.String(), nil)
	}

	x.def.Attributes = x.attrs.List()

	return x.def, nil
}
