package analyze

import (
	"go/types"
	"reflect"

	"tesseract/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "tesseract/examples/site"
	Name    string // e.g., "Head"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindAlias              // named type wrapping another (e.g. type Lang string)
	TypeKindExternal           // external/opaque type (e.g., time.Time)
	TypeKindInterface          // interface type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindAlias:
		return "alias"
	case TypeKindExternal:
		return "external"
	case TypeKindInterface:
		return "interface"
	default:
		return common.UnknownStr
	}
}

// Shape is the declaration form an annotated type can take.
type Shape int

const (
	ShapeOpaque Shape = iota // anything that is neither of the below
	ShapeStruct              // struct with fields
	ShapeEnum                // named basic type with declared constants
	ShapeUnion               // interface type; Go's closest form of a sum type
)

// String returns the shape name used in error messages.
func (s Shape) String() string {
	switch s {
	case ShapeStruct:
		return "struct"
	case ShapeEnum:
		return "enum"
	case ShapeUnion:
		return "union"
	default:
		return "opaque"
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For named types, the underlying type
	ElemType   *TypeInfo   // For pointers and slices, the element type
	Fields     []FieldInfo // For structs, the list of fields
	GoType     types.Type  // The original go/types.Type
	// Doc holds the raw comment lines (with the leading //) attached to the
	// type declaration.
	Doc []string
	// Constants lists, in source order, the constants declared with this
	// type in its own package.
	Constants []ConstInfo
	// HasRender is true when the type's value method set has Render() string.
	HasRender bool
	// TypeParams is the number of type parameters of a generic declaration.
	TypeParams int
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Shape classifies the declaration form of the type.
func (t *TypeInfo) Shape() Shape {
	switch t.Kind {
	case TypeKindStruct:
		return ShapeStruct
	case TypeKindInterface:
		return ShapeUnion
	case TypeKindAlias:
		if len(t.Constants) > 0 && t.Underlying != nil && t.Underlying.Kind == TypeKindBasic {
			return ShapeEnum
		}
	}

	return ShapeOpaque
}

// BasicName returns the name of the basic type at the bottom of t, following
// aliases, or "" when t is not basic.
func (t *TypeInfo) BasicName() string {
	for cur := t; cur != nil; cur = cur.Underlying {
		if cur.Kind == TypeKindBasic {
			if b, ok := cur.GoType.(*types.Basic); ok {
				return b.Name()
			}

			return cur.ID.Name
		}

		if cur.Kind != TypeKindAlias {
			return ""
		}
	}

	return ""
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     *TypeInfo         // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// HasTag returns true if the field has the specified tag.
func (f *FieldInfo) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// GetTag returns the value of the specified tag.
func (f *FieldInfo) GetTag(key string) string {
	return f.Tag.Get(key)
}

// ConstInfo describes one constant of a named type.
type ConstInfo struct {
	Name  string // Go identifier
	Value string // exact constant value as Go source (e.g. `"en-gb"`, `3`)
	// Doc holds the raw doc comment lines and the trailing line comment.
	Doc []string
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Types []TypeID // Named types defined in this package
	// TypeErrors counts type errors skipped because the package has an
	// ignored file, e.g. calls to the methods that file declared.
	TypeErrors int
}
