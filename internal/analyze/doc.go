// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of the types a package declares,
// including the raw doc comments that carry html annotations.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind, shape (struct/enum/union/opaque), doc
//     comment lines, fields and enum constants
//   - FieldInfo: describes field name, type, tags, and embedding
//   - ConstInfo: one constant of a named basic type (an enum variant)
package analyze
